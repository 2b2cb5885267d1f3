package main

import "github.com/redphase/redphase/cmd"

func main() {
	cmd.Execute()
}
