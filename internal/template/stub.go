package template

import (
	"fmt"
	"strings"
)

// ComponentStub returns a minimal placeholder component for subject.
// The data-testid follows the <name-lowercased>-container convention;
// the paired test file's first assertion queries exactly that id, so
// the marker must not change independently of the scaffolder.
func ComponentStub(subject string) string {
	testID := strings.ToLower(subject) + "-container"
	var b strings.Builder
	b.WriteString("import React from 'react';\n\n")
	fmt.Fprintf(&b, "const %s = (props) => {\n", subject)
	b.WriteString("  return (\n")
	fmt.Fprintf(&b, "    <div data-testid=\"%s\">\n", testID)
	fmt.Fprintf(&b, "      {/* TODO: implement %s */}\n", subject)
	b.WriteString("    </div>\n")
	b.WriteString("  );\n")
	b.WriteString("};\n\n")
	fmt.Fprintf(&b, "export default %s;\n", subject)
	return b.String()
}
