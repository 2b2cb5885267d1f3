package remote

import (
	"os"
	"strings"
)

// Environment variables checked for a credential, in order.
const (
	EnvOpenAI     = "OPENAI_API_KEY"
	EnvOpenRouter = "OPENROUTER_API_KEY"
)

const (
	openaiURL     = "https://api.openai.com/v1/chat/completions"
	openrouterURL = "https://openrouter.ai/api/v1/chat/completions"
)

// backend is one of the two chat-completion endpoint families. Both
// speak the same request/response shape; only the base URL differs.
type backend struct {
	name string
	url  string
}

// resolveKey returns the credential to use: the explicit key if given,
// otherwise the first populated environment variable. An empty result
// means remote generation is unavailable.
func resolveKey(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if key := os.Getenv(EnvOpenAI); key != "" {
		return key
	}
	return os.Getenv(EnvOpenRouter)
}

// backendFor picks the endpoint family from the credential's prefix.
// OpenRouter keys are self-identifying (sk-or-); everything else,
// including unrecognized prefixes, is treated as an OpenAI key.
func backendFor(key string) backend {
	if strings.HasPrefix(key, "sk-or-") {
		return backend{name: "openrouter", url: openrouterURL}
	}
	return backend{name: "openai", url: openaiURL}
}
