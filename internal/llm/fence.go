package llm

import "strings"

// StripCodeFence extracts the payload from a markdown code fence anywhere in
// model output. Chat models routinely wrap JSON in ```json ... ``` despite
// instructions, sometimes after a line of prose; everything outside the first
// fenced block is discarded. Unfenced output is returned trimmed.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	i := strings.Index(s, "```")
	if i < 0 {
		return s
	}
	s = s[i+3:]
	s = strings.TrimPrefix(s, "json")
	if j := strings.Index(s, "```"); j >= 0 {
		s = s[:j]
	}
	return strings.TrimSpace(s)
}
