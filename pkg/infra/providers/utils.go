package providers

import "strings"

const jsonOnlyInstruction = "Respond with a single valid JSON object and nothing else."

func FormatInstructions(instr []string) string {
	if len(instr) == 0 {
		return "[Instructions]\n"
	}

	var b strings.Builder
	b.WriteString("[Instructions]\n")
	for _, rule := range instr {
		if strings.TrimSpace(rule) == "" {
			continue
		}
		b.WriteString("- ")
		b.WriteString(rule)
		b.WriteByte('\n')
	}
	return b.String()
}

// SystemPrompt returns the system prompt, extended with a JSON-only rule for
// providers that have no native JSON response mode.
func SystemPrompt(config *Config) string {
	if !config.WantsJSON() {
		return config.SystemPrompt
	}
	if config.SystemPrompt == "" {
		return jsonOnlyInstruction
	}
	return config.SystemPrompt + "\n" + jsonOnlyInstruction
}

// StripCodeFence removes a surrounding markdown fence some models add around JSON output.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
