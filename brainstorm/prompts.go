package brainstorm

import (
	"fmt"
	"strings"
)

// PromptCount is fixed: every brainstorm session gets the same five angles.
const PromptCount = 5

// Prompts returns exactly five follow-up prompts for the recorded topic and
// ideas. The templates are fixed, so identical input always yields identical
// prompts.
func Prompts(topic string, ideas []string) []string {
	topic = strings.TrimSpace(topic)
	seed := firstIdea(ideas)

	return []string{
		fmt.Sprintf("Goal split: break %q into three smaller goals.", topic),
		fmt.Sprintf("Risk rehearsal: what could block progress on %q?", topic),
		fmt.Sprintf("Resource inventory: which resources or support for %q do you already have?", topic),
		fmt.Sprintf("Next action: what is the smallest step toward %q you can finish within 24 hours?", topic),
		fmt.Sprintf("Idea extension: what new angle or question follows from %q?", seed),
	}
}

func firstIdea(ideas []string) string {
	for _, idea := range ideas {
		if trimmed := strings.TrimSpace(idea); trimmed != "" {
			return trimmed
		}
	}
	return "your notes so far"
}
