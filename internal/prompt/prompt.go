// Package prompt builds the exact message payloads transmitted to the AI
// endpoint, and renders human-readable previews of them.
package prompt

import (
	"fmt"
	"strings"

	"github.com/SoofabhMK1/ai-writing-system/internal/model"
)

// emptyHistoryPlaceholder stands in for the history block when the new user
// message is the first message of the conversation.
const emptyHistoryPlaceholder = "(No previous messages)"

// Prepare produces the ordered message list to transmit for the given
// conversation history. The last element of history is the newest user
// input. The thinking field is stripped everywhere; it must never reach
// the backend.
//
// Without a preset the stripped history passes through unchanged. With a
// preset the payload is rewrapped: per-field system messages, then a single
// user message bracketing the rendered history and the new input, then an
// optional trailing system message.
func Prepare(history []model.Message, preset *model.PromptPreset) []model.ChatMessage {
	if preset == nil {
		out := make([]model.ChatMessage, 0, len(history))
		for _, m := range history {
			out = append(out, model.ChatMessage{Role: m.Role, Content: m.Content})
		}
		return out
	}

	var current string
	var past []model.Message
	if len(history) > 0 {
		current = history[len(history)-1].Content
		past = history[:len(history)-1]
	}

	var out []model.ChatMessage
	if preset.SystemPrompt != "" {
		out = append(out, model.ChatMessage{Role: model.RoleSystem, Content: preset.SystemPrompt})
	}
	if preset.CotGuidance != "" {
		out = append(out, model.ChatMessage{Role: model.RoleSystem, Content: preset.CotGuidance})
	}

	wrapped := fmt.Sprintf("<history>\n%s\n</history>\n<user_input>\n%s\n</user_input>",
		renderHistory(past), current)
	out = append(out, model.ChatMessage{Role: model.RoleUser, Content: wrapped})

	if preset.OtherInstructions != "" {
		out = append(out, model.ChatMessage{Role: model.RoleSystem, Content: preset.OtherInstructions})
	}
	return out
}

// renderHistory flattens prior turns into "[Role]: content" lines.
func renderHistory(messages []model.Message) string {
	if len(messages) == 0 {
		return emptyHistoryPlaceholder
	}
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		lines = append(lines, fmt.Sprintf("[%s]: %s", capitalize(m.Role), m.Content))
	}
	return strings.Join(lines, "\n")
}

// RenderPreview formats an assembled payload as markdown for the
// confirm-before-send gate: one "## role" section per message, separated
// by horizontal rules.
func RenderPreview(messages []model.ChatMessage) string {
	sections := make([]string, 0, len(messages))
	for _, m := range messages {
		sections = append(sections, fmt.Sprintf("## %s\n\n%s", m.Role, m.Content))
	}
	return strings.Join(sections, "\n\n---\n\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
