package tui

import "strings"

// cannedReplies are the demo responder's markdown answers. The demo has
// no model backend; replies cycle so every widget state stays reachable
// without a network.
var cannedReplies = []string{
	"Here's a quick tour:\n\n- **Enter** submits this prompt\n- **Esc** stops me mid-reply\n- **Ctrl+R** records audio\n\nTry cancelling this response while it streams.",
	"The button next to the input changes with what you're doing:\n\n1. empty input shows the *record* button\n2. typing shows *submit*\n3. streaming shows *stop*\n\nAll driven by one style bundle.",
	"You can restyle everything from `config.yaml`:\n\n```yaml\nbuttons:\n  placement: prefix\n  custom_icons:\n    submit: \"🚀\"\n```\n\nRestart the demo to pick it up.",
}

// replyChunks splits a canned reply into word-sized chunks so it can be
// streamed over ticks.
func replyChunks(reply string) []string {
	words := strings.Split(reply, " ")
	chunks := make([]string, 0, len(words))
	for i, w := range words {
		if i < len(words)-1 {
			w += " "
		}
		chunks = append(chunks, w)
	}
	return chunks
}
