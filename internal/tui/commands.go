package tui

import "strings"

// Command represents a parsed slash command.
type Command struct {
	Name string
	Args string
}

// ParseCommand parses a slash command from input.
// Returns nil if the input is not a slash command.
func ParseCommand(input string) *Command {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return nil
	}

	input = input[1:] // strip leading /
	parts := strings.SplitN(input, " ", 2)
	cmd := &Command{Name: strings.ToLower(parts[0])}
	if len(parts) > 1 {
		cmd.Args = strings.TrimSpace(parts[1])
	}
	return cmd
}

// HelpText returns the help message for all slash commands.
func HelpText() string {
	return `Available commands:
  /help                Show this help message
  /quit, /bye, /exit   Exit the demo
  /clear               Clear the conversation display
  /copy                Copy the last assistant message to the clipboard
  /state [<name>]      Pin the input button to a state (no arg unpins);
                       states: can_submit_prompt, can_cancel_prompt,
                       can_stt, is_recording, can_cancel_stt, disabled
  /update              Check for updates and upgrade

Keys:
  Enter        Submit the prompt
  Alt+Enter    Insert a newline
  Esc          Cancel a streaming response
  Ctrl+R       Start/stop recording
  Ctrl+C       Quit`
}
