// Package widget provides the chat input widgets: the input-state to
// render-plan resolver, a generic action-button renderer, and the
// stateful InputButton Bubble Tea component.
package widget

// InputState describes what the chat input control currently permits.
// Transitions are owned by the host (input, recording and transcription
// subsystems); this package only projects a state into a render plan.
type InputState int

const (
	// CanSubmitPrompt means the composed prompt can be submitted.
	CanSubmitPrompt InputState = iota
	// CanCancelPrompt means a response is in flight and can be cancelled.
	CanCancelPrompt
	// CanStt means audio recording can be started.
	CanStt
	// IsRecording means audio is being recorded.
	IsRecording
	// CanCancelStt means a transcription is finishing.
	CanCancelStt
	// Disabled means the control accepts no action.
	Disabled
)

// String returns a human-readable name for the state.
func (s InputState) String() string {
	switch s {
	case CanSubmitPrompt:
		return "can_submit_prompt"
	case CanCancelPrompt:
		return "can_cancel_prompt"
	case CanStt:
		return "can_stt"
	case IsRecording:
		return "is_recording"
	case CanCancelStt:
		return "can_cancel_stt"
	case Disabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// InputStates lists every input state in declaration order.
func InputStates() []InputState {
	return []InputState{
		CanSubmitPrompt,
		CanCancelPrompt,
		CanStt,
		IsRecording,
		CanCancelStt,
		Disabled,
	}
}
