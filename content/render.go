package content

// Mode selects how resolved text is surfaced.
type Mode int

const (
	// ModeReadOnly displays the text without accepting edits.
	ModeReadOnly Mode = iota

	// ModeEditable surfaces the text as the initial value of an editable
	// field.
	ModeEditable
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeReadOnly:
		return "read-only"
	case ModeEditable:
		return "editable"
	default:
		return "unknown"
	}
}

// RenderInstruction tells the presentation layer how to surface resolved
// text. The presentation layer itself is an external collaborator; this
// struct is the whole contract with it.
type RenderInstruction struct {
	Mode Mode
	Text string
}

// Present builds the render instruction for resolved text. It is shared by
// every body variant; only text extraction differs per variant.
func Present(editable bool, text string) RenderInstruction {
	if editable {
		return RenderInstruction{Mode: ModeEditable, Text: text}
	}
	return RenderInstruction{Mode: ModeReadOnly, Text: text}
}
