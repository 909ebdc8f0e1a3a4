package content

// FieldState is the display state of an editable field.
type FieldState int

// Field states.
const (
	Viewing FieldState = iota
	Editing
)

// Key identifies the keystrokes the field state machine reacts to.
type Key int

// Keys handled while editing.
const (
	KeyEnter Key = iota
	KeyEscape
)

// Field is the per-rendered-field controller wrapping one leaf of a page
// subtree. It renders as static text until the session is in edit mode;
// while editing it holds a local buffer and only commits through the patch
// engine when the buffer actually changed.
type Field struct {
	session *EditSession

	// Page and Path locate the wrapped leaf; Multiline selects the input
	// widget and disables Enter-to-commit.
	Page      string
	Path      string
	Multiline bool

	state   FieldState
	display string
	buffer  string
}

// NewField wraps one field whose current displayed value is display.
func NewField(session *EditSession, page, path, display string, multiline bool) *Field {
	return &Field{
		session:   session,
		Page:      page,
		Path:      path,
		Multiline: multiline,
		display:   display,
	}
}

// State returns the current state.
func (f *Field) State() FieldState { return f.state }

// Display returns the value currently shown when viewing.
func (f *Field) Display() string { return f.display }

// Click enters editing if the session is in edit mode, snapshotting the
// displayed value into the edit buffer. Otherwise it is ignored and the
// field stays static.
func (f *Field) Click() bool {
	if f.state != Viewing || !f.session.EditMode() {
		return false
	}
	f.buffer = f.display
	f.state = Editing
	return true
}

// SetBuffer replaces the edit buffer (the user typing).
func (f *Field) SetBuffer(value string) {
	if f.state == Editing {
		f.buffer = value
	}
}

// Buffer returns the current edit buffer.
func (f *Field) Buffer() string { return f.buffer }

// Blur leaves editing and commits the buffer if it changed.
func (f *Field) Blur() error {
	return f.commit()
}

// Keystroke feeds a key to the field. Enter commits for single-line fields
// (multiline fields treat it as input); Escape discards the buffer and
// produces no pending change.
func (f *Field) Keystroke(k Key) error {
	if f.state != Editing {
		return nil
	}
	switch k {
	case KeyEnter:
		if f.Multiline {
			return nil
		}
		return f.commit()
	case KeyEscape:
		f.buffer = f.display
		f.state = Viewing
		return nil
	}
	return nil
}

func (f *Field) commit() error {
	if f.state != Editing {
		return nil
	}
	f.state = Viewing
	if f.buffer == f.display {
		return nil
	}
	if err := f.session.UpdateContent(f.Page, f.Path, f.buffer); err != nil {
		// Failed commits leave the displayed value untouched.
		f.buffer = f.display
		return err
	}
	f.display = f.buffer
	return nil
}
