package porkbelly

// DialogueState is the invitation progress of an actor with dialogue.
type DialogueState uint8

const (
	DialogueDormant   DialogueState = iota // no line shown yet, bubble hidden
	DialogueAdvancing                      // some lines shown, more remain
	DialogueInvited                        // every line shown; terminal
)

// String returns the state name.
func (s DialogueState) String() string {
	switch s {
	case DialogueDormant:
		return "Dormant"
	case DialogueAdvancing:
		return "Advancing"
	case DialogueInvited:
		return "Invited"
	default:
		return "Unknown"
	}
}

// Dialogue walks an immutable list of lines with a cursor. The earliest
// authored line is shown first.
type Dialogue struct {
	lines []string
	next  int
}

// NewDialogue copies lines into a new dialogue.
func NewDialogue(lines []string) *Dialogue {
	return &Dialogue{lines: append([]string(nil), lines...)}
}

// Advance returns the next line. ok is false once every line has been shown;
// the cursor never moves past the end.
func (d *Dialogue) Advance() (line string, ok bool) {
	if d.next >= len(d.lines) {
		return "", false
	}
	line = d.lines[d.next]
	d.next++
	return line, true
}

// State derives the invitation state from the cursor.
func (d *Dialogue) State() DialogueState {
	switch {
	case len(d.lines) > 0 && d.next >= len(d.lines):
		return DialogueInvited
	case d.next > 0:
		return DialogueAdvancing
	default:
		return DialogueDormant
	}
}

// Invited reports whether every line has been consumed. Once true it stays true.
func (d *Dialogue) Invited() bool {
	return d.State() == DialogueInvited
}

// Consumed returns the number of lines shown so far.
func (d *Dialogue) Consumed() int { return d.next }

// Remaining returns the number of lines not yet shown.
func (d *Dialogue) Remaining() int { return len(d.lines) - d.next }

// Len returns the total number of lines.
func (d *Dialogue) Len() int { return len(d.lines) }
