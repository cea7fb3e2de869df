package porkbelly

import "testing"

func TestDialogueAdvance(t *testing.T) {
	d := NewDialogue([]string{"first", "second"})
	if d.State() != DialogueDormant {
		t.Errorf("State = %v, want Dormant", d.State())
	}

	line, ok := d.Advance()
	if !ok || line != "first" {
		t.Errorf("Advance = %q, %v; want first, true", line, ok)
	}
	if d.State() != DialogueAdvancing {
		t.Errorf("State = %v, want Advancing", d.State())
	}

	line, ok = d.Advance()
	if !ok || line != "second" {
		t.Errorf("Advance = %q, %v; want second, true", line, ok)
	}
	if !d.Invited() {
		t.Errorf("State = %v, want Invited", d.State())
	}

	for i := 0; i < 3; i++ {
		if line, ok := d.Advance(); ok || line != "" {
			t.Errorf("Advance past end = %q, %v", line, ok)
		}
	}
	if !d.Invited() || d.Consumed() != 2 || d.Remaining() != 0 {
		t.Errorf("after end: state %v consumed %d remaining %d", d.State(), d.Consumed(), d.Remaining())
	}
}

func TestDialogueCopiesLines(t *testing.T) {
	lines := []string{"a", "b"}
	d := NewDialogue(lines)
	lines[0] = "changed"
	if line, _ := d.Advance(); line != "a" {
		t.Errorf("Advance = %q, want a", line)
	}
	if d.Len() != 2 {
		t.Errorf("Len = %d, want 2", d.Len())
	}
}

func TestDialogueEmptyNeverInvited(t *testing.T) {
	d := NewDialogue(nil)
	if _, ok := d.Advance(); ok {
		t.Error("empty dialogue advanced")
	}
	if d.Invited() {
		t.Error("empty dialogue reports invited")
	}
}

func TestDialogueStateString(t *testing.T) {
	tests := []struct {
		s    DialogueState
		want string
	}{
		{DialogueDormant, "Dormant"},
		{DialogueAdvancing, "Advancing"},
		{DialogueInvited, "Invited"},
		{DialogueState(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
