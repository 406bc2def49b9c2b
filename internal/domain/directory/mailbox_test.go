package directory

import (
	"errors"
	"fmt"
	"testing"
)

func TestMailboxFIFO(t *testing.T) {
	m := NewMailbox(0)
	for i := 0; i < 3; i++ {
		if err := m.Append(fmt.Sprintf("msg-%d", i)); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	for i := 0; i < 3; i++ {
		msg, state, ok := m.Pop()
		if !ok {
			t.Fatalf("Pop %d: expected a message", i)
		}
		if want := fmt.Sprintf("msg-%d", i); msg != want {
			t.Errorf("Pop %d = %q, want %q", i, msg, want)
		}
		wantState := NonEmpty
		if i == 2 {
			wantState = Empty
		}
		if state != wantState {
			t.Errorf("Pop %d state = %v, want %v", i, state, wantState)
		}
	}

	if _, state, ok := m.Pop(); ok || state != Empty {
		t.Errorf("Pop on empty = (%v, %v), want (Empty, false)", state, ok)
	}
}

func TestMailboxPopEmptyMessage(t *testing.T) {
	m := NewMailbox(0)
	if err := m.Append(""); err != nil {
		t.Fatalf("Append: %v", err)
	}
	msg, _, ok := m.Pop()
	if !ok || msg != "" {
		t.Errorf("Pop = (%q, %v), want empty string popped", msg, ok)
	}
}

func TestMailboxBounded(t *testing.T) {
	m := NewMailbox(2)
	if err := m.Append("a"); err != nil {
		t.Fatalf("Append a: %v", err)
	}
	if err := m.Append("b"); err != nil {
		t.Fatalf("Append b: %v", err)
	}
	if err := m.Append("c"); !errors.Is(err, ErrMailboxFull) {
		t.Fatalf("Append over limit = %v, want ErrMailboxFull", err)
	}
	if got := m.Len(); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}

	// Popping frees capacity again.
	if _, _, ok := m.Pop(); !ok {
		t.Fatal("Pop: expected a message")
	}
	if err := m.Append("c"); err != nil {
		t.Errorf("Append after pop: %v", err)
	}
}

func TestMailboxDrainAll(t *testing.T) {
	m := NewMailbox(0)
	_ = m.Append("one")
	_ = m.Append("two")

	if got := m.DrainAll(); got != "onetwo" {
		t.Errorf("DrainAll = %q, want %q", got, "onetwo")
	}
	if got := m.Len(); got != 0 {
		t.Errorf("Len after drain = %d, want 0", got)
	}
	if got := m.DrainAll(); got != "" {
		t.Errorf("second DrainAll = %q, want empty", got)
	}
}
