package palette

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"nathanbeddoewebdev/huepick/internal/color"
)

var (
	red   = color.New(255, 0, 0)
	green = color.New(0, 255, 0)
	blue  = color.New(0, 0, 255)
)

func TestState_ApplyPushesUndo(t *testing.T) {
	s := NewState(Default())
	next := Default().With(AccentA, red)

	s.Apply(next)

	if s.Current() != next {
		t.Errorf("Current() = %+v, want %+v", s.Current(), next)
	}
	if s.UndoDepth() != 1 || s.RedoDepth() != 0 {
		t.Errorf("depths = (%d, %d), want (1, 0)", s.UndoDepth(), s.RedoDepth())
	}
}

func TestState_InverseLaw(t *testing.T) {
	s := NewState(Default())
	s.SetRole(Background, red)
	s.SetRole(AccentA, green)
	before := s.Current()
	s.SetRole(Highlight, blue)
	last := s.Current()

	if !s.Undo() {
		t.Fatal("Undo() = false")
	}
	if diff := cmp.Diff(before, s.Current()); diff != "" {
		t.Errorf("after undo (-want +got):\n%s", diff)
	}

	if !s.Redo() {
		t.Fatal("Redo() = false")
	}
	if diff := cmp.Diff(last, s.Current()); diff != "" {
		t.Errorf("after redo (-want +got):\n%s", diff)
	}
}

func TestState_UndoToStart(t *testing.T) {
	s := NewState(Default())
	s.SetRole(Background, red)
	s.SetRole(Background, green)

	s.Undo()
	s.Undo()

	if s.Current() != Default() {
		t.Errorf("Current() = %+v, want default", s.Current())
	}
	if s.Undo() {
		t.Error("Undo() on empty history = true")
	}
	if s.Current() != Default() {
		t.Error("no-op Undo changed current")
	}
	if s.RedoDepth() != 2 {
		t.Errorf("RedoDepth() = %d, want 2", s.RedoDepth())
	}
}

func TestState_RedoEmptyIsNoop(t *testing.T) {
	s := NewState(Default())
	if s.Redo() {
		t.Error("Redo() on empty stack = true")
	}
	if s.Current() != Default() || s.UndoDepth() != 0 {
		t.Error("no-op Redo changed state")
	}
}

func TestState_ApplyKeepsStaleRedo(t *testing.T) {
	s := NewState(Default())
	s.SetRole(AccentA, red)
	undone := s.Current()
	s.Undo()

	s.SetRole(AccentA, green)
	if s.RedoDepth() != 1 {
		t.Fatalf("RedoDepth() = %d, want 1 after apply", s.RedoDepth())
	}

	if !s.Redo() {
		t.Fatal("Redo() = false")
	}
	if diff := cmp.Diff(undone, s.Current()); diff != "" {
		t.Errorf("stale redo entry (-want +got):\n%s", diff)
	}
	if s.UndoDepth() != 2 {
		t.Errorf("UndoDepth() = %d, want 2", s.UndoDepth())
	}
}

func TestState_InvertRoleAndAll(t *testing.T) {
	s := NewState(Default())

	s.InvertRole(AccentA)
	if got := s.Current().AccentA; got != color.New(0, 0, 0) {
		t.Errorf("AccentA = %v, want black", got)
	}
	if s.Current().Background != Default().Background {
		t.Error("InvertRole touched another role")
	}

	s.InvertAll()
	want := Default().With(AccentA, color.New(0, 0, 0)).Inverted()
	if diff := cmp.Diff(want, s.Current()); diff != "" {
		t.Errorf("InvertAll (-want +got):\n%s", diff)
	}
	if s.UndoDepth() != 2 {
		t.Errorf("InvertAll should be one step, UndoDepth() = %d", s.UndoDepth())
	}
}

func TestState_LIFOOrder(t *testing.T) {
	s := NewState(Default())
	seq := []color.Color{red, green, blue}
	for _, c := range seq {
		s.SetRole(Highlight, c)
	}
	for i := len(seq) - 2; i >= 0; i-- {
		s.Undo()
		if got := s.Current().Highlight; got != seq[i] {
			t.Fatalf("undo step: Highlight = %v, want %v", got, seq[i])
		}
	}
	for i := 1; i < len(seq); i++ {
		s.Redo()
		if got := s.Current().Highlight; got != seq[i] {
			t.Fatalf("redo step: Highlight = %v, want %v", got, seq[i])
		}
	}
}
