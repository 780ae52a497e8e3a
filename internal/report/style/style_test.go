package style

import "testing"

func TestAddResolvesZeroLeading(t *testing.T) {
	s := NewSheet()
	s.Add("normal", Style{Size: 10})

	got := s.Get("normal")
	if got.Leading != 12 {
		t.Fatalf("expected leading 12, got %v", got.Leading)
	}
}

func TestAddKeepsExplicitLeading(t *testing.T) {
	s := NewSheet()
	s.Add("title", Style{Size: 20, Leading: 24})

	if got := s.Get("title").Leading; got != 24 {
		t.Fatalf("expected leading 24, got %v", got)
	}
}

func TestDeriveInheritsAndOverrides(t *testing.T) {
	s := NewSheet()
	s.Add("normal", Style{Size: 11, Leading: 13.2})
	s.Derive("boldRight", "normal", func(st *Style) {
		st.Bold = true
		st.Align = AlignRight
	})

	got := s.Get("boldRight")
	if !got.Bold {
		t.Fatalf("expected derived style to be bold")
	}
	if got.Align != AlignRight {
		t.Fatalf("expected derived style to align right, got %v", got.Align)
	}
	if got.Size != 11 || got.Leading != 13.2 {
		t.Fatalf("expected size and leading inherited from parent, got %v/%v", got.Size, got.Leading)
	}

	// The parent must stay untouched.
	parent := s.Get("normal")
	if parent.Bold || parent.Align != AlignLeft {
		t.Fatalf("parent style mutated: %+v", parent)
	}
}

func TestDeriveWithoutMutateCopiesParent(t *testing.T) {
	s := NewSheet()
	s.Add("normal", Style{Size: 14, Leading: 16.8})
	s.Derive("alias", "normal", nil)

	if s.Get("alias") != s.Get("normal") {
		t.Fatalf("expected alias to equal parent")
	}
}

func TestGetUnregisteredPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unregistered role")
		}
	}()
	NewSheet().Get("missing")
}

func TestAddDuplicatePanics(t *testing.T) {
	s := NewSheet()
	s.Add("normal", Style{Size: 10})
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for duplicate role")
		}
	}()
	s.Add("normal", Style{Size: 12})
}
