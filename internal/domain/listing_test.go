package domain

import (
	"reflect"
	"testing"
)

func listingBinder() *Binder {
	return &Binder{
		Root: "/tmp/project",
		Structure: []*Item{
			{ID: "a.txt", Filename: "a.txt", Notes: "chapter one notes"},
			{ID: "b.txt", Filename: "b.txt"},
			{ID: "c.txt", Filename: "c.txt", Tags: []string{"draft"}},
		},
	}
}

func allExist(string) bool { return true }

func TestProjectListingStatus(t *testing.T) {
	b := listingBinder()
	exists := func(name string) bool { return name != "b.txt" }

	l := ProjectListing(b, exists, ProjectOptions{})

	if len(l.Lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(l.Lines))
	}
	if l.Lines[0].Status != StatusNotes {
		t.Errorf("expected has-notes status for a.txt, got %v", l.Lines[0].Status)
	}
	if l.Lines[1].Status != StatusMissing {
		t.Errorf("expected missing status for b.txt, got %v", l.Lines[1].Status)
	}
	if l.Lines[2].Status != StatusNone {
		t.Errorf("expected no status for c.txt, got %v", l.Lines[2].Status)
	}
}

func TestProjectListingMissingWinsOverNotes(t *testing.T) {
	b := listingBinder()
	none := func(string) bool { return false }

	l := ProjectListing(b, none, ProjectOptions{})
	if l.Lines[0].Status != StatusMissing {
		t.Errorf("expected missing to take precedence, got %v", l.Lines[0].Status)
	}
}

func TestIDAt(t *testing.T) {
	l := ProjectListing(listingBinder(), allExist, ProjectOptions{})

	id, ok := l.IDAt(1)
	if !ok || id != "b.txt" {
		t.Errorf("expected b.txt at line 1, got %q ok=%v", id, ok)
	}
	if _, ok := l.IDAt(3); ok {
		t.Error("expected out-of-range line to resolve to nothing")
	}
	if _, ok := l.IDAt(-1); ok {
		t.Error("expected negative line to resolve to nothing")
	}
}

func TestMarks(t *testing.T) {
	b := listingBinder()
	l := ProjectListing(b, allExist, ProjectOptions{})

	l.Mark(0)
	l.Mark(2)
	l.Mark(99) // ignored
	if !reflect.DeepEqual(l.MarkedIDs(), []string{"a.txt", "c.txt"}) {
		t.Errorf("unexpected marked ids: %v", l.MarkedIDs())
	}

	l.Unmark(0)
	if !reflect.DeepEqual(l.MarkedIDs(), []string{"c.txt"}) {
		t.Errorf("unexpected marked ids after unmark: %v", l.MarkedIDs())
	}

	// Marking never touches the binder itself.
	if b.Structure[2].Notes != "" || len(b.Structure[2].Tags) != 1 {
		t.Error("marking mutated the binder")
	}
}

func TestReprojectionCarriesMarks(t *testing.T) {
	b := listingBinder()
	first := ProjectListing(b, allExist, ProjectOptions{})
	first.Mark(1)

	second := ProjectListing(b, allExist, ProjectOptions{})
	second.CarryMarks(first)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-projection with carried marks is not idempotent:\n%v\n%v", first, second)
	}
}

func TestProjectListingTagNarrowing(t *testing.T) {
	l := ProjectListing(listingBinder(), allExist, ProjectOptions{Tag: "draft"})

	if len(l.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(l.Lines))
	}
	if l.Lines[0].ID != "c.txt" {
		t.Errorf("expected c.txt, got %s", l.Lines[0].ID)
	}
}

func TestProjectListingHideExtensions(t *testing.T) {
	l := ProjectListing(listingBinder(), allExist, ProjectOptions{HideExtensions: true})

	if l.Lines[0].Display != "a" {
		t.Errorf("expected extension stripped, got %q", l.Lines[0].Display)
	}
	if l.Lines[0].ID != "a.txt" {
		t.Errorf("binding must keep the full id, got %q", l.Lines[0].ID)
	}
}

func TestLineOf(t *testing.T) {
	l := ProjectListing(listingBinder(), allExist, ProjectOptions{})
	if l.LineOf("c.txt") != 2 {
		t.Errorf("expected line 2, got %d", l.LineOf("c.txt"))
	}
	if l.LineOf("zzz") != -1 {
		t.Errorf("expected -1 for unknown id, got %d", l.LineOf("zzz"))
	}
}
