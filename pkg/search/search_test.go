package search

import "testing"

func TestMatchEveryTermMustAppear(t *testing.T) {
	f := Fields{
		Title:        "File taxes",
		Description:  "gather W2 forms",
		Tags:         []string{"finance", "paperwork"},
		CategoryName: "Tasks",
	}

	if !Match(f, "taxes") {
		t.Fatalf("single term in title should match")
	}
	if !Match(f, "taxes forms") {
		t.Fatalf("terms across fields should match")
	}
	if !Match(f, "FINANCE") {
		t.Fatalf("matching is case-insensitive")
	}
	if !Match(f, "tasks") {
		t.Fatalf("category name is searchable")
	}
	if Match(f, "taxes missing") {
		t.Fatalf("a term with no hit should fail the whole query")
	}
}

func TestMatchBlankQuery(t *testing.T) {
	if !Match(Fields{}, "") {
		t.Fatalf("blank query matches everything")
	}
	if !Match(Fields{}, "   ") {
		t.Fatalf("whitespace query matches everything")
	}
}

func TestTerms(t *testing.T) {
	got := Terms("  Deep   WORK ")
	if len(got) != 2 || got[0] != "deep" || got[1] != "work" {
		t.Fatalf("unexpected terms: %v", got)
	}
}
