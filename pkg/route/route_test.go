package route

import (
	"testing"

	"tableflip.dev/todo/pkg/todo"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Route
	}{
		{"/", All},
		{"/completed", Completed},
		{"/pending", Pending},
		{"", All},
		{"/garbage", All},
		{"  /pending  ", Pending},
	}
	for _, tc := range tests {
		if got := Parse(tc.raw); got != tc.want {
			t.Errorf("Parse(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestApply(t *testing.T) {
	list := []todo.Todo{
		{ID: 1, Title: "a", Completed: false},
		{ID: 2, Title: "b", Completed: true},
	}

	pending := Pending.Apply(list)
	if len(pending) != 1 || pending[0].ID != 1 {
		t.Fatalf("pending filter wrong: %+v", pending)
	}

	completed := Completed.Apply(list)
	if len(completed) != 1 || completed[0].ID != 2 {
		t.Fatalf("completed filter wrong: %+v", completed)
	}

	all := All.Apply(list)
	if len(all) != 2 {
		t.Fatalf("all filter wrong: %+v", all)
	}

	// Apply must copy, never alias.
	all[0].Title = "mutated"
	if list[0].Title != "a" {
		t.Fatal("Apply returned an aliasing slice")
	}
}

func TestApplyEmpty(t *testing.T) {
	if got := Completed.Apply(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
