package library

import (
	"strings"
	"testing"
)

func mustBuiltin(t *testing.T) *Library {
	t.Helper()
	lib, err := Builtin()
	if err != nil {
		t.Fatalf("load builtin catalog: %v", err)
	}
	return lib
}

func ids(entries []Entry) []int {
	ret := make([]int, 0, len(entries))
	for _, e := range entries {
		ret = append(ret, e.ID)
	}
	return ret
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuiltin(t *testing.T) {
	lib := mustBuiltin(t)
	if lib.Len() != 10 {
		t.Fatalf("expect 10 entries, got %d", lib.Len())
	}
	e, ok := lib.Get(2)
	if !ok {
		t.Fatal("entry 2 missing")
	}
	if e.Name != "Email for Client Update" || e.Tone != "Formal, Friendly" || e.Complexity != "Beginner" {
		t.Errorf("unexpected entry: %+v", e)
	}
	if _, ok := lib.Get(42); ok {
		t.Error("unexpected entry 42")
	}
}

func TestFind(t *testing.T) {
	lib := mustBuiltin(t)
	for _, tc := range []struct {
		name   string
		filter Filter
		want   []int
	}{
		{"all", Filter{}, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"all category", Filter{Category: AllCategories}, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"category", Filter{Category: "Coding & Development"}, []int{3, 10}},
		{"query name", Filter{Query: "EMAIL"}, []int{2, 10}},
		{"query category", Filter{Query: "marketing"}, []int{4}},
		{"any tag", Filter{Tags: []string{"vegan", "tweet"}}, []int{4, 6}},
		{"combined", Filter{Query: "python", Category: "HR & Recruitment"}, []int{7}},
		{"none", Filter{Query: "quantum"}, []int{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := ids(lib.Find(tc.filter)); !equalIDs(got, tc.want) {
				t.Errorf("expect %v, got %v", tc.want, got)
			}
		})
	}
}

func TestCategoriesAndTags(t *testing.T) {
	lib := mustBuiltin(t)
	cats := lib.Categories()
	if cats[0] != AllCategories || len(cats) != 10 {
		t.Errorf("unexpected categories: %v", cats)
	}
	if cats[1] != "Academic" {
		t.Errorf("categories not sorted: %v", cats)
	}
	tags := lib.Tags()
	for i := 1; i < len(tags); i++ {
		if tags[i-1] >= tags[i] {
			t.Fatalf("tags not sorted and distinct: %v", tags)
		}
	}
}

func TestRead(t *testing.T) {
	lib, err := Read(strings.NewReader(`
- id: 2
  name: Second
  category: Test
- id: 1
  name: First
  category: Test
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ids(lib.Find(Filter{})); !equalIDs(got, []int{1, 2}) {
		t.Errorf("entries not ordered by id: %v", got)
	}
	if _, err := Read(strings.NewReader("- id: 1\n- id: 1\n")); err == nil {
		t.Error("expect duplicate id error")
	}
	if _, err := Read(strings.NewReader("{not a list")); err == nil {
		t.Error("expect decode error")
	}
}
