// Package library is a searchable catalog of ready-made prompt templates.
package library

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// AllCategories matches every category in a Filter
const AllCategories = "All"

//go:embed prompts.yaml
var builtin []byte

// Entry is a catalog prompt with the generation settings it was written for
type Entry struct {
	ID         int      `yaml:"id" json:"id"`
	Name       string   `yaml:"name" json:"name"`
	Category   string   `yaml:"category" json:"category"`
	Tags       []string `yaml:"tags" json:"tags"`
	Prompt     string   `yaml:"prompt" json:"prompt"`
	Tone       string   `yaml:"tone" json:"tone"`
	Format     string   `yaml:"format" json:"format"`
	Complexity string   `yaml:"complexity" json:"complexity"`
}

// HasTag reports whether the entry carries any of tags
func (e Entry) HasTag(tags ...string) bool {
	for _, tag := range tags {
		if slices.Contains(e.Tags, tag) {
			return true
		}
	}
	return false
}

// Filter narrows a catalog listing. Zero values match everything.
type Filter struct {
	// Query is matched case-insensitively against name, prompt and category
	Query string
	// Category must match exactly unless empty or AllCategories
	Category string
	// Tags match entries carrying any of them
	Tags []string
}

func (f Filter) match(e Entry) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(e.Name), q) &&
			!strings.Contains(strings.ToLower(e.Prompt), q) &&
			!strings.Contains(strings.ToLower(e.Category), q) {
			return false
		}
	}
	if f.Category != "" && f.Category != AllCategories && e.Category != f.Category {
		return false
	}
	if len(f.Tags) > 0 && !e.HasTag(f.Tags...) {
		return false
	}
	return true
}

// Library holds catalog entries in id order
type Library struct {
	entries []Entry
}

// Builtin returns the catalog shipped with the binary
func Builtin() (*Library, error) {
	return parse(builtin)
}

// Load reads a catalog from a YAML file
func Load(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a YAML catalog
func Read(r io.Reader) (*Library, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(bs)
}

func parse(bs []byte) (*Library, error) {
	var entries []Entry
	if err := yaml.Unmarshal(bs, &entries); err != nil {
		return nil, fmt.Errorf("library: decode catalog: %w", err)
	}
	seen := make(map[int]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.ID]; ok {
			return nil, fmt.Errorf("library: duplicate prompt id %d", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return &Library{entries: entries}, nil
}

// Len returns the number of entries
func (l *Library) Len() int {
	return len(l.entries)
}

// Get returns the entry with id
func (l *Library) Get(id int) (Entry, bool) {
	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Find returns the entries matching f in id order
func (l *Library) Find(f Filter) []Entry {
	ret := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		if f.match(e) {
			ret = append(ret, e)
		}
	}
	return ret
}

// Categories returns AllCategories followed by the sorted distinct categories
func (l *Library) Categories() []string {
	set := make(map[string]struct{})
	for _, e := range l.entries {
		set[e.Category] = struct{}{}
	}
	ret := make([]string, 0, len(set)+1)
	for c := range set {
		ret = append(ret, c)
	}
	sort.Strings(ret)
	return append([]string{AllCategories}, ret...)
}

// Tags returns the sorted distinct tags
func (l *Library) Tags() []string {
	set := make(map[string]struct{})
	for _, e := range l.entries {
		for _, t := range e.Tags {
			set[t] = struct{}{}
		}
	}
	ret := make([]string, 0, len(set))
	for t := range set {
		ret = append(ret, t)
	}
	sort.Strings(ret)
	return ret
}
