package options

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultGroup is the display bucket for options without a group.
const DefaultGroup = "Other"

const fallbackID = "item"

// Option is an identifiable, selectable phrase. ID is the only persistence and
// selection key; labels may change without breaking references.
type Option struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label" yaml:"label"`
	Group       string `json:"group,omitempty" yaml:"group,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// GroupName returns the display group, falling back to DefaultGroup.
func (o Option) GroupName() string {
	if o.Group == "" {
		return DefaultGroup
	}
	return o.Group
}

// Category is a namespace of options backed by an immutable base catalog.
type Category struct {
	Key   string
	Title string
	Base  []Option
}

var (
	// Interventions lists the therapeutic interventions offered in session.
	Interventions = Category{
		Key:   "interventions",
		Title: "Interventions included",
		Base:  interventionCatalog,
	}
	// Observations lists client affect and therapist response phrases.
	Observations = Category{
		Key:   "observations",
		Title: "Observations/Client Response",
		Base:  observationCatalog,
	}
)

// Categories returns the built-in categories in form order.
func Categories() []Category {
	return []Category{Interventions, Observations}
}

// Lookup finds a built-in category by key.
func Lookup(key string) (Category, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, c := range Categories() {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// Merge returns base followed by custom, each in its own order. The result is
// a fresh slice so callers may not alias either input.
func Merge(base, custom []Option) []Option {
	merged := make([]Option, 0, len(base)+len(custom))
	merged = append(merged, base...)
	merged = append(merged, custom...)
	return merged
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases label, collapses non-alphanumeric runs into single
// hyphens and trims hyphens from both ends.
func Slugify(label string) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(label), "-")
	return strings.Trim(slug, "-")
}

// UniqueID derives an id for label that does not collide with existing.
// Collisions get -2, -3, ... appended to the slug.
func UniqueID(label string, existing []Option) string {
	base := Slugify(label)
	if base == "" {
		base = fallbackID
	}
	taken := make(map[string]struct{}, len(existing))
	for _, opt := range existing {
		taken[opt.ID] = struct{}{}
	}
	id := base
	for n := 2; ; n++ {
		if _, ok := taken[id]; !ok {
			return id
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
}

// Resolve maps ids to labels using merged, keeping the order of ids. Unknown
// ids are dropped.
func Resolve(ids []string, merged []Option) []string {
	labels := make(map[string]string, len(merged))
	for _, opt := range merged {
		labels[opt.ID] = opt.Label
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if label, ok := labels[id]; ok {
			out = append(out, label)
		}
	}
	return out
}

// Filter returns the options whose label or group contains query, ignoring
// case. A blank query returns every option.
func Filter(merged []Option, query string) []Option {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]Option(nil), merged...)
	}
	out := make([]Option, 0, len(merged))
	for _, opt := range merged {
		if strings.Contains(strings.ToLower(opt.Label), q) ||
			strings.Contains(strings.ToLower(opt.Group), q) {
			out = append(out, opt)
		}
	}
	return out
}

// Group is one display partition of a visible list.
type Group struct {
	Name    string
	Options []Option
}

// IDs returns the option ids of the group in display order.
func (g Group) IDs() []string {
	ids := make([]string, len(g.Options))
	for i, opt := range g.Options {
		ids[i] = opt.ID
	}
	return ids
}

// GroupBy partitions visible by group name. Partitions appear in the order
// their group is first seen.
func GroupBy(visible []Option) []Group {
	index := map[string]int{}
	var groups []Group
	for _, opt := range visible {
		name := opt.GroupName()
		idx, ok := index[name]
		if !ok {
			idx = len(groups)
			index[name] = idx
			groups = append(groups, Group{Name: name})
		}
		groups[idx].Options = append(groups[idx].Options, opt)
	}
	return groups
}

// InferGroup returns the group shared by every visible option when the list
// spans exactly one group. Options in the synthetic DefaultGroup yield "".
func InferGroup(visible []Option) string {
	if len(visible) == 0 {
		return ""
	}
	first := visible[0].GroupName()
	for _, opt := range visible[1:] {
		if opt.GroupName() != first {
			return ""
		}
	}
	return visible[0].Group
}

// Validate reports the first duplicated id in list.
func Validate(list []Option) error {
	seen := make(map[string]struct{}, len(list))
	for _, opt := range list {
		if strings.TrimSpace(opt.ID) == "" {
			return fmt.Errorf("option %q has an empty id", opt.Label)
		}
		if _, dup := seen[opt.ID]; dup {
			return fmt.Errorf("duplicate option id %q", opt.ID)
		}
		seen[opt.ID] = struct{}{}
	}
	return nil
}
