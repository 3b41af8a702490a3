package content

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrNotFound is returned by Resolve when no record has the slug.
var ErrNotFound = errors.New("not found")

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidSlug reports whether s is lowercase, hyphen separated and free of
// whitespace.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// Collection is an ordered, read-only list of records addressed by slug.
type Collection[T any] struct {
	name  string
	items []T
	slug  func(T) string
	clone func(T) T
}

// NewCollection deep-copies items with clone, so the caller keeps no
// handle on the stored records. A nil clone copies records by value.
func NewCollection[T any](name string, items []T, slug func(T) string, clone func(T) T) *Collection[T] {
	if clone == nil {
		clone = func(v T) T { return v }
	}
	c := &Collection[T]{name: name, slug: slug, clone: clone}
	c.items = c.cloneAll(items)
	return c
}

// NewProjects wraps projects in a Collection.
func NewProjects(projects []Project) *Collection[Project] {
	return NewCollection("projects", projects, func(p Project) string { return p.Slug }, Project.Clone)
}

// NewTalks wraps talks in a Collection.
func NewTalks(talks []Talk) *Collection[Talk] {
	return NewCollection("talks", talks, func(t Talk) string { return t.Slug }, Talk.Clone)
}

func (c *Collection[T]) cloneAll(items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = c.clone(item)
	}
	return out
}

// Name identifies the collection in errors and logs.
func (c *Collection[T]) Name() string { return c.name }

// Len returns the number of records.
func (c *Collection[T]) Len() int { return len(c.items) }

// All returns deep copies of the records in declaration order.
func (c *Collection[T]) All() []T {
	return c.cloneAll(c.items)
}

// Resolve returns a copy of the first record whose slug equals slug
// exactly.
func (c *Collection[T]) Resolve(slug string) (T, error) {
	for _, item := range c.items {
		if c.slug(item) == slug {
			return c.clone(item), nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s %q: %w", c.name, slug, ErrNotFound)
}

// Slugs returns every slug in the same order as All.
func (c *Collection[T]) Slugs() []string {
	out := make([]string, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, c.slug(item))
	}
	return out
}

// SlugProblem describes a slug that breaks the collection's rules.
type SlugProblem struct {
	Slug   string
	Index  int
	Reason string
}

// Check returns every duplicate or malformed slug. Resolve keeps returning
// the first record for a duplicated slug; callers that care must run Check.
func (c *Collection[T]) Check() []SlugProblem {
	var problems []SlugProblem
	first := make(map[string]int, len(c.items))
	for i, item := range c.items {
		s := c.slug(item)
		if !ValidSlug(s) {
			problems = append(problems, SlugProblem{Slug: s, Index: i, Reason: "slug is not URL-safe"})
		}
		if j, ok := first[s]; ok {
			problems = append(problems, SlugProblem{
				Slug:   s,
				Index:  i,
				Reason: fmt.Sprintf("duplicate slug, first used at index %d", j),
			})
			continue
		}
		first[s] = i
	}
	return problems
}
