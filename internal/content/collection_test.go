package content

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/Bitlatte/portfolio/internal/stack"
)

func TestTalks_EverySlugResolves(t *testing.T) {
	talks := NewTalks(Talks())
	for _, slug := range talks.Slugs() {
		talk, err := talks.Resolve(slug)
		require.NoError(t, err)
		assert.Equal(t, slug, talk.Slug)
	}
}

func TestProjects_EverySlugResolves(t *testing.T) {
	projects := NewProjects(Projects())
	for _, slug := range projects.Slugs() {
		p, err := projects.Resolve(slug)
		require.NoError(t, err)
		assert.Equal(t, slug, p.Slug)
	}
}

func TestResolve_NotFound(t *testing.T) {
	talks := NewTalks(Talks())
	_, err := talks.Resolve("no-such-talk")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "talks")
}

func TestResolve_CaseSensitive(t *testing.T) {
	talks := NewTalks([]Talk{{Slug: "go-talk"}})
	_, err := talks.Resolve("Go-Talk")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_DuplicateSlugFirstWins(t *testing.T) {
	talks := NewTalks([]Talk{
		{Title: "first", Slug: "dup"},
		{Title: "second", Slug: "dup"},
	})
	talk, err := talks.Resolve("dup")
	require.NoError(t, err)
	assert.Equal(t, "first", talk.Title)

	problems := talks.Check()
	require.Len(t, problems, 1)
	assert.Equal(t, "dup", problems[0].Slug)
	assert.Equal(t, 1, problems[0].Index)
}

func TestCheck_Malformed(t *testing.T) {
	projects := NewProjects([]Project{
		{Slug: "fine-slug"},
		{Slug: "Has Spaces"},
		{Slug: ""},
		{Slug: "trailing-"},
	})
	problems := projects.Check()
	require.Len(t, problems, 3)
	for _, p := range problems {
		assert.Equal(t, "slug is not URL-safe", p.Reason)
	}
}

func TestCatalogs_Clean(t *testing.T) {
	assert.Empty(t, NewTalks(Talks()).Check())
	assert.Empty(t, NewProjects(Projects()).Check())
}

func TestAll_ReturnsCopy(t *testing.T) {
	talks := NewTalks(Talks())
	first := talks.All()
	first[0].Title = "mutated"
	assert.NotEqual(t, "mutated", talks.All()[0].Title)
}

func TestAll_DeepCopiesNestedFields(t *testing.T) {
	talks := NewTalks(Talks())
	all := talks.All()
	all[1].DemosList[0] = ""
	all[1].Tags[0] = "mutated"
	assert.NotEmpty(t, talks.All()[1].DemosList[0])
	assert.NotEqual(t, TalkTag("mutated"), talks.All()[1].Tags[0])

	projects := NewProjects(Projects())
	p, err := projects.Resolve("herb-classifier")
	require.NoError(t, err)
	p.Stack[0] = stack.Stack(4242)
	p.Dimensions[0] = 1
	again, err := projects.Resolve("herb-classifier")
	require.NoError(t, err)
	assert.Equal(t, stack.Java, again.Stack[0])
	assert.Equal(t, 360, again.Size().Height())
}

func TestNewCollection_CopiesInput(t *testing.T) {
	src := []Talk{{Slug: "a"}}
	talks := NewTalks(src)
	src[0].Slug = "b"
	_, err := talks.Resolve("a")
	assert.NoError(t, err)
}

func slugGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-z0-9]{1,8}(-[a-z0-9]{1,8}){0,3}`)
}

func TestProperty_EnumerateResolveAgree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		slugs := rapid.SliceOfNDistinct(slugGen(), 0, 20, rapid.ID[string]).Draw(t, "slugs")
		talks := make([]Talk, len(slugs))
		for i, s := range slugs {
			talks[i] = Talk{Title: fmt.Sprintf("talk %d", i), Slug: s}
		}
		c := NewTalks(talks)

		got := c.Slugs()
		if len(got) != len(slugs) {
			t.Fatalf("enumerated %d slugs, want %d", len(got), len(slugs))
		}
		for i, s := range got {
			if s != slugs[i] {
				t.Fatalf("slug %d = %q, want %q", i, s, slugs[i])
			}
			talk, err := c.Resolve(s)
			if err != nil {
				t.Fatalf("resolve %q: %v", s, err)
			}
			if talk.Slug != s {
				t.Fatalf("resolve %q returned %q", s, talk.Slug)
			}
		}
		if len(c.Check()) != 0 {
			t.Fatalf("distinct well-formed slugs reported as problems: %v", c.Check())
		}
	})
}

func TestProperty_UnknownSlugNotFound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		slugs := rapid.SliceOfNDistinct(slugGen(), 0, 10, rapid.ID[string]).Draw(t, "slugs")
		probe := slugGen().Draw(t, "probe")
		for _, s := range slugs {
			if s == probe {
				t.Skip("probe collides with a catalog slug")
			}
		}
		projects := make([]Project, len(slugs))
		for i, s := range slugs {
			projects[i] = Project{Slug: s}
		}
		_, err := NewProjects(projects).Resolve(probe)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("resolve %q: got %v, want ErrNotFound", probe, err)
		}
	})
}

func TestProperty_EnumerationStable(t *testing.T) {
	c := NewTalks(Talks())
	want := c.Slugs()
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 5).Draw(t, "repeats")
		for i := 0; i < n; i++ {
			got := c.Slugs()
			for j := range want {
				if got[j] != want[j] {
					t.Fatalf("enumeration changed at %d: %q != %q", j, got[j], want[j])
				}
			}
		}
	})
}
