package site

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitlatte/portfolio/internal/contact"
	"github.com/Bitlatte/portfolio/internal/content"
	"github.com/Bitlatte/portfolio/internal/stack"
)

func integrityErrors(t *testing.T, err error) []*IntegrityError {
	t.Helper()
	require.Error(t, err)
	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok, "expected a joined error, got %T", err)
	var out []*IntegrityError
	for _, e := range joined.Unwrap() {
		var ie *IntegrityError
		require.True(t, errors.As(e, &ie), "unexpected error %v", e)
		out = append(out, ie)
	}
	return out
}

func TestDefault(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 4, s.Projects.Len())
	assert.Equal(t, 3, s.Talks.Len())
	assert.Equal(t, "https://github.com/miliariadnane", s.Contact.Link(contact.GitHub))
	assert.Positive(t, PostsPerPage)
}

func TestNew_DuplicateSlug(t *testing.T) {
	c := DefaultCatalog()
	c.Talks = append(c.Talks, content.Talk{Title: "Again", Slug: c.Talks[0].Slug, Date: "2024-01-01"})

	_, err := New(c)
	errs := integrityErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "talks", errs[0].Collection)
	assert.Equal(t, c.Talks[0].Slug, errs[0].Key)
	assert.Contains(t, errs[0].Reason, "duplicate")
}

func TestNew_UnknownStack(t *testing.T) {
	c := DefaultCatalog()
	c.Projects[1].Stack = append(c.Projects[1].Stack, stack.Stack(4242))

	_, err := New(c)
	errs := integrityErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "herb-classifier", errs[0].Key)
	assert.Contains(t, errs[0].Reason, "Stack(4242)")
}

func TestNew_BadDate(t *testing.T) {
	c := DefaultCatalog()
	c.Talks[2].Date = "21/07/2020"

	_, err := New(c)
	errs := integrityErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "why-soft-skills-are-important-in-your-career", errs[0].Key)
}

func TestNew_CollectsEveryProblem(t *testing.T) {
	c := DefaultCatalog()
	delete(c.Contact.Links, contact.Email)
	c.Projects[0].Slug = "Not Safe"
	c.Projects[2].Dimensions = &content.Dimensions{0, 640}
	c.Talks[0].Title = ""

	_, err := New(c)
	errs := integrityErrors(t, err)
	assert.Len(t, errs, 4)
}

func TestNew_DoesNotShareContactMap(t *testing.T) {
	c := DefaultCatalog()
	s, err := New(c)
	require.NoError(t, err)
	c.Contact.Links[contact.GitHub] = "https://example.com"
	assert.Equal(t, "https://github.com/miliariadnane", s.Contact.Link(contact.GitHub))
}

func TestNew_DoesNotShareRecords(t *testing.T) {
	c := DefaultCatalog()
	s, err := New(c)
	require.NoError(t, err)

	c.Projects[1].Stack[0] = stack.Stack(4242)
	c.Projects[1].Dimensions[1] = 0
	c.Talks[1].DemosList[0] = ""

	p, err := s.Projects.Resolve(c.Projects[1].Slug)
	require.NoError(t, err)
	assert.Equal(t, stack.Java, p.Stack[0])
	assert.Equal(t, 640, p.Size().Width())
	assert.Len(t, content.ProjectBadges(p.Stack), len(p.Stack))

	talk, err := s.Talks.Resolve(c.Talks[1].Slug)
	require.NoError(t, err)
	assert.NotEmpty(t, talk.DemosList[0])
}

func TestIntegrityErrorMessage(t *testing.T) {
	e := &IntegrityError{Collection: "talks", Key: "dup", Reason: "duplicate slug"}
	assert.Equal(t, `talks "dup": duplicate slug`, e.Error())
}
