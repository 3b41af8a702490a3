// Package site composes the contact, project and talk catalogs into the
// read-only value every renderer works from.
package site

import (
	"errors"
	"fmt"

	"github.com/Bitlatte/portfolio/internal/contact"
	"github.com/Bitlatte/portfolio/internal/content"
	"github.com/Bitlatte/portfolio/internal/stack"
)

// PostsPerPage is how many post summaries a blog listing page shows.
const PostsPerPage = 10

// Catalog is the raw data a Site is built from.
type Catalog struct {
	Contact  contact.Registry
	Projects []content.Project
	Talks    []content.Talk
}

// DefaultCatalog returns the compiled-in data.
func DefaultCatalog() Catalog {
	return Catalog{
		Contact:  contact.Default(),
		Projects: content.Projects(),
		Talks:    content.Talks(),
	}
}

// Site is built once and never modified, so it can be shared freely.
type Site struct {
	Contact  contact.Registry
	Projects *content.Collection[content.Project]
	Talks    *content.Collection[content.Talk]
}

// IntegrityError is a defect in the compiled-in data.
type IntegrityError struct {
	Collection string
	Key        string
	Reason     string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Collection, e.Key, e.Reason)
}

// New validates the catalog and returns the Site. Every violation found
// is reported, joined into one error.
func New(c Catalog) (*Site, error) {
	links := make(map[contact.Channel]string, len(c.Contact.Links))
	for k, v := range c.Contact.Links {
		links[k] = v
	}
	reg := c.Contact
	reg.Links = links

	s := &Site{
		Contact:  reg,
		Projects: content.NewProjects(c.Projects),
		Talks:    content.NewTalks(c.Talks),
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Default builds the Site from DefaultCatalog.
func Default() (*Site, error) {
	return New(DefaultCatalog())
}

func (s *Site) validate() error {
	var errs []error

	if err := stack.Validate(); err != nil {
		errs = append(errs, &IntegrityError{Collection: "stack", Key: "registry", Reason: err.Error()})
	}
	if err := s.Contact.Validate(); err != nil {
		errs = append(errs, &IntegrityError{Collection: "contact", Key: "links", Reason: err.Error()})
	}

	for _, p := range s.Projects.Check() {
		errs = append(errs, &IntegrityError{Collection: s.Projects.Name(), Key: p.Slug, Reason: p.Reason})
	}
	for _, p := range s.Projects.All() {
		if p.Title == "" {
			errs = append(errs, &IntegrityError{Collection: s.Projects.Name(), Key: p.Slug, Reason: "empty title"})
		}
		for _, id := range p.Stack {
			if _, ok := stack.Lookup(id); !ok {
				errs = append(errs, &IntegrityError{
					Collection: s.Projects.Name(),
					Key:        p.Slug,
					Reason:     fmt.Sprintf("unknown stack identifier %s", id),
				})
			}
		}
		if d := p.Dimensions; d != nil && (d.Height() <= 0 || d.Width() <= 0) {
			errs = append(errs, &IntegrityError{Collection: s.Projects.Name(), Key: p.Slug, Reason: "dimensions must be positive"})
		}
	}

	for _, p := range s.Talks.Check() {
		errs = append(errs, &IntegrityError{Collection: s.Talks.Name(), Key: p.Slug, Reason: p.Reason})
	}
	for _, t := range s.Talks.All() {
		if t.Title == "" {
			errs = append(errs, &IntegrityError{Collection: s.Talks.Name(), Key: t.Slug, Reason: "empty title"})
		}
		if _, err := t.ParsedDate(); err != nil {
			errs = append(errs, &IntegrityError{Collection: s.Talks.Name(), Key: t.Slug, Reason: err.Error()})
		}
	}

	return errors.Join(errs...)
}
