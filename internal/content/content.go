// Package content defines the portfolio catalogs (projects and talks) and
// the presentation helpers that turn a record into what a page shows.
package content

import (
	"slices"
	"time"

	"github.com/Bitlatte/portfolio/internal/stack"
)

// Deployment lists where a project can be used. Every target is optional.
type Deployment struct {
	Web     string
	Android string
	IOS     string
}

// IsZero reports whether no target is set.
func (d Deployment) IsZero() bool {
	return d.Web == "" && d.Android == "" && d.IOS == ""
}

// Dimensions is a [height, width] pair in pixels.
type Dimensions [2]int

// DefaultDimensions applies when a project declares none.
var DefaultDimensions = Dimensions{450, 220}

func (d Dimensions) Height() int { return d[0] }
func (d Dimensions) Width() int  { return d[1] }

// SubProject is a related repository shown under its parent project.
type SubProject struct {
	Title       string
	Description string
	Repository  string
	Deployment  Deployment
}

// Project is a portfolio entry.
type Project struct {
	Title            string
	Slug             string
	Website          string
	Banner           string
	Description      string
	ShortDescription string
	Repository       string
	Stack            []stack.Stack
	Dimensions       *Dimensions
	Screenshots      []string
	Deployment       Deployment
	SubProjects      []SubProject
}

// Size returns the declared dimensions or DefaultDimensions.
func (p Project) Size() Dimensions {
	if p.Dimensions == nil {
		return DefaultDimensions
	}
	return *p.Dimensions
}

// Clone returns a copy of p that shares no slices or pointers with it.
func (p Project) Clone() Project {
	p.Stack = slices.Clone(p.Stack)
	p.Screenshots = slices.Clone(p.Screenshots)
	p.SubProjects = slices.Clone(p.SubProjects)
	if p.Dimensions != nil {
		d := *p.Dimensions
		p.Dimensions = &d
	}
	return p
}

// TalkTag is a free-form label on a talk. It is not a stack.Stack.
type TalkTag string

// Talk is a conference or meetup presentation.
type Talk struct {
	Title       string
	Slug        string
	Tags        []TalkTag
	Date        string // YYYY-MM-DD
	Description string
	WatchTalk   string
	DemosList   []string
	Slides      string
	Banner      string
}

// Clone returns a copy of t that shares no slices with it.
func (t Talk) Clone() Talk {
	t.Tags = slices.Clone(t.Tags)
	t.DemosList = slices.Clone(t.DemosList)
	return t
}

// HasRecording reports whether the talk links to a recording.
func (t Talk) HasRecording() bool {
	return t.WatchTalk != ""
}

// ParsedDate parses Date.
func (t Talk) ParsedDate() (time.Time, error) {
	return ParseDate(t.Date)
}

// Demos returns the displayable demo links.
func (t Talk) Demos() []DemoLink {
	return DemoLinks(t.DemosList)
}

func dims(h, w int) *Dimensions {
	return &Dimensions{h, w}
}
