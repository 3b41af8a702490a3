package model

import (
	"html/template"
	"time"
)

// Post is a blog post loaded from a Markdown file with front matter.
type Post struct {
	Title      string
	Slug       string
	Date       time.Time
	Summary    string
	Tags       []string
	SourcePath string
	Permalink  string
	Content    template.HTML
}

// Author is the site owner shown in the home page banner.
type Author struct {
	Name       string `mapstructure:"name"`
	Shortname  string `mapstructure:"shortname"`
	Occupation string `mapstructure:"occupation"`
	Handle     string `mapstructure:"handle"`
	Tagline    string `mapstructure:"tagline"`
	Motto      string `mapstructure:"motto"`
}
