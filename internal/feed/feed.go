// Package feed renders the site's RSS 2.0 feed.
package feed

import (
	"encoding/xml"
	"fmt"
	"sort"
	"time"

	"github.com/Bitlatte/portfolio/internal/model"
	"github.com/Bitlatte/portfolio/internal/site"
)

// RSS is the root element.
type RSS struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel Channel  `xml:"channel"`
}

// Channel is the RSS channel.
type Channel struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Items       []Item `xml:"item"`
}

// Item is one entry.
type Item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate,omitempty"`
	Description string `xml:"description,omitempty"`
	Category    string `xml:"category,omitempty"`

	date time.Time
}

// Options describes the channel.
type Options struct {
	Title       string
	Description string
	BaseURL     string
}

// Build returns the feed for posts and talks, newest first. Undated posts
// are left out.
func Build(s *site.Site, posts []model.Post, opts Options) ([]byte, error) {
	var items []Item
	for _, p := range posts {
		if p.Date.IsZero() {
			continue
		}
		link := opts.BaseURL + site.PostPath(p.Slug)
		items = append(items, Item{
			Title:       p.Title,
			Link:        link,
			GUID:        link,
			PubDate:     p.Date.Format(time.RFC1123Z),
			Description: p.Summary,
			Category:    "blog",
			date:        p.Date,
		})
	}
	for _, t := range s.Talks.All() {
		d, err := t.ParsedDate()
		if err != nil {
			return nil, fmt.Errorf("talk %q: %w", t.Slug, err)
		}
		link := opts.BaseURL + site.TalkPath(t.Slug)
		items = append(items, Item{
			Title:       t.Title,
			Link:        link,
			GUID:        link,
			PubDate:     d.Format(time.RFC1123Z),
			Description: t.Description,
			Category:    "talk",
			date:        d,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].date.After(items[j].date)
	})

	doc := RSS{
		Version: "2.0",
		Channel: Channel{
			Title:       opts.Title,
			Link:        opts.BaseURL + "/",
			Description: opts.Description,
			Items:       items,
		},
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal feed: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}
