// Package contact holds the contact channels shown on the home page banner
// and on the contact page.
package contact

import (
	"fmt"
	"strings"

	"github.com/Bitlatte/portfolio/internal/palette"
)

// Channel is one of a fixed set of contact channels.
type Channel string

const (
	GitHub       Channel = "github"
	LinkedIn     Channel = "linkedin"
	Twitter      Channel = "twitter"
	YouTube      Channel = "youtube"
	Email        Channel = "email"
	BuyMeACoffee Channel = "buymeacoffee"
)

// Channels returns every channel in display order.
func Channels() []Channel {
	return []Channel{GitHub, LinkedIn, Twitter, YouTube, Email, BuyMeACoffee}
}

// Color is the brand color used for the channel's icon.
func (c Channel) Color() palette.Color {
	switch c {
	case GitHub:
		return palette.GitHub
	case LinkedIn:
		return palette.LinkedIn
	case Twitter:
		return palette.Twitter
	case YouTube:
		return palette.YouTube
	case Email:
		return palette.Email
	case BuyMeACoffee:
		return palette.BuyMeACoffee
	default:
		return ""
	}
}

// Registry maps every Channel to a destination URI. An empty URI means the
// channel is intentionally unset.
type Registry struct {
	Handle   string
	Site     string
	Calendly string
	Links    map[Channel]string
}

// Link returns the URI for ch, or "" when it is unset.
func (r Registry) Link(ch Channel) string {
	return r.Links[ch]
}

// Validate fails when a channel has no key in Links, naming every such
// channel.
func (r Registry) Validate() error {
	var missing []string
	for _, ch := range Channels() {
		if _, ok := r.Links[ch]; !ok {
			missing = append(missing, string(ch))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("no entry for channels %s", strings.Join(missing, ", "))
	}
	return nil
}

// Link is a channel that has a destination.
type Link struct {
	Channel Channel
	URI     string
	Color   palette.Color
}

// Enabled lists the channels with a non-empty URI, in display order.
func (r Registry) Enabled() []Link {
	var out []Link
	for _, ch := range Channels() {
		if uri := r.Link(ch); uri != "" {
			out = append(out, Link{Channel: ch, URI: uri, Color: ch.Color()})
		}
	}
	return out
}

// Default is the compiled-in contact information.
func Default() Registry {
	return Registry{
		Handle:   "@miliariadnane",
		Site:     "miliari.me",
		Calendly: "https://calendly.com/miliariadnane",
		Links: map[Channel]string{
			GitHub:       "https://github.com/miliariadnane",
			LinkedIn:     "https://linkedin.com/in/miliariadnane",
			Twitter:      "https://twitter.com/miliariadnane",
			YouTube:      "https://www.youtube.com/c/miliariadnane",
			Email:        "mailto:miliari.adnane@gmail.com",
			BuyMeACoffee: "https://www.buymeacoffee.com/miliariadnane",
		},
	}
}
