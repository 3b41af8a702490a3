package feed

import (
	"testing"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitlatte/portfolio/internal/model"
	"github.com/Bitlatte/portfolio/internal/site"
)

func TestBuild(t *testing.T) {
	s, err := site.Default()
	require.NoError(t, err)

	posts := []model.Post{
		{Title: "Fresh", Slug: "fresh", Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Summary: "new & shiny"},
		{Title: "Middle", Slug: "middle", Date: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)},
		{Title: "Undated", Slug: "undated"},
	}
	raw, err := Build(s, posts, Options{Title: "Adnane", Description: "notes", BaseURL: "https://miliari.me"})
	require.NoError(t, err)

	parsed, err := gofeed.NewParser().ParseString(string(raw))
	require.NoError(t, err)
	assert.Equal(t, "rss", parsed.FeedType)
	assert.Equal(t, "Adnane", parsed.Title)
	assert.Equal(t, "https://miliari.me/", parsed.Link)

	require.Len(t, parsed.Items, 2+s.Talks.Len())
	assert.Equal(t, "Fresh", parsed.Items[0].Title)
	assert.Equal(t, "new & shiny", parsed.Items[0].Description)
	assert.Equal(t, "https://miliari.me/blog/fresh/", parsed.Items[0].Link)
	assert.Equal(t, "https://miliari.me/talks/hexagonal-architecture-demystified-everything-you-need-to-know/", parsed.Items[1].Link)

	for i := 1; i < len(parsed.Items); i++ {
		require.NotNil(t, parsed.Items[i].PublishedParsed)
		assert.False(t, parsed.Items[i].PublishedParsed.After(*parsed.Items[i-1].PublishedParsed))
	}
	for _, it := range parsed.Items {
		assert.NotEqual(t, "Undated", it.Title)
	}
}
