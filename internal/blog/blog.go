// Package blog loads Markdown posts with front matter from a directory and
// paginates them for listing pages.
package blog

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Bitlatte/portfolio/internal/content"
	"github.com/Bitlatte/portfolio/internal/model"
)

// Dir is the subdirectory of the content directory that holds posts.
const Dir = "blog"

var dateFormats = []string{"2006-01-02T15:04:05Z07:00", "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

type frontMatter struct {
	Title   string   `yaml:"title"`
	Slug    string   `yaml:"slug"`
	Date    string   `yaml:"date"`
	Summary string   `yaml:"summary"`
	Tags    []string `yaml:"tags"`
	Draft   bool     `yaml:"draft"`
}

// Loader turns Markdown files into posts.
type Loader struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	title  cases.Caser
}

func NewLoader() *Loader {
	return &Loader{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithHardWraps(),
				gmhtml.WithUnsafe(),
			),
		),
		policy: bluemonday.UGCPolicy(),
		title:  cases.Title(language.English),
	}
}

// Load reads every *.md file under dir/blog. A missing directory yields no
// posts. Drafts are skipped. Posts are sorted newest first with undated
// posts last.
func Load(dir string) ([]model.Post, error) {
	return NewLoader().Load(dir)
}

func (l *Loader) Load(dir string) ([]model.Post, error) {
	root := filepath.Join(dir, Dir)
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var posts []model.Post
	seen := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error accessing path '%s': %w", path, walkErr)
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read file '%s': %w", path, err)
		}
		post, draft, err := l.Parse(path, raw)
		if err != nil {
			return err
		}
		if draft {
			return nil
		}
		if prev, ok := seen[post.Slug]; ok {
			return fmt.Errorf("post slug %q used by both '%s' and '%s'", post.Slug, prev, path)
		}
		seen[post.Slug] = path
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, err
	}

	Sort(posts)
	return posts, nil
}

// Parse builds a post from one file. draft reports a post that should not
// be published.
func (l *Loader) Parse(path string, raw []byte) (post model.Post, draft bool, err error) {
	var fm frontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm)
	if err != nil {
		return model.Post{}, false, fmt.Errorf("failed to parse front matter in '%s': %w", path, err)
	}

	var buf bytes.Buffer
	if err := l.md.Convert(body, &buf); err != nil {
		return model.Post{}, false, fmt.Errorf("failed to convert markdown for '%s': %w", path, err)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	title := fm.Title
	if title == "" {
		title = l.title.String(strings.NewReplacer("-", " ", "_", " ").Replace(base))
	}

	slug := fm.Slug
	if slug == "" {
		slug = strings.ToLower(strings.NewReplacer(" ", "-", "_", "-").Replace(base))
	}
	if !content.ValidSlug(slug) {
		return model.Post{}, false, fmt.Errorf("post '%s' has slug %q which is not URL-safe", path, slug)
	}

	var date time.Time
	if fm.Date != "" {
		date, err = parseDate(fm.Date)
		if err != nil {
			return model.Post{}, false, fmt.Errorf("post '%s': %w", path, err)
		}
	}

	return model.Post{
		Title:      title,
		Slug:       slug,
		Date:       date,
		Summary:    fm.Summary,
		Tags:       fm.Tags,
		SourcePath: path,
		Permalink:  "/" + Dir + "/" + slug + "/",
		Content:    template.HTML(l.policy.SanitizeBytes(buf.Bytes())),
	}, fm.Draft, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse date %q, use YYYY-MM-DD or RFC3339", s)
}

// Sort orders posts newest first. Undated posts go last, by title.
func Sort(posts []model.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		switch {
		case a.Date.IsZero() && b.Date.IsZero():
			return a.Title < b.Title
		case a.Date.IsZero():
			return false
		case b.Date.IsZero():
			return true
		}
		return a.Date.After(b.Date)
	})
}

// Latest returns at most n posts from the front of posts.
func Latest(posts []model.Post, n int) []model.Post {
	if n < len(posts) {
		return posts[:n]
	}
	return posts
}
