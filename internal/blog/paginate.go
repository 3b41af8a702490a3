package blog

import (
	"errors"

	"github.com/Bitlatte/portfolio/internal/model"
)

// ErrPageOutOfRange is returned for a page number past the last page.
var ErrPageOutOfRange = errors.New("page out of range")

// Page is one listing page.
type Page struct {
	Posts      []model.Post
	Number     int
	TotalPages int
}

func (p Page) HasPrev() bool { return p.Number > 1 }
func (p Page) HasNext() bool { return p.Number < p.TotalPages }
func (p Page) Prev() int     { return p.Number - 1 }
func (p Page) Next() int     { return p.Number + 1 }

// Paginate returns page number (from 1) of posts, perPage at a time.
// Page 1 of an empty list exists and is empty.
func Paginate(posts []model.Post, number, perPage int) (Page, error) {
	if perPage <= 0 {
		perPage = 1
	}
	total := (len(posts) + perPage - 1) / perPage
	if total == 0 {
		total = 1
	}
	if number < 1 || number > total {
		return Page{}, ErrPageOutOfRange
	}
	start := (number - 1) * perPage
	end := min(start+perPage, len(posts))
	return Page{Posts: posts[start:end], Number: number, TotalPages: total}, nil
}
