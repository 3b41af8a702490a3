package model

// PageData is the envelope every page template receives. Body holds the
// page-specific view.
type PageData struct {
	SiteTitle   string
	PageTitle   string
	Description string
	ImageURL    string
	BaseURL     string
	Path        string
	Body        any
}

// Title is what goes in the <title> element.
func (p PageData) Title() string {
	if p.PageTitle == "" || p.PageTitle == p.SiteTitle {
		return p.SiteTitle
	}
	return p.PageTitle + " - " + p.SiteTitle
}

// Canonical is the absolute URL of the page.
func (p PageData) Canonical() string {
	return p.BaseURL + p.Path
}
