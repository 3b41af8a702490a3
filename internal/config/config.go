package config

import (
	"fmt"
	"strings"

	"github.com/Bitlatte/portfolio/internal/model"
)

type Config struct {
	SiteTitle   string       `mapstructure:"siteTitle"`
	Description string       `mapstructure:"description"`
	OutputDir   string       `mapstructure:"outputDir"`
	BaseURL     string       `mapstructure:"baseURL"`
	ContentDir  string       `mapstructure:"contentDir"`
	StaticDir   string       `mapstructure:"staticDir"`
	Addr        string       `mapstructure:"addr"`
	Debug       bool         `mapstructure:"debug"`
	Author      model.Author `mapstructure:"author"`
}

// Defaults returns the values used when neither the config file nor the
// environment sets a key.
func Defaults() Config {
	return Config{
		SiteTitle:   "Adnane Miliari",
		Description: "Software engineer, backend developer. Talks, projects and notes.",
		OutputDir:   "public",
		ContentDir:  "content",
		StaticDir:   "static",
		Addr:        ":1313",
		Author: model.Author{
			Name:       "Adnane Miliari",
			Shortname:  "Adnane",
			Occupation: "Software Engineer",
			Handle:     "@miliariadnane",
			Tagline:    "Software Engineer 🔵 Backend Developer",
			Motto:      "Moving slowly but surely ! 🐢",
		},
	}
}

// Validate rejects configurations the build cannot work with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.OutputDir) == "" {
		return fmt.Errorf("outputDir must not be empty")
	}
	if c.OutputDir == "." || c.OutputDir == "/" {
		return fmt.Errorf("outputDir %q would be wiped by a build", c.OutputDir)
	}
	if c.BaseURL != "" && !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("baseURL %q must start with http:// or https://", c.BaseURL)
	}
	if strings.HasSuffix(c.BaseURL, "/") {
		return fmt.Errorf("baseURL %q must not end with a slash", c.BaseURL)
	}
	return nil
}
