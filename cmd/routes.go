package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/Bitlatte/portfolio/internal/blog"
	"github.com/Bitlatte/portfolio/internal/model"
	"github.com/Bitlatte/portfolio/internal/site"
)

var routesFormat string

// routesManifest is the YAML form of the route table.
type routesManifest struct {
	Origin       string       `yaml:"origin,omitempty"`
	PostsPerPage int          `yaml:"posts_per_page"`
	Routes       []site.Route `yaml:"routes"`
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Lists every route the build generates",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSite()
		if err != nil {
			return err
		}
		posts, err := blog.Load(appConfig.ContentDir)
		if err != nil {
			return err
		}
		return writeRoutes(cmd.OutOrStdout(), s, posts, routesFormat)
	},
}

func writeRoutes(w io.Writer, s *site.Site, posts []model.Post, format string) error {
	routes := s.Routes(posts)
	if err := s.CheckRoutes(routes); err != nil {
		return err
	}
	switch format {
	case "text", "":
		for _, r := range routes {
			if _, err := fmt.Fprintf(w, "%-9s %s\n", r.Kind, r.Path); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		out, err := yaml.Marshal(routesManifest{
			Origin:       appConfig.BaseURL,
			PostsPerPage: site.PostsPerPage,
			Routes:       routes,
		})
		if err != nil {
			return fmt.Errorf("failed to encode routes: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown format %q, want text or yaml", format)
	}
}

func init() {
	routesCmd.Flags().StringVarP(&routesFormat, "format", "f", "text", "output format: text or yaml")
	rootCmd.AddCommand(routesCmd)
}
