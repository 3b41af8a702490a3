// Package builder writes the whole site to an output directory.
package builder

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Bitlatte/portfolio/internal/blog"
	"github.com/Bitlatte/portfolio/internal/config"
	"github.com/Bitlatte/portfolio/internal/render"
	"github.com/Bitlatte/portfolio/internal/site"
)

// Result summarizes a build.
type Result struct {
	Routes []site.Route
	Posts  int
	Files  []string
}

// Builder renders every route of a site into cfg.OutputDir.
type Builder struct {
	site   *site.Site
	cfg    config.Config
	logger *zap.Logger
}

func New(s *site.Site, cfg config.Config, logger *zap.Logger) *Builder {
	return &Builder{site: s, cfg: cfg, logger: logger}
}

// Build cleans the output directory, copies static assets and renders
// every route. Any route that fails to render fails the build.
func (b *Builder) Build() (*Result, error) {
	cfg := b.cfg
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b.logger.Info("Starting build",
		zap.String("outputDir", cfg.OutputDir),
		zap.String("baseURL", cfg.BaseURL),
		zap.String("siteTitle", cfg.SiteTitle))

	posts, err := blog.Load(cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}
	b.logger.Debug("Loaded posts", zap.Int("count", len(posts)))

	routes := b.site.Routes(posts)
	if err := b.site.CheckRoutes(routes); err != nil {
		return nil, err
	}

	renderer, err := render.New(b.site, cfg)
	if err != nil {
		return nil, err
	}

	b.logger.Debug("Cleaning output directory", zap.String("dir", cfg.OutputDir))
	if err := os.RemoveAll(cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("failed to remove output directory '%s': %w", cfg.OutputDir, err)
	}
	if err := os.MkdirAll(cfg.OutputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create output directory '%s': %w", cfg.OutputDir, err)
	}

	if _, err := os.Stat(cfg.StaticDir); err == nil {
		dst := filepath.Join(cfg.OutputDir, "static")
		if err := copyDirContents(cfg.StaticDir, dst); err != nil {
			return nil, fmt.Errorf("failed to copy static assets: %w", err)
		}
		b.logger.Debug("Copied static assets", zap.String("from", cfg.StaticDir), zap.String("to", dst))
	} else if errors.Is(err, fs.ErrNotExist) {
		b.logger.Info("Static assets directory not found, skipping copy", zap.String("dir", cfg.StaticDir))
	} else {
		return nil, fmt.Errorf("failed to stat static directory '%s': %w", cfg.StaticDir, err)
	}

	res := &Result{Routes: routes, Posts: len(posts)}
	for _, route := range routes {
		path := OutputPath(cfg.OutputDir, route.Path)
		if err := writeRoute(path, func(w io.Writer) error {
			return renderer.Render(w, route, posts)
		}); err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", route.Path, err)
		}
		b.logger.Debug("Generated page", zap.String("route", route.Path), zap.String("file", path))
		res.Files = append(res.Files, path)
	}

	notFound := filepath.Join(cfg.OutputDir, "404.html")
	if err := writeRoute(notFound, func(w io.Writer) error {
		return renderer.NotFound(w, "/404.html")
	}); err != nil {
		return nil, fmt.Errorf("failed to render 404 page: %w", err)
	}
	res.Files = append(res.Files, notFound)

	b.logger.Info("Build completed",
		zap.Int("routes", len(routes)),
		zap.Int("posts", len(posts)),
		zap.Int("files", len(res.Files)))
	return res, nil
}

// OutputPath maps a route path to the file it is written to. Paths ending
// in a slash become index.html files.
func OutputPath(outputDir, routePath string) string {
	rel := filepath.FromSlash(strings.TrimPrefix(routePath, "/"))
	if routePath == "" || strings.HasSuffix(routePath, "/") {
		rel = filepath.Join(rel, "index.html")
	}
	return filepath.Join(outputDir, rel)
}

func writeRoute(path string, fn func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for '%s': %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file '%s': %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// copyDirContents recursively copies contents from src to dst.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}
		if err := copyFile(path, dstPath); err != nil {
			return fmt.Errorf("failed to copy file from %s to %s: %w", path, dstPath, err)
		}
		return nil
	})
}

// copyFile copies a single file, keeping its permissions.
func copyFile(srcFile, dstFile string) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer srcF.Close()

	info, err := srcF.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source file %s: %w", srcFile, err)
	}

	dstF, err := os.OpenFile(dstFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	if _, err := io.Copy(dstF, srcF); err != nil {
		dstF.Close()
		return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
	}
	return dstF.Close()
}
