package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Bitlatte/portfolio/internal/blog"
	"github.com/Bitlatte/portfolio/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site locally and reloads posts on change",
	Long: `The serve command renders pages on request. Talk and project pages are
resolved from their slug; unknown slugs get the 404 page. Blog posts are
reloaded whenever a file under '<contentDir>/blog' changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSite()
		if err != nil {
			return err
		}
		posts, err := blog.Load(appConfig.ContentDir)
		if err != nil {
			return err
		}
		srv, err := server.New(s, appConfig, posts, logger)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return srv.WatchPosts(ctx, appConfig.ContentDir, server.DefaultDebounce)
		})
		g.Go(func() error {
			logger.Info("Serving site", zap.String("addr", appConfig.Addr), zap.Int("posts", len(posts)))
			return srv.ListenAndServe(ctx, appConfig.Addr)
		})
		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "address to listen on (default :1313)")
	rootCmd.AddCommand(serveCmd)
}
