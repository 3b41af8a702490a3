package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Bitlatte/portfolio/internal/builder"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static site into the output directory",
	Long: `The build command validates the talk, project and contact data, loads
blog posts from '<contentDir>/blog', copies static assets and renders one
file per route into the configured output directory (default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSite()
		if err != nil {
			return err
		}
		res, err := builder.New(s, appConfig, logger).Build()
		if err != nil {
			return err
		}
		logger.Info("Site written", zap.String("dir", appConfig.OutputDir), zap.Int("files", len(res.Files)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
