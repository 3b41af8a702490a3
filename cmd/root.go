package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Bitlatte/portfolio/internal/config"
	"github.com/Bitlatte/portfolio/internal/site"
)

var (
	cfgFile   string
	debug     bool
	appConfig config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio and blog",
	Long: `portfolio renders a personal site: a home page banner with the latest
blog posts, talks and projects with their detail pages, a paginated blog
and an RSS feed. It can write the site to disk or serve it directly.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(cmd); err != nil {
			return err
		}
		return initializeLogger()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()

	defaults := config.Defaults()
	v.SetDefault("siteTitle", defaults.SiteTitle)
	v.SetDefault("description", defaults.Description)
	v.SetDefault("outputDir", defaults.OutputDir)
	v.SetDefault("baseURL", defaults.BaseURL)
	v.SetDefault("contentDir", defaults.ContentDir)
	v.SetDefault("staticDir", defaults.StaticDir)
	v.SetDefault("addr", defaults.Addr)
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("author.name", defaults.Author.Name)
	v.SetDefault("author.shortname", defaults.Author.Shortname)
	v.SetDefault("author.occupation", defaults.Author.Occupation)
	v.SetDefault("author.handle", defaults.Author.Handle)
	v.SetDefault("author.tagline", defaults.Author.Tagline)
	v.SetDefault("author.motto", defaults.Author.Motto)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if f := cmd.Flags().Lookup("debug"); f != nil && f.Changed {
		v.Set("debug", debug)
	}
	if f := cmd.Flags().Lookup("addr"); f != nil && f.Changed {
		v.Set("addr", f.Value.String())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if cfgFile != "" {
			return fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	return nil
}

func initializeLogger() error {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if appConfig.Debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	logger = l
	return nil
}

// loadSite builds and validates the compiled-in catalogs. Integrity
// errors stop every command.
func loadSite() (*site.Site, error) {
	s, err := site.Default()
	if err != nil {
		return nil, fmt.Errorf("site data is invalid:\n%w", err)
	}
	logger.Debug("Site data validated",
		zap.Int("projects", s.Projects.Len()),
		zap.Int("talks", s.Talks.Len()))
	return s, nil
}
