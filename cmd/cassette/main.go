// Package main provides the cassette command: a retro terminal shell over a
// static tree of folders and embedded tools.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Cyclone1070/cassette/internal/catalog"
	"github.com/Cyclone1070/cassette/internal/config"
	"github.com/Cyclone1070/cassette/internal/logging"
	"github.com/Cyclone1070/cassette/internal/provider/gemini"
	provider "github.com/Cyclone1070/cassette/internal/provider/models"
	"github.com/Cyclone1070/cassette/internal/tool/chat"
	"github.com/Cyclone1070/cassette/internal/ui"
	"github.com/Cyclone1070/cassette/internal/ui/services"
	"github.com/Cyclone1070/cassette/internal/ui/views"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// Dependencies holds the components required to run the application.
type Dependencies struct {
	LoadConfig      func() (*config.Config, error)
	ProviderFactory func(context.Context, *config.Config) (provider.Provider, error)
	RunUI           func(context.Context, ui.Dependencies) error
}

type options struct {
	catalogPath string
	logFile     string
	verbose     bool
}

func createRealProviderFactory() func(context.Context, *config.Config) (provider.Provider, error) {
	return func(ctx context.Context, cfg *config.Config) (provider.Provider, error) {
		apiKey := os.Getenv(cfg.Chat.APIKeyEnv)
		if apiKey == "" {
			return nil, fmt.Errorf("%s environment variable is not set: %w", cfg.Chat.APIKeyEnv, provider.ErrMissingAPIKey)
		}

		client, err := gemini.NewClientFromAPIKey(ctx, apiKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return gemini.New(client, cfg.Chat.Model), nil
	}
}

func runRealUI(ctx context.Context, deps ui.Dependencies) error {
	return ui.NewUI(ctx, deps).Start()
}

func defaultDependencies() Dependencies {
	return Dependencies{
		LoadConfig:      config.Load,
		ProviderFactory: createRealProviderFactory(),
		RunUI:           runRealUI,
	}
}

func newRootCmd(deps Dependencies) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "cassette",
		Short:         "CASSETTE OS - a retro terminal shell",
		Long:          "cassette browses a static tree of folders and launches the embedded tools behind its files.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.Context(), deps, *opts, cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "YAML tree definition (default: builtin tree)")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Log file (default: ~/.config/cassette/cassette.log)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	treeCmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the item tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(deps, *opts, cmd.ErrOrStderr())
			tree, err := loadTree(cfg.Catalog.Path)
			if err != nil {
				return err
			}
			printTree(cmd.OutOrStdout(), tree)
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cassette %s (CASSETTEOS %s)\n", version, views.Version)
		},
	}

	rootCmd.AddCommand(treeCmd, versionCmd)
	return rootCmd
}

// loadConfig loads the dotfile, falling back to defaults, and applies flag overrides.
func loadConfig(deps Dependencies, opts options, stderr io.Writer) *config.Config {
	cfg, err := deps.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintf(stderr, "Using default configuration.\n")
		cfg = config.DefaultConfig()
	}

	if opts.catalogPath != "" {
		cfg.Catalog.Path = opts.catalogPath
	}
	if opts.logFile != "" {
		cfg.Logging.Path = opts.logFile
	}
	return cfg
}

func loadTree(path string) (*catalog.Tree, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	tree, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return tree, nil
}

func printTree(w io.Writer, tree *catalog.Tree) {
	tree.Walk(func(item catalog.Item, depth int) bool {
		indent := strings.Repeat("  ", depth)
		switch it := item.(type) {
		case *catalog.Folder:
			fmt.Fprintf(w, "%s%s/ [%s]\n", indent, it.Name(), it.ID())
		case *catalog.File:
			fmt.Fprintf(w, "%s%s [%s] (%s)\n", indent, it.Name(), it.ID(), it.Tool())
		}
		return true
	})
}

func runShell(ctx context.Context, deps Dependencies, opts options, stderr io.Writer) error {
	cfg := loadConfig(deps, opts, stderr)

	logger, err := logging.New(logging.Options{
		Path:    cfg.Logging.Path,
		Level:   cfg.Logging.Level,
		Verbose: opts.verbose,
	})
	if err != nil {
		fmt.Fprintf(stderr, "Warning: logging disabled: %v\n", err)
		logger = zap.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	tree, err := loadTree(cfg.Catalog.Path)
	if err != nil {
		logger.Error("catalog load failed", zap.String("path", cfg.Catalog.Path), zap.Error(err))
		return err
	}
	logger.Info("shell starting", zap.Int("items", tree.Len()), zap.String("catalog", cfg.Catalog.Path))

	var responder chat.Responder
	p, err := deps.ProviderFactory(ctx, cfg)
	if err != nil {
		// The shell still starts; the console reports the failure on each prompt.
		logger.Warn("chat provider unavailable", zap.Error(err))
		responder = chat.NewUnavailableResponder(err, logger)
	} else {
		timeout := time.Duration(cfg.Chat.RequestTimeoutSeconds) * time.Second
		responder = chat.NewProviderResponder(p, cfg.Chat.SystemInstruction, timeout, logger).
			WithTemperature(cfg.Chat.Temperature)
	}

	return deps.RunUI(ctx, ui.Dependencies{
		Tree:      tree,
		Config:    cfg,
		Responder: responder,
		Renderer:  services.NewGlamourRenderer("dark"),
		Logger:    logger,
	})
}

func main() {
	rootCmd := newRootCmd(defaultDependencies())
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
