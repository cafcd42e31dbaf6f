package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rosymaple/dadjoke/internal/app"
	"github.com/rosymaple/dadjoke/internal/config"
	"github.com/rosymaple/dadjoke/internal/platform/imagestore"
	"github.com/rosymaple/dadjoke/internal/platform/logger"
	"github.com/spf13/cobra"
)

// envFile is loaded into the environment before configuration.
const envFile = ".env"

// cliFlags holds the values of the root command flags.
type cliFlags struct {
	keyword    string
	style      string
	withImage  bool
	verbose    bool
	configPath string
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	flags := &cliFlags{}

	rootCmd := &cobra.Command{
		Use:   "dadjoke",
		Short: "Personalize a dad joke with Gemini",
		Long: `Fetches a dad joke from icanhazdadjoke.com, optionally matching a search term,
and asks Gemini to rewrite it in the style of your choice.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			components, err := bootstrap(cmd.Context(), flags)
			if err != nil {
				return err
			}

			c := newConsole(in, out, components.Jokes, components.Service)
			return c.run(cmd.Context(), consoleInput{
				keyword:    flags.keyword,
				keywordSet: cmd.Flags().Changed("keyword"),
				style:      flags.style,
				styleSet:   cmd.Flags().Changed("style"),
				withImage:  flags.withImage,
			})
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Write info level logs to stderr")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config-dir", ".", "Directory searched for config.yaml")

	rootCmd.Flags().StringVarP(&flags.keyword, "keyword", "k", "", "Search term for the joke (blank for random)")
	rootCmd.Flags().StringVarP(&flags.style, "style", "s", "", "Style of the personalized joke (default \"funny\")")
	rootCmd.Flags().BoolVar(&flags.withImage, "image", false, "Generate and save an illustration of the joke")

	rootCmd.AddCommand(newCleanupCmd(out, flags))

	return rootCmd
}

func newCleanupCmd(out io.Writer, flags *cliFlags) *cobra.Command {
	var filename string

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Remove the saved joke image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadEnvFile(envFile); err != nil {
				return err
			}

			imgCfg, err := config.LoadImageConfig(flags.configPath)
			if err != nil {
				return fmt.Errorf("failed to load image configuration: %w", err)
			}

			l, err := consoleLogger(flags.verbose)
			if err != nil {
				return err
			}

			store, err := imagestore.New(*imgCfg, l)
			if err != nil {
				return fmt.Errorf("failed to create image store: %w", err)
			}

			target := filename
			if target == "" {
				target = store.DefaultFilename()
			}

			fmt.Fprintf(out, "Attempting to clean up file: %s...\n", target)
			if err := store.Cleanup(target); err != nil {
				return err
			}
			fmt.Fprintf(out, "Cleanup of %s finished.\n", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filename, "file", "f", "", "Image file name inside the output directory")

	return cmd
}

// bootstrap loads configuration, sets up stderr logging and wires the service.
func bootstrap(ctx context.Context, flags *cliFlags) (*app.Components, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg, err := config.LoadWithPaths(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration (is GEMINI_API_KEY set?): %w", err)
	}

	l, err := consoleLogger(flags.verbose)
	if err != nil {
		return nil, err
	}

	return app.New(ctx, cfg, l, app.Options{ForceImages: flags.withImage})
}

// consoleLogger writes JSON logs to stderr at warn, or info when verbose.
func consoleLogger(verbose bool) (*slog.Logger, error) {
	level := "warn"
	if verbose {
		level = "info"
	}
	l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: level}, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return l.With(slog.String("front_door", "console")), nil
}
