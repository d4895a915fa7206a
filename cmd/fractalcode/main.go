package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/fractalcode/internal/app"
	"github.com/quantmind-br/fractalcode/internal/config"
	"github.com/quantmind-br/fractalcode/internal/domain"
	"github.com/quantmind-br/fractalcode/internal/utils"
	"github.com/quantmind-br/fractalcode/pkg/version"
)

var (
	// Dependencies for testing
	newProgress = func(total int) domain.ProgressSink {
		return utils.NewProgressBar(total, utils.DescWriting)
	}
	logOutput io.Writer = os.Stderr
)

// rootOptions holds the flag values shared by the root command and its
// subcommands
type rootOptions struct {
	configFile string
	output     string
	limit      int
	verbose    bool
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps a run error to the process status. Config and project root
// problems are reported but end the process normally; output failures and
// command line misuse exit 1.
func exitCode(err error) int {
	var cfgErr *domain.ConfigError
	var rootErr *domain.RootNotFoundError
	switch {
	case err == nil:
		return 0
	case domain.IsFatal(err):
		return 1
	case errors.As(err, &cfgErr), errors.As(err, &rootErr), errors.Is(err, domain.ErrNoFilesMatched):
		return 0
	default:
		return 1
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "fractalcode",
		Short: "Write a plain-text snapshot of a source tree",
		Long: `Fractalcode walks a project directory, applies the configured ignore
patterns and extensions, and writes every remaining file into a single
timestamped text snapshot annotated with its last git commit.`,
		Version:       version.Short(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", config.DefaultConfigFile, "config file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output directory (overrides output_directory)")
	cmd.Flags().IntVarP(&opts.limit, "limit", "l", 0, "Max files to include (0=unlimited)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	log := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  logOutput,
		Verbose: opts.verbose,
	})
	log.WithRoot(cfg.ProjectRoot).Debug().
		Str("config", opts.configFile).
		Str("output", cfg.OutputDirectory).
		Msg("Configuration loaded")

	orchestrator, err := app.NewOrchestrator(app.OrchestratorOptions{
		Config:   cfg,
		Logger:   log,
		Reporter: utils.NewConsoleReporter(log),
		Progress: newProgress,
		Verbose:  opts.verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	// No matching files is a clean exit
	_, err = orchestrator.Run(opts.limit)
	return err
}

// loadConfig reads the config file and applies command line overrides
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	if f := cmd.Flags().Lookup("output"); f != nil {
		_ = viper.BindPFlag("output_directory", f)
	}

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("output") {
		cfg.OutputDirectory = opts.output
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long:  "Loads the configuration file, applies defaults and environment overrides, and prints the result as YAML.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.LoadWithViper(opts.configFile)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
