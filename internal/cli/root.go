package cli

import (
	"fmt"

	"github.com/soyeahso/roster/internal/catalog"
	"github.com/soyeahso/roster/internal/config"
	"github.com/soyeahso/roster/internal/logging"
	"github.com/soyeahso/roster/internal/safefs"
	"github.com/soyeahso/roster/internal/tool"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string

	// loaded at init time
	paths config.Paths
	log   *logging.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster is an MCP server for an agent and workflow catalog",
		Long:  "Roster serves a catalog of agent personas and workflows to LLM clients over the Model Context Protocol, routed through a single command string.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			paths, err = config.ResolvePaths()
			if err != nil {
				return err
			}
			if cfgFile != "" {
				paths.Config = cfgFile
			}
			level := logLevel
			if level == "" {
				level = "info"
			}
			log = logging.New(nil, level)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.roster/config.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, fatal, silent)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newGatewayCmd())
	cmd.AddCommand(newInvokeCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// loadStack loads config and assembles the catalog, file root, and tool
// executor shared by every serving command.
func loadStack(lg *logging.Logger) (config.Config, *catalog.Catalog, *safefs.Root, *tool.Executor, error) {
	cfg, err := config.Load(paths.Config)
	if err != nil {
		return config.Config{}, nil, nil, nil, err
	}

	if issues := config.Validate(&cfg); len(issues) > 0 {
		for _, issue := range issues {
			lg.Error().Str("path", issue.Path).Msg(issue.Message)
		}
		return config.Config{}, nil, nil, nil,
			fmt.Errorf("config validation failed with %d issue(s)", len(issues))
	}

	root := paths.CatalogRoot(cfg)
	fs, err := safefs.NewRoot(root, lg)
	if err != nil {
		return config.Config{}, nil, nil, nil, fmt.Errorf("opening catalog root: %w", err)
	}

	cat := catalog.Load(fs.Dir(), lg)
	lg.Info().
		Str("root", fs.Dir()).
		Int("agents", len(cat.Agents())).
		Int("workflows", len(cat.Workflows())).
		Int("tasks", len(cat.Tasks())).
		Msg("catalog loaded")

	exec := tool.New(cat, fs, cfg.Catalog.DefaultAgent, lg)
	return cfg, cat, fs, exec, nil
}

// ExitError requests a specific process exit code for a failure whose
// message was already written to stderr. main maps it to os.Exit; RunE
// functions return it instead of exiting so deferred cleanup still runs.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
