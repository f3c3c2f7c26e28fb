package cli

import (
	"os"
	"path/filepath"

	"github.com/soyeahso/roster/internal/config"
	"github.com/soyeahso/roster/internal/logging"
	"github.com/soyeahso/roster/internal/mcp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdio",
		Long:  "Reads newline-delimited JSON-RPC requests on stdin and writes responses to stdout. Logs go to a file and stderr, never stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := paths.EnsureDirs(); err != nil {
				return err
			}

			cfg, err := config.Load(paths.Config)
			if err != nil {
				return err
			}

			level := logLevel
			if level == "" {
				level = cfg.Logging.Level
			}
			logPath := cfg.Logging.File
			if logPath == "" {
				logPath = filepath.Join(paths.Logs, "mcp.log")
			}

			// Stdout carries the protocol, so the serve command replaces
			// the console logger with a file/stderr tee.
			fileLog, f, err := logging.NewFile(logPath, level)
			if err != nil {
				return err
			}
			defer f.Close()
			log = fileLog

			_, cat, _, exec, err := loadStack(log)
			if err != nil {
				return err
			}

			srv := mcp.NewServer(exec, cat, cfg.Server.Name, os.Stdin, os.Stdout, log)
			return srv.Run()
		},
	}
}
