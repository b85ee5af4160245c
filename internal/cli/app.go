// Package cli implements the lazyseq command line: small drivers that
// run the generators in a loop and print what they produce.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/webriots/lazyseq"
)

// Name is the command name.
const Name = "lazyseq"

type app struct {
	cfgPath string
	cfg     *Config
	log     *slog.Logger
}

// NewRootCmd builds the command tree. Log output goes to errOut.
func NewRootCmd(errOut io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           Name,
		Short:         "Drive lazy sequences and recursive generators",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, errOut)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to a lazyseq.yaml config file")
	pf.String("log-level", LogLevelStrDisabled, "log level: NONE, DEBUG, INFO, WARN or ERROR")
	pf.String("log-format", LogFormatPretty, "log format: pretty, text or json")

	root.AddCommand(
		a.natseqCmd(),
		a.rangeCmd(),
		a.treeCmd(),
		a.chainCmd(),
		a.benchCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command, errOut io.Writer) error {
	cfg, err := LoadConfig(a.cfgPath, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := NewLogger(errOut, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, logger
	lazyseq.SetLogger(logger)
	a.log.Debug("config loaded", "command", cmd.Name(), "file", a.cfgPath)
	return nil
}

// Run executes the command line and returns the process exit code.
func Run(args []string) int {
	cmd := NewRootCmd(os.Stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
