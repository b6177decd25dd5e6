package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/3-lines-studio/bottletags/internal/adapters/cli"
	"github.com/3-lines-studio/bottletags/internal/config"
	"github.com/3-lines-studio/bottletags/internal/core"
)

var errRendersFailed = errors.New("one or more renders failed")

type app struct {
	configFile string
	cfg        config.Config
	logger     *zap.Logger
	output     *cli.Output
}

// RootCmd is the root Cobra command that gets called from the main func.
// Running it without a sub-command renders the whole name list.
func RootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "bottletags",
		Short: "bottletags renders a bottle clip for every name in a list.",
		Long: `bottletags reads a list of names and calls OpenSCAD twice per name,
once for the clip body and once for the engraved text.

Names without descenders (g, j, p, q, y) get extra layout parameters that
keep the logo and text vertically centred.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
		RunE:              a.runRender,
	}

	defaults := config.Default()
	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default ./"+config.DefaultConfigName+".yaml)")
	flags.String("names", defaults.Names, "file with one name per line")
	flags.String("out", defaults.Out, "output directory for the rendered STL files")
	flags.String("model", defaults.Model, "OpenSCAD model to render")
	flags.String("binary", core.DefaultBinary, "OpenSCAD executable")
	flags.Int("workers", defaults.Workers, "number of names rendered at once")
	flags.Duration("timeout", defaults.Timeout, "timeout per renderer call, 0 waits forever")
	flags.BoolP("verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		renderCmd(a),
		planCmd(a),
		watchCmd(a),
		initCmd(a),
		versionCmd(),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return err
	}
	a.logger = logger

	if out := cmd.OutOrStdout(); out != os.Stdout {
		a.output = cli.NewWriterOutput(out)
	} else {
		a.output = cli.NewOutput()
	}
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
