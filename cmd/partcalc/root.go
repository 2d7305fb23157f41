package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/go-parts/internal/config"
	"github.com/grindlemire/go-parts/internal/debug"
)

// app is the state shared by every command once flags and configuration
// have been read.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "partcalc",
		Short:         "Lay out part collections from scene files",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default ./partcalc.yaml)")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newSolveCmd(a),
		newFramesCmd(a),
		newMinSizeCmd(a),
		newRenderCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	v, err := config.New(a.cfgFile)
	if err != nil {
		return err
	}
	if err := v.BindPFlag("logger.level", cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
		return fmt.Errorf("binding log-level flag: %w", err)
	}
	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := debug.Init(cfg.Logger, zapcore.AddSync(cmd.ErrOrStderr())); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	a.log = debug.Logger()
	a.log.Debug("configuration loaded",
		zap.String("config", a.cfgFile),
		zap.Float64("scale", cfg.Engine.Scale),
		zap.Bool("calc_cache", cfg.Engine.CalcCache))
	return nil
}
