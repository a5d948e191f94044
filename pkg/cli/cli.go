package cli

import (
	"context"

	"github.com/secmon-lab/bridgerisk/pkg/cli/config"
	"github.com/secmon-lab/bridgerisk/pkg/usecase"
	"github.com/secmon-lab/bridgerisk/pkg/utils/errutil"
	"github.com/secmon-lab/bridgerisk/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string, version string) error {
	var loggerCfg config.Logger
	var assessCfg assessConfig
	var closer func()

	var flags []cli.Flag
	flags = append(flags, assessCfg.Flags()...)
	flags = append(flags, loggerCfg.Flags()...)

	app := &cli.Command{
		Name:    "bridgerisk",
		Usage:   "Offline conceptual risk profiler for Web3 bridge designs",
		Version: version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Debug("Starting bridgerisk", "logger", loggerCfg)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			input, err := assessCfg.Input()
			if err != nil {
				return err
			}

			result := usecase.ComputeRisk(input)
			logging.Default().Debug("Computed risk scores",
				"style", result.Profile,
				"overall", result.OverallRisk,
				"label", result.RiskLabel,
			)

			if assessCfg.jsonOutput {
				return renderJSON(ctx, c.Root().Writer, result)
			}
			renderHuman(ctx, c.Root().Writer, result)
			return nil
		},
		Commands: []*cli.Command{
			cmdStyles(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		return errutil.Handle(ctx, err, "failed to run bridgerisk")
	}

	return nil
}
