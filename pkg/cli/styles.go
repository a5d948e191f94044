package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/secmon-lab/bridgerisk/pkg/domain/model"
	"github.com/secmon-lab/bridgerisk/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdStyles() *cli.Command {
	return &cli.Command{
		Name:    "styles",
		Aliases: []string{"s"},
		Usage:   "List the base bridge styles in the profile catalog",
		Action: func(ctx context.Context, c *cli.Command) error {
			w := c.Root().Writer
			heading := color.New(color.Bold)

			for _, p := range model.AllProfiles() {
				safe.Fprintf(ctx, w, "%s (%s)\n", heading.Sprint(p.Name), p.Key)
				safe.Fprintf(ctx, w, "  %s\n", p.Description)
				safe.Fprintf(ctx, w, "  Base risks: technical %.2f, economic %.2f, operational %.2f\n",
					p.BaseTechnicalRisk, p.BaseEconomicRisk, p.BaseOperationalRisk)
				safe.Fprintf(ctx, w, "\n")
			}
			return nil
		},
	}
}
