package cli

import (
	"context"
	"encoding/json"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bridgerisk/pkg/domain/model"
	"github.com/secmon-lab/bridgerisk/pkg/domain/types"
	"github.com/secmon-lab/bridgerisk/pkg/utils/safe"
)

// renderJSON writes the result as indented JSON with the fixed camelCase
// key set of the result record.
func renderJSON(ctx context.Context, w io.Writer, result model.RiskResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return goerr.Wrap(err, "failed to encode result as JSON")
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func labelColor(label types.RiskLabel) *color.Color {
	switch label {
	case types.RiskLabelVeryLow, types.RiskLabelLow:
		return color.New(color.FgGreen)
	case types.RiskLabelModerate:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// renderHuman writes the fixed-order labeled report: style, description,
// each design feature as yes/no, the three sub-scores, the overall score
// with its label, and the offline disclaimer.
func renderHuman(ctx context.Context, w io.Writer, result model.RiskResult) {
	title := color.New(color.FgCyan, color.Bold)
	section := color.New(color.Bold)

	safe.Fprintf(ctx, w, "%s\n", title.Sprint("bridgerisk"))
	safe.Fprintf(ctx, w, "Base style   : %s (%s)\n", result.ProfileName, result.Profile)
	safe.Fprintf(ctx, w, "Description  : %s\n", result.Description)
	safe.Fprintf(ctx, w, "\n")

	safe.Fprintf(ctx, w, "%s\n", section.Sprint("Design features:"))
	safe.Fprintf(ctx, w, "  Uses zk proofs       : %s\n", yesNo(result.UsesZk))
	safe.Fprintf(ctx, w, "  Uses FHE             : %s\n", yesNo(result.UsesFhe))
	safe.Fprintf(ctx, w, "  Light client based   : %s\n", yesNo(result.HasLightClient))
	safe.Fprintf(ctx, w, "  MPC / multisig       : %s\n", yesNo(result.HasMpcSigners))
	safe.Fprintf(ctx, w, "  Timelock present     : %s\n", yesNo(result.HasTimelock))
	safe.Fprintf(ctx, w, "  Audited              : %s\n", yesNo(result.HasAudits))
	safe.Fprintf(ctx, w, "  Formal specs         : %s\n", yesNo(result.HasFormalSpecs))
	safe.Fprintf(ctx, w, "  Multi-chain graph    : %s\n", yesNo(result.MultiChain))
	safe.Fprintf(ctx, w, "  TVL rank             : %d\n", result.TVLRank)
	safe.Fprintf(ctx, w, "\n")

	safe.Fprintf(ctx, w, "%s\n", section.Sprint("Risk scores (0 = minimal, 1 = extreme):"))
	safe.Fprintf(ctx, w, "  Technical    : %.3f\n", result.TechnicalRisk)
	safe.Fprintf(ctx, w, "  Economic     : %.3f\n", result.EconomicRisk)
	safe.Fprintf(ctx, w, "  Operational  : %.3f\n", result.OperationalRisk)
	safe.Fprintf(ctx, w, "\n")

	safe.Fprintf(ctx, w, "Overall risk   : %.3f (%s)\n",
		result.OverallRisk, labelColor(result.RiskLabel).Sprint(result.RiskLabel))
	safe.Fprintf(ctx, w, "\n")

	safe.Fprintf(ctx, w, "Note: This is a conceptual, offline profiler. It does not connect to Web3 or\n")
	safe.Fprintf(ctx, w, "measure real-world exploits. Use it as a structured checklist and discussion\n")
	safe.Fprintf(ctx, w, "tool for bridge design in Aztec-style, Zama-style, or soundness-first systems.\n")
}
