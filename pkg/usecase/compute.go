package usecase

import (
	"math"

	"github.com/secmon-lab/bridgerisk/pkg/domain/model"
	"github.com/secmon-lab/bridgerisk/pkg/domain/types"
)

// Weights of the three axes in the overall score.
const (
	weightTechnical   = 0.45
	weightEconomic    = 0.35
	weightOperational = 0.20
)

// tvlRankDivisor saturates the TVL factor: ranks of 50 and beyond
// contribute the full economic nudge.
const tvlRankDivisor = 50.0

func clamp(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

// round3 is applied only at the output boundary. Internal arithmetic
// stays unrounded so the formula is exact and reproducible.
func round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// ComputeRisk scores a bridge design. Pure and deterministic: each active
// feature flag adds a fixed delta to the technical/economic/operational
// running totals seeded from the profile's base risks, the TVL rank nudges
// economic risk, each axis is clamped to [0,1], and the overall score is
// the weighted sum of the clamped axes (clamped again).
//
// TVLRank is coerced to a minimum of 1 so that direct callers cannot skew
// the economic axis with a non-positive rank; the echoed TVLRank in the
// result is the coerced value.
func ComputeRisk(input model.RiskInput) model.RiskResult {
	rank := input.TVLRank
	if rank < 1 {
		rank = 1
	}

	t := input.Profile.BaseTechnicalRisk
	e := input.Profile.BaseEconomicRisk
	o := input.Profile.BaseOperationalRisk

	if input.UsesZk {
		t -= 0.03
		o += 0.02
	}
	if input.UsesFhe {
		t += 0.04
		o += 0.03
	}
	if input.HasLightClient {
		t -= 0.06
		e -= 0.03
	}
	if input.HasMpcSigners {
		t += 0.04
		o += 0.05
	}
	if input.HasTimelock {
		e -= 0.05
		o -= 0.03
	}
	if input.HasAudits {
		t -= 0.07
		o -= 0.04
	}
	if input.HasFormalSpecs {
		t -= 0.08
		e -= 0.02
	}
	if input.MultiChain {
		t += 0.03
		o += 0.04
	}

	tvlFactor := clamp(float64(rank) / tvlRankDivisor)
	e += 0.08 * tvlFactor

	t = clamp(t)
	e = clamp(e)
	o = clamp(o)

	overall := clamp(weightTechnical*t + weightEconomic*e + weightOperational*o)

	return model.RiskResult{
		Profile:         input.Profile.Key,
		ProfileName:     input.Profile.Name,
		Description:     input.Profile.Description,
		UsesZk:          input.UsesZk,
		UsesFhe:         input.UsesFhe,
		HasLightClient:  input.HasLightClient,
		HasMpcSigners:   input.HasMpcSigners,
		HasTimelock:     input.HasTimelock,
		HasAudits:       input.HasAudits,
		HasFormalSpecs:  input.HasFormalSpecs,
		MultiChain:      input.MultiChain,
		TVLRank:         rank,
		TechnicalRisk:   round3(t),
		EconomicRisk:    round3(e),
		OperationalRisk: round3(o),
		OverallRisk:     round3(overall),
		RiskLabel:       types.LabelForScore(overall),
	}
}
