package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/bridgerisk/pkg/domain/types"
)

// BridgeProfile is a catalog entry describing a base bridge style. Base risk
// values are in [0,1] and are the starting points before feature adjustments.
type BridgeProfile struct {
	Key                 types.StyleKey
	Name                string
	Description         string
	BaseTechnicalRisk   float64
	BaseEconomicRisk    float64
	BaseOperationalRisk float64
}

// profiles is the closed catalog. The styles are fixed domain knowledge,
// not user-extensible data.
var profiles = map[types.StyleKey]BridgeProfile{
	types.StyleAztec: {
		Key:                 types.StyleAztec,
		Name:                "Aztec-style Privacy Bridge",
		Description:         "Bridge for zk privacy rollups with encrypted state and batched proofs.",
		BaseTechnicalRisk:   0.35,
		BaseEconomicRisk:    0.40,
		BaseOperationalRisk: 0.30,
	},
	types.StyleZama: {
		Key:                 types.StyleZama,
		Name:                "Zama-style FHE Bridge",
		Description:         "Bridge interacting with FHE compute layers and encrypted pipelines.",
		BaseTechnicalRisk:   0.45,
		BaseEconomicRisk:    0.42,
		BaseOperationalRisk: 0.38,
	},
	types.StyleSoundness: {
		Key:                 types.StyleSoundness,
		Name:                "Soundness-first Research Bridge",
		Description:         "Bridge designed with formal models and soundness-first engineering.",
		BaseTechnicalRisk:   0.28,
		BaseEconomicRisk:    0.32,
		BaseOperationalRisk: 0.27,
	},
}

// ProfileByStyle resolves a style key in the catalog. Unknown keys are a
// caller error and are rejected before the calculator ever runs.
func ProfileByStyle(key types.StyleKey) (*BridgeProfile, error) {
	p, ok := profiles[key]
	if !ok {
		return nil, goerr.Wrap(types.ErrUnknownStyle, "style not in catalog", goerr.V("style", key))
	}
	return &p, nil
}

// AllProfiles returns the catalog entries in fixed key order.
func AllProfiles() []*BridgeProfile {
	keys := types.AllStyleKeys()
	entries := make([]*BridgeProfile, 0, len(keys))
	for _, key := range keys {
		p := profiles[key]
		entries = append(entries, &p)
	}
	return entries
}
