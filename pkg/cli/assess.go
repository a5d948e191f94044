package cli

import (
	"github.com/secmon-lab/bridgerisk/pkg/domain/model"
	"github.com/secmon-lab/bridgerisk/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// assessConfig collects the scoring flags and turns them into a validated
// calculator input.
type assessConfig struct {
	style       string
	usesZk      bool
	usesFhe     bool
	lightClient bool
	mpcSigners  bool
	timelock    bool
	audits      bool
	formalSpecs bool
	multiChain  bool
	tvlRank     int
	jsonOutput  bool
}

// Flags returns CLI flags for the risk assessment input
func (x *assessConfig) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "style",
			Usage:       "Base bridge style [aztec, zama, soundness]",
			Value:       types.StyleAztec.String(),
			Sources:     cli.EnvVars("BRIDGERISK_STYLE"),
			Destination: &x.style,
		},
		&cli.BoolFlag{
			Name:        "zk",
			Usage:       "Bridge uses zk proofs for message validity or state sync",
			Sources:     cli.EnvVars("BRIDGERISK_ZK"),
			Destination: &x.usesZk,
		},
		&cli.BoolFlag{
			Name:        "fhe",
			Usage:       "Bridge interacts with FHE compute or encrypted pipelines",
			Sources:     cli.EnvVars("BRIDGERISK_FHE"),
			Destination: &x.usesFhe,
		},
		&cli.BoolFlag{
			Name:        "light-client",
			Usage:       "Bridge uses on-chain light client verification instead of trusted relayers",
			Sources:     cli.EnvVars("BRIDGERISK_LIGHT_CLIENT"),
			Destination: &x.lightClient,
		},
		&cli.BoolFlag{
			Name:        "mpc-signers",
			Usage:       "Bridge relies on MPC or multisig signers for control",
			Sources:     cli.EnvVars("BRIDGERISK_MPC_SIGNERS"),
			Destination: &x.mpcSigners,
		},
		&cli.BoolFlag{
			Name:        "timelock",
			Usage:       "Bridge has timelock or delay on admin and governance actions",
			Sources:     cli.EnvVars("BRIDGERISK_TIMELOCK"),
			Destination: &x.timelock,
		},
		&cli.BoolFlag{
			Name:        "audits",
			Usage:       "Bridge code has had at least one independent security audit",
			Sources:     cli.EnvVars("BRIDGERISK_AUDITS"),
			Destination: &x.audits,
		},
		&cli.BoolFlag{
			Name:        "formal-specs",
			Usage:       "Bridge or protocol has a public formal specification or model",
			Sources:     cli.EnvVars("BRIDGERISK_FORMAL_SPECS"),
			Destination: &x.formalSpecs,
		},
		&cli.BoolFlag{
			Name:        "multi-chain",
			Usage:       "Bridge connects more than two chains/rollups (multi-chain graph)",
			Sources:     cli.EnvVars("BRIDGERISK_MULTI_CHAIN"),
			Destination: &x.multiChain,
		},
		&cli.IntFlag{
			Name:        "tvl-rank",
			Usage:       "Rough TVL rank (1 = top TVL, higher = lower TVL); mildly increases economic risk",
			Value:       25,
			Sources:     cli.EnvVars("BRIDGERISK_TVL_RANK"),
			Destination: &x.tvlRank,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "Print JSON instead of human-readable output",
			Sources:     cli.EnvVars("BRIDGERISK_JSON"),
			Destination: &x.jsonOutput,
		},
	}
}

// Input validates the collected flags and builds the calculator input.
// The style key must resolve in the catalog; the TVL rank is coerced to a
// minimum of 1 so the echoed rank matches what gets scored.
func (x *assessConfig) Input() (model.RiskInput, error) {
	key, err := types.ParseStyle(x.style)
	if err != nil {
		return model.RiskInput{}, err
	}

	profile, err := model.ProfileByStyle(key)
	if err != nil {
		return model.RiskInput{}, err
	}

	rank := x.tvlRank
	if rank < 1 {
		rank = 1
	}

	return model.RiskInput{
		Profile:        profile,
		UsesZk:         x.usesZk,
		UsesFhe:        x.usesFhe,
		HasLightClient: x.lightClient,
		HasMpcSigners:  x.mpcSigners,
		HasTimelock:    x.timelock,
		HasAudits:      x.audits,
		HasFormalSpecs: x.formalSpecs,
		MultiChain:     x.multiChain,
		TVLRank:        rank,
	}, nil
}
