package model

import "github.com/secmon-lab/bridgerisk/pkg/domain/types"

// RiskInput is a single scoring request: one catalog profile plus the
// design feature flags and TVL rank. Created by the input collector and
// consumed exactly once by the calculator.
type RiskInput struct {
	Profile        *BridgeProfile
	UsesZk         bool
	UsesFhe        bool
	HasLightClient bool
	HasMpcSigners  bool
	HasTimelock    bool
	HasAudits      bool
	HasFormalSpecs bool
	MultiChain     bool
	TVLRank        int
}

// RiskResult echoes the scored input and carries the clamped scores, each
// rounded to 3 decimals. Field order is the wire order of the JSON report.
type RiskResult struct {
	Profile         types.StyleKey  `json:"profile"`
	ProfileName     string          `json:"profileName"`
	Description     string          `json:"description"`
	UsesZk          bool            `json:"usesZk"`
	UsesFhe         bool            `json:"usesFhe"`
	HasLightClient  bool            `json:"hasLightClient"`
	HasMpcSigners   bool            `json:"hasMpcSigners"`
	HasTimelock     bool            `json:"hasTimelock"`
	HasAudits       bool            `json:"hasAudits"`
	HasFormalSpecs  bool            `json:"hasFormalSpecs"`
	MultiChain      bool            `json:"multiChain"`
	TVLRank         int             `json:"tvlRank"`
	TechnicalRisk   float64         `json:"technicalRisk"`
	EconomicRisk    float64         `json:"economicRisk"`
	OperationalRisk float64         `json:"operationalRisk"`
	OverallRisk     float64         `json:"overallRisk"`
	RiskLabel       types.RiskLabel `json:"riskLabel"`
}
