package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/bridgerisk/pkg/domain/model"
	"github.com/secmon-lab/bridgerisk/pkg/domain/types"
)

func TestProfileByStyle(t *testing.T) {
	t.Run("resolves all catalog keys", func(t *testing.T) {
		for _, key := range types.AllStyleKeys() {
			p, err := model.ProfileByStyle(key)
			gt.NoError(t, err).Required()
			gt.Value(t, p.Key).Equal(key)
			gt.Value(t, p.Name).NotEqual("")
			gt.Value(t, p.Description).NotEqual("")
		}
	})

	t.Run("aztec base risks", func(t *testing.T) {
		p, err := model.ProfileByStyle(types.StyleAztec)
		gt.NoError(t, err).Required()
		gt.Value(t, p.BaseTechnicalRisk).Equal(0.35)
		gt.Value(t, p.BaseEconomicRisk).Equal(0.40)
		gt.Value(t, p.BaseOperationalRisk).Equal(0.30)
	})

	t.Run("zama base risks", func(t *testing.T) {
		p, err := model.ProfileByStyle(types.StyleZama)
		gt.NoError(t, err).Required()
		gt.Value(t, p.BaseTechnicalRisk).Equal(0.45)
		gt.Value(t, p.BaseEconomicRisk).Equal(0.42)
		gt.Value(t, p.BaseOperationalRisk).Equal(0.38)
	})

	t.Run("soundness base risks", func(t *testing.T) {
		p, err := model.ProfileByStyle(types.StyleSoundness)
		gt.NoError(t, err).Required()
		gt.Value(t, p.BaseTechnicalRisk).Equal(0.28)
		gt.Value(t, p.BaseEconomicRisk).Equal(0.32)
		gt.Value(t, p.BaseOperationalRisk).Equal(0.27)
	})

	t.Run("rejects unknown key", func(t *testing.T) {
		_, err := model.ProfileByStyle(types.StyleKey("wormhole"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrUnknownStyle))
	})
}

func TestAllProfiles(t *testing.T) {
	profiles := model.AllProfiles()
	gt.Array(t, profiles).Length(3)
	gt.Value(t, profiles[0].Key).Equal(types.StyleAztec)
	gt.Value(t, profiles[1].Key).Equal(types.StyleZama)
	gt.Value(t, profiles[2].Key).Equal(types.StyleSoundness)
}
