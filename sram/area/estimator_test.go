package area_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarchlab/sramgen/sram"
	"github.com/sarchlab/sramgen/sram/area"
)

func mustConfig(t *testing.T, b sram.Builder) sram.Config {
	t.Helper()

	cfg, err := b.Build()
	require.NoError(t, err)

	return cfg
}

func baseBuilder() sram.Builder {
	return sram.MakeBuilder().
		WithDepth(1024).WithWidth(32).WithBanks(1).
		WithVoltage(1.0).WithProcessNode(28)
}

func TestEstimateBreakdownIsConsistent(t *testing.T) {
	est := area.Estimate(mustConfig(t, baseBuilder()))

	assert.Greater(t, est.BitcellAreaMm2, 0.0)
	assert.Greater(t, est.PeripheryAreaMm2, 0.0)
	assert.InDelta(t,
		est.BitcellAreaMm2+est.PeripheryAreaMm2, est.TotalAreaMm2, 1e-12)
	assert.Greater(t, est.AreaEfficiency, 0.0)
	assert.LessOrEqual(t, est.AreaEfficiency, 1.0)
}

func TestEfficiencyDecreasesWithBanks(t *testing.T) {
	prev := 2.0
	for _, banks := range []int{1, 2, 4, 8, 16} {
		est := area.Estimate(mustConfig(t, baseBuilder().WithBanks(banks)))

		assert.Less(t, est.AreaEfficiency, prev, "banks=%d", banks)
		prev = est.AreaEfficiency
	}
}

func TestECCIncreasesTotalArea(t *testing.T) {
	plain := area.Estimate(mustConfig(t, baseBuilder()))
	ecc := area.Estimate(mustConfig(t, baseBuilder().WithECC()))

	assert.Greater(t, ecc.TotalAreaMm2, plain.TotalAreaMm2)
	assert.Equal(t, ecc.BitcellAreaMm2, plain.BitcellAreaMm2)
}

func TestSmallerNodeShrinksBitcellArea(t *testing.T) {
	at28 := area.Estimate(mustConfig(t, baseBuilder()))
	at14 := area.Estimate(mustConfig(t,
		baseBuilder().WithProcessNode(14).WithVoltage(0.8)))

	assert.Less(t, at14.BitcellAreaMm2, at28.BitcellAreaMm2)
}

func TestBitcellAreaMatchesNodeTable(t *testing.T) {
	cfg := mustConfig(t, baseBuilder())
	est := area.Estimate(cfg)

	expected := 1024 * 32 * sram.NodeTable[28].BitcellAreaUm2 * 1e-6
	assert.InDelta(t, expected, est.BitcellAreaMm2, 1e-12)
}
