package sram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarchlab/sramgen/sram"
)

func TestBuilderBuildsValidConfig(t *testing.T) {
	cfg, err := sram.MakeBuilder().
		WithDepth(1024).
		WithWidth(32).
		WithBanks(4).
		WithVoltage(0.9).
		WithProcessNode(28).
		Build()

	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Depth)
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, 4, cfg.Banks)
	assert.Equal(t, 256, cfg.WordsPerBank())
}

func TestBuilderRejectsInvalidConfigs(t *testing.T) {
	tests := []struct {
		name    string
		builder sram.Builder
		field   string
	}{
		{
			name:    "non-positive depth",
			builder: sram.MakeBuilder().WithDepth(0),
			field:   "depth",
		},
		{
			name:    "non-positive width",
			builder: sram.MakeBuilder().WithWidth(-8),
			field:   "width",
		},
		{
			name:    "non-positive banks",
			builder: sram.MakeBuilder().WithBanks(0),
			field:   "banks",
		},
		{
			name: "banks exceed depth",
			builder: sram.MakeBuilder().
				WithDepth(4).WithBanks(8),
			field: "banks",
		},
		{
			name: "banks do not divide depth",
			builder: sram.MakeBuilder().
				WithDepth(1000).WithBanks(3),
			field: "banks",
		},
		{
			name:    "non-positive voltage",
			builder: sram.MakeBuilder().WithVoltage(0),
			field:   "voltage",
		},
		{
			name:    "unsupported process node",
			builder: sram.MakeBuilder().WithProcessNode(33),
			field:   "process_node",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()

			require.Error(t, err)

			var cfgErr *sram.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestDecodeConfig(t *testing.T) {
	data := []byte(`{
		"depth": 1024,
		"width": 32,
		"banks": 2,
		"voltage": 0.9,
		"process_node": 28,
		"power_gating": true,
		"clock_gating": false,
		"retention_mode": true,
		"ecc_enable": false
	}`)

	cfg, err := sram.DecodeConfig(data)

	require.NoError(t, err)
	assert.True(t, cfg.PowerGating)
	assert.False(t, cfg.ClockGating)
	assert.True(t, cfg.RetentionMode)
}

func TestDecodeConfigRejectsMalformedJSON(t *testing.T) {
	_, err := sram.DecodeConfig([]byte(`{"depth": `))

	var cfgErr *sram.ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestDecodeConfigValidates(t *testing.T) {
	_, err := sram.DecodeConfig([]byte(
		`{"depth": 1024, "width": 32, "banks": 2,
		  "voltage": 0.9, "process_node": 12}`))

	var cfgErr *sram.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "process_node", cfgErr.Field)
}

func TestFingerprintIsDeterministic(t *testing.T) {
	build := func() sram.Config {
		cfg, err := sram.MakeBuilder().
			WithDepth(512).WithWidth(16).WithBanks(2).
			WithVoltage(0.8).WithProcessNode(22).
			WithECC().
			Build()
		require.NoError(t, err)

		return cfg
	}

	assert.Equal(t, build().Fingerprint(), build().Fingerprint())
}

func TestSupportedNodesAreSorted(t *testing.T) {
	nodes := sram.SupportedNodes()

	require.NotEmpty(t, nodes)
	for i := 1; i < len(nodes); i++ {
		assert.Less(t, nodes[i-1], nodes[i])
	}
}
