package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarchlab/sramgen/compiler"
	"github.com/sarchlab/sramgen/sram/power"
)

func TestLoadReportRoundTrip(t *testing.T) {
	cfg, err := compiler.TemplateConfig("small_cache")
	require.NoError(t, err)

	res, err := compiler.New(cfg).Analyze(power.DefaultActivityFactor)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t,
		writeJSONFile(dir, "comparison_report.json",
			[]compiler.Result{res}))

	results, err := loadReport(
		filepath.Join(dir, "comparison_report.json"))

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, cfg.Fingerprint(), results[0].Config.Fingerprint())
	assert.Equal(t, res.Timing.MaxFrequency,
		results[0].Timing.MaxFrequency)
}

func TestLoadReportMissingFile(t *testing.T) {
	_, err := loadReport(filepath.Join(t.TempDir(), "report.json"))

	assert.Error(t, err)
}
