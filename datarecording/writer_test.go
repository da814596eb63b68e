package datarecording_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarchlab/sramgen/compiler"
	"github.com/sarchlab/sramgen/datarecording"
	"github.com/sarchlab/sramgen/sram"
)

func testConfig(t *testing.T) sram.Config {
	t.Helper()

	cfg, err := sram.MakeBuilder().
		WithDepth(512).WithWidth(32).WithBanks(2).
		WithVoltage(0.9).WithProcessNode(28).
		WithRetentionMode().
		Build()
	require.NoError(t, err)

	return cfg
}

func TestWriterCreateTableAndInsert(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec")
	w := datarecording.NewWriter(path)
	defer w.DB.Close()

	row := struct {
		Name  string
		Value float64
	}{}

	w.CreateTable("samples", row)
	w.Insert("samples", struct {
		Name  string
		Value float64
	}{"a", 1.5})
	w.Flush()

	var name string
	var value float64
	err := w.QueryRow("SELECT Name, Value FROM samples").Scan(&name, &value)
	require.NoError(t, err)
	assert.Equal(t, "a", name)
	assert.Equal(t, 1.5, value)
}

func TestWriterRejectsNestedStructs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec")
	w := datarecording.NewWriter(path)
	defer w.DB.Close()

	type inner struct{ X int }
	type outer struct{ Nested inner }

	assert.Panics(t, func() {
		w.CreateTable("bad", outer{})
	})
}

func TestEstimateLogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "estimates")

	estLog := datarecording.NewEstimateLog(path)

	cfg := testConfig(t)
	c := compiler.New(cfg)

	res, err := c.Analyze(0.1)
	require.NoError(t, err)

	sweep, err := c.PowerSweep(nil)
	require.NoError(t, err)

	estLog.RecordResult(res)
	estLog.RecordSweep(cfg.Fingerprint(), sweep)
	require.NoError(t, estLog.Close())

	reader := datarecording.NewReader(path)
	defer reader.DB.Close()

	results, err := reader.QueryAll(
		context.Background(), datarecording.ResultTable, "")
	require.NoError(t, err)
	require.Len(t, results, 1)

	row := results[0].(datarecording.ResultRow)
	assert.Equal(t, cfg.Fingerprint(), row.Fingerprint)
	assert.Equal(t, res.Area.TotalAreaMm2, row.TotalAreaMm2)
	assert.Greater(t, row.RetentionPowerUW, 0.0)

	sweepRows, err := reader.QueryAll(
		context.Background(), datarecording.SweepTable, "ActivityFactor")
	require.NoError(t, err)
	assert.Len(t, sweepRows, len(sweep))
}
