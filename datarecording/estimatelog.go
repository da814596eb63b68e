package datarecording

import (
	"github.com/sarchlab/sramgen/compiler"
)

// Table names used by the estimate log.
const (
	ResultTable = "results"
	SweepTable  = "power_sweep"
)

// A ResultRow is one flattened compilation result keyed by the
// configuration fingerprint.
type ResultRow struct {
	Fingerprint string
	Depth       int
	Width       int
	Banks       int
	Voltage     float64
	ProcessNode int

	BitcellAreaMm2   float64
	PeripheryAreaMm2 float64
	TotalAreaMm2     float64
	AreaEfficiency   float64

	AccessTimeNs    float64
	CycleTimeNs     float64
	MaxFrequencyMHz float64

	DynamicPowerMW   float64
	StaticPowerMW    float64
	TotalPowerMW     float64
	RetentionPowerUW float64
}

// A SweepRow is the power estimate of one configuration at one activity
// factor.
type SweepRow struct {
	Fingerprint    string
	ActivityFactor float64

	DynamicPowerMW   float64
	StaticPowerMW    float64
	TotalPowerMW     float64
	RetentionPowerUW float64
}

// An EstimateLog records compilation results and power sweeps.
type EstimateLog struct {
	writer *Writer
}

// NewEstimateLog creates an estimate log backed by path + ".sqlite3".
func NewEstimateLog(path string) *EstimateLog {
	w := NewWriter(path)
	w.CreateTable(ResultTable, ResultRow{})
	w.CreateTable(SweepTable, SweepRow{})

	return &EstimateLog{writer: w}
}

// RecordResult records one compilation result.
func (l *EstimateLog) RecordResult(res compiler.Result) {
	cfg := res.Config

	l.writer.Insert(ResultTable, ResultRow{
		Fingerprint: cfg.Fingerprint(),
		Depth:       cfg.Depth,
		Width:       cfg.Width,
		Banks:       cfg.Banks,
		Voltage:     cfg.Voltage,
		ProcessNode: cfg.ProcessNode,

		BitcellAreaMm2:   res.Area.BitcellAreaMm2,
		PeripheryAreaMm2: res.Area.PeripheryAreaMm2,
		TotalAreaMm2:     res.Area.TotalAreaMm2,
		AreaEfficiency:   res.Area.AreaEfficiency,

		AccessTimeNs:    res.Timing.AccessTimeNs,
		CycleTimeNs:     res.Timing.CycleTimeNs,
		MaxFrequencyMHz: res.Timing.MaxFrequency,

		DynamicPowerMW:   res.Power.DynamicPowerMW,
		StaticPowerMW:    res.Power.StaticPowerMW,
		TotalPowerMW:     res.Power.TotalPowerMW,
		RetentionPowerUW: res.Power.RetentionPowerUW,
	})
}

// RecordSweep records the power sweep of one configuration.
func (l *EstimateLog) RecordSweep(
	fingerprint string,
	points []compiler.SweepPoint,
) {
	for _, pt := range points {
		l.writer.Insert(SweepTable, SweepRow{
			Fingerprint:    fingerprint,
			ActivityFactor: pt.ActivityFactor,

			DynamicPowerMW:   pt.Power.DynamicPowerMW,
			StaticPowerMW:    pt.Power.StaticPowerMW,
			TotalPowerMW:     pt.Power.TotalPowerMW,
			RetentionPowerUW: pt.Power.RetentionPowerUW,
		})
	}
}

// Flush writes all buffered rows to the database.
func (l *EstimateLog) Flush() {
	l.writer.Flush()
}

// Close flushes and closes the underlying database.
func (l *EstimateLog) Close() error {
	l.writer.Flush()
	return l.writer.DB.Close()
}
