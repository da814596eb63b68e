// Package timing estimates the access and cycle time of an SRAM macro.
package timing

import (
	"math"

	"github.com/sarchlab/sramgen/sram"
)

// eccCyclePenaltyNs is added to the cycle time when ECC is enabled. The
// generated read path decodes combinationally after the registered array
// read, so the correction network stretches the cycle rather than adding
// a latency stage.
const eccCyclePenaltyNs = 0.30

// A Report holds the timing of one macro. Times are in nanoseconds,
// frequency in megahertz.
type Report struct {
	AccessTimeNs float64 `json:"access_time_ns"`
	CycleTimeNs  float64 `json:"cycle_time_ns"`
	MaxFrequency float64 `json:"max_frequency_mhz"`
}

// Estimate computes access time, cycle time, and the resulting maximum
// operating frequency for cfg. It returns a ModelRangeError when the
// requested supply voltage is outside the validated range of the node.
func Estimate(cfg sram.Config) (Report, error) {
	node := cfg.Node()

	if !node.VoltageInRange(cfg.Voltage) {
		return Report{}, &sram.ModelRangeError{
			Node:    cfg.ProcessNode,
			Field:   "voltage",
			Value:   cfg.Voltage,
			RangeLo: node.VoltageMin,
			RangeHi: node.VoltageMax,
		}
	}

	// Wordline/bitline RC delay grows with the per-bank array dimension;
	// banking shortens both wires. The voltage term diverges as the supply
	// approaches the retention limit below VoltageMin.
	wireNs := node.WireDelayNsPerSqrtWord *
		math.Sqrt(float64(cfg.WordsPerBank()))
	voltageNs := node.VoltageSensNsV / (cfg.Voltage - 0.9*node.VoltageMin)

	accessNs := node.BaseAccessNs + wireNs + voltageNs

	cycleNs := accessNs + node.CycleMarginNs
	if cfg.ECCEnable {
		cycleNs += eccCyclePenaltyNs
	}

	return Report{
		AccessTimeNs: accessNs,
		CycleTimeNs:  cycleNs,
		MaxFrequency: 1000 / cycleNs,
	}, nil
}
