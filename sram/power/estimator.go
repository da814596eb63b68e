// Package power estimates the active and retention power of an SRAM macro.
package power

import (
	"github.com/sarchlab/sramgen/sram"
	"github.com/sarchlab/sramgen/sram/area"
	"github.com/sarchlab/sramgen/sram/timing"
)

// DefaultActivityFactor is the nominal fraction of accesses per cycle that
// toggle internal nodes, used when the caller does not supply one.
const DefaultActivityFactor = 0.1

// Low-power feature suppression factors. The adjustments compose
// multiplicatively and are applied after the nominal figures are computed:
// clock gating scales dynamic power, power gating scales static power, and
// retention power is a fraction of the reported static power.
const (
	clockGatingFactor = 0.60
	powerGatingFactor = 0.15
	retentionFraction = 0.05
)

// A Report holds the power breakdown of one macro. Active-mode figures
// are in milliwatts; retention power is a separate deep-sleep figure in
// microwatts and is exactly zero when retention mode is off.
type Report struct {
	DynamicPowerMW   float64 `json:"dynamic_power_mw"`
	StaticPowerMW    float64 `json:"static_power_mw"`
	TotalPowerMW     float64 `json:"total_power_mw"`
	RetentionPowerUW float64 `json:"retention_power_uw"`
}

// Estimate computes the power of cfg at the macro's maximum operating
// frequency and the given activity factor. It returns an
// ActivityFactorError when the factor is outside [0, 1] and propagates the
// timing model's ModelRangeError for out-of-range supply voltages.
func Estimate(cfg sram.Config, activityFactor float64) (Report, error) {
	if activityFactor < 0 || activityFactor > 1 {
		return Report{}, &sram.ActivityFactorError{Value: activityFactor}
	}

	t, err := timing.Estimate(cfg)
	if err != nil {
		return Report{}, err
	}

	return estimateAt(cfg, activityFactor, t.MaxFrequency), nil
}

// EstimateAtFrequency computes the power of cfg at a caller-supplied
// operating frequency in MHz instead of the macro's maximum frequency.
func EstimateAtFrequency(
	cfg sram.Config,
	activityFactor float64,
	freqMHz float64,
) (Report, error) {
	if activityFactor < 0 || activityFactor > 1 {
		return Report{}, &sram.ActivityFactorError{Value: activityFactor}
	}

	return estimateAt(cfg, activityFactor, freqMHz), nil
}

func estimateAt(cfg sram.Config, af, freqMHz float64) Report {
	node := cfg.Node()

	// P_dyn = C_sw * V^2 * f * AF. Switched capacitance scales with the
	// number of simultaneously accessed columns, width * banks. With C in
	// pF and f in MHz the product is microwatts, hence the 1e-3.
	switchedCapPF := node.SwitchedCapPFPerBit *
		float64(cfg.Width) * float64(cfg.Banks)
	dynamicMW := switchedCapPF * cfg.Voltage * cfg.Voltage *
		freqMHz * af * 1e-3

	if cfg.ClockGating {
		dynamicMW *= clockGatingFactor
	}

	totalAreaMm2 := area.Estimate(cfg).TotalAreaMm2
	staticMW := totalAreaMm2 * node.LeakageMWPerMm2V * cfg.Voltage

	if cfg.PowerGating {
		staticMW *= powerGatingFactor
	}

	retentionUW := 0.0
	if cfg.RetentionMode {
		retentionUW = retentionFraction * staticMW * 1000
	}

	return Report{
		DynamicPowerMW:   dynamicMW,
		StaticPowerMW:    staticMW,
		TotalPowerMW:     dynamicMW + staticMW,
		RetentionPowerUW: retentionUW,
	}
}
