// Package compiler bundles the SRAM estimators and the RTL generator
// behind a single façade driven by one validated configuration.
package compiler

import (
	"github.com/sarchlab/sramgen/sram"
	"github.com/sarchlab/sramgen/sram/area"
	"github.com/sarchlab/sramgen/sram/power"
	"github.com/sarchlab/sramgen/sram/rtl"
	"github.com/sarchlab/sramgen/sram/timing"
)

// DefaultSweepFactors are the activity factors the power analysis sweeps
// over when the caller does not supply its own.
var DefaultSweepFactors = []float64{0.01, 0.05, 0.1, 0.2, 0.5}

// A Result collects every estimate for one configuration, in the record
// shape the report layer serializes.
type Result struct {
	Config    sram.Config     `json:"configuration"`
	Area      area.Report   `json:"area"`
	Timing    timing.Report `json:"timing"`
	Power     power.Report  `json:"power"`
	Artifacts []string        `json:"artifacts,omitempty"`
}

// A SweepPoint is the power estimate at one activity factor.
type SweepPoint struct {
	ActivityFactor float64      `json:"activity_factor"`
	Power          power.Report `json:"power"`
}

// A Compiler drives all estimators and the generator for one
// configuration. It holds no mutable state and is safe for concurrent use.
type Compiler struct {
	cfg sram.Config
}

// New creates a compiler for the given configuration.
func New(cfg sram.Config) *Compiler {
	return &Compiler{cfg: cfg}
}

// Config returns the configuration the compiler was built with.
func (c *Compiler) Config() sram.Config {
	return c.cfg
}

// EstimateArea returns the area estimate for the configuration.
func (c *Compiler) EstimateArea() area.Report {
	return area.Estimate(c.cfg)
}

// EstimateTiming returns the timing estimate for the configuration.
func (c *Compiler) EstimateTiming() (timing.Report, error) {
	return timing.Estimate(c.cfg)
}

// EstimatePower returns the power estimate at the given activity factor.
func (c *Compiler) EstimatePower(activityFactor float64) (
	power.Report, error,
) {
	return power.Estimate(c.cfg, activityFactor)
}

// GenerateVerilog writes the RTL artifact set under dest and returns the
// sorted artifact names.
func (c *Compiler) GenerateVerilog(dest string) ([]string, error) {
	return rtl.Generate(c.cfg, dest)
}

// Analyze runs all three estimators at the given activity factor.
func (c *Compiler) Analyze(activityFactor float64) (Result, error) {
	t, err := timing.Estimate(c.cfg)
	if err != nil {
		return Result{}, err
	}

	p, err := power.Estimate(c.cfg, activityFactor)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Config: c.cfg,
		Area:   area.Estimate(c.cfg),
		Timing: t,
		Power:  p,
	}, nil
}

// Compile runs the full flow: all estimates plus RTL generation into dest.
func (c *Compiler) Compile(dest string, activityFactor float64) (
	Result, error,
) {
	res, err := c.Analyze(activityFactor)
	if err != nil {
		return Result{}, err
	}

	res.Artifacts, err = rtl.Generate(c.cfg, dest)
	if err != nil {
		return Result{}, err
	}

	return res, nil
}

// PowerSweep estimates power across the given activity factors, or
// DefaultSweepFactors when factors is empty.
func (c *Compiler) PowerSweep(factors []float64) ([]SweepPoint, error) {
	if len(factors) == 0 {
		factors = DefaultSweepFactors
	}

	points := make([]SweepPoint, 0, len(factors))
	for _, af := range factors {
		p, err := power.Estimate(c.cfg, af)
		if err != nil {
			return nil, err
		}

		points = append(points, SweepPoint{ActivityFactor: af, Power: p})
	}

	return points, nil
}
