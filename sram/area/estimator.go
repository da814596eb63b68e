// Package area estimates the silicon area of an SRAM macro.
package area

import (
	"math"

	"github.com/sarchlab/sramgen/sram"
)

// Periphery overhead model. The base factor covers decoders, sense
// amplifiers, and I/O drivers of a single-bank array. Each additional bank
// replicates periphery with diminishing returns, hence the sqrt term.
const (
	basePeripheryFactor = 0.20
	bankPeripheryCoeff  = 0.08
	eccLogicFactor      = 0.02
)

// A Report holds the area breakdown of one macro in square millimeters.
type Report struct {
	BitcellAreaMm2   float64 `json:"bitcell_area_mm2"`
	PeripheryAreaMm2 float64 `json:"periphery_area_mm2"`
	TotalAreaMm2     float64 `json:"total_area_mm2"`
	AreaEfficiency   float64 `json:"area_efficiency"`
}

// Estimate computes the area of the macro described by cfg. It is a pure
// function of the configuration and never fails on a validated config.
func Estimate(cfg sram.Config) Report {
	node := cfg.Node()

	bits := float64(cfg.Depth * cfg.Width)
	bitcellMm2 := bits * node.BitcellAreaUm2 * 1e-6

	factor := basePeripheryFactor +
		bankPeripheryCoeff*math.Sqrt(float64(cfg.Banks))

	if cfg.ECCEnable {
		checkBits := sram.CheckBits(cfg.Width)
		factor += float64(checkBits)/float64(cfg.Width) + eccLogicFactor
	}

	peripheryMm2 := bitcellMm2 * factor
	totalMm2 := bitcellMm2 + peripheryMm2

	return Report{
		BitcellAreaMm2:   bitcellMm2,
		PeripheryAreaMm2: peripheryMm2,
		TotalAreaMm2:     totalMm2,
		AreaEfficiency:   bitcellMm2 / totalMm2,
	}
}
