package sram

import "sort"

// A Node holds the per-technology-node constants that drive the analytical
// area, timing, and power models. All models look constants up here so that
// adding a node never touches estimator logic.
type Node struct {
	// BitcellAreaUm2 is the area of one 6T bit cell in square micrometers.
	BitcellAreaUm2 float64

	// SwitchedCapPFPerBit is the effective switched capacitance per
	// accessed bit, including its share of bitline and I/O capacitance.
	SwitchedCapPFPerBit float64

	// LeakageMWPerMm2V is the leakage power density per square millimeter
	// per volt of supply.
	LeakageMWPerMm2V float64

	// BaseAccessNs is the access time of a minimum-size array.
	BaseAccessNs float64

	// WireDelayNsPerSqrtWord captures wordline/bitline RC growth with the
	// per-bank word count.
	WireDelayNsPerSqrtWord float64

	// VoltageSensNsV scales the supply-voltage delay term.
	VoltageSensNsV float64

	// CycleMarginNs is the setup/hold margin added to access time to form
	// cycle time.
	CycleMarginNs float64

	// VoltageMin and VoltageMax bound the range over which the timing and
	// power models are validated.
	VoltageMin float64
	VoltageMax float64
}

// NodeTable maps a technology node in nanometers to its model constants.
// Values are representative of published foundry SRAM compilers and are
// intended for architectural exploration, not sign-off.
var NodeTable = map[int]Node{
	65: {
		BitcellAreaUm2:         0.525,
		SwitchedCapPFPerBit:    1.80,
		LeakageMWPerMm2V:       0.15,
		BaseAccessNs:           1.80,
		WireDelayNsPerSqrtWord: 0.045,
		VoltageSensNsV:         0.055,
		CycleMarginNs:          0.50,
		VoltageMin:             0.90,
		VoltageMax:             1.32,
	},
	45: {
		BitcellAreaUm2:         0.250,
		SwitchedCapPFPerBit:    1.20,
		LeakageMWPerMm2V:       0.25,
		BaseAccessNs:           1.30,
		WireDelayNsPerSqrtWord: 0.035,
		VoltageSensNsV:         0.048,
		CycleMarginNs:          0.38,
		VoltageMin:             0.80,
		VoltageMax:             1.21,
	},
	28: {
		BitcellAreaUm2:         0.120,
		SwitchedCapPFPerBit:    0.80,
		LeakageMWPerMm2V:       0.45,
		BaseAccessNs:           0.90,
		WireDelayNsPerSqrtWord: 0.025,
		VoltageSensNsV:         0.040,
		CycleMarginNs:          0.28,
		VoltageMin:             0.70,
		VoltageMax:             1.10,
	},
	22: {
		BitcellAreaUm2:         0.092,
		SwitchedCapPFPerBit:    0.65,
		LeakageMWPerMm2V:       0.60,
		BaseAccessNs:           0.75,
		WireDelayNsPerSqrtWord: 0.021,
		VoltageSensNsV:         0.035,
		CycleMarginNs:          0.24,
		VoltageMin:             0.65,
		VoltageMax:             1.00,
	},
	14: {
		BitcellAreaUm2:         0.050,
		SwitchedCapPFPerBit:    0.45,
		LeakageMWPerMm2V:       0.90,
		BaseAccessNs:           0.55,
		WireDelayNsPerSqrtWord: 0.016,
		VoltageSensNsV:         0.028,
		CycleMarginNs:          0.18,
		VoltageMin:             0.55,
		VoltageMax:             0.90,
	},
	7: {
		BitcellAreaUm2:         0.027,
		SwitchedCapPFPerBit:    0.30,
		LeakageMWPerMm2V:       1.40,
		BaseAccessNs:           0.40,
		WireDelayNsPerSqrtWord: 0.012,
		VoltageSensNsV:         0.020,
		CycleMarginNs:          0.14,
		VoltageMin:             0.50,
		VoltageMax:             0.80,
	},
}

// SupportedNodes returns the known technology nodes in ascending order.
func SupportedNodes() []int {
	nodes := make([]int, 0, len(NodeTable))
	for n := range NodeTable {
		nodes = append(nodes, n)
	}

	sort.Ints(nodes)

	return nodes
}

// VoltageInRange reports whether v lies within the node's validated supply
// range.
func (n Node) VoltageInRange(v float64) bool {
	return v >= n.VoltageMin && v <= n.VoltageMax
}
