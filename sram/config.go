// Package sram defines the configuration of an SRAM macro and the process
// technology tables shared by the estimators and the RTL generator.
package sram

import (
	"encoding/json"
	"fmt"
)

// A Config describes one SRAM macro instance. It is immutable after Build
// and can be shared freely across concurrent estimation calls.
type Config struct {
	Depth       int
	Width       int
	Banks       int
	Voltage     float64
	ProcessNode int

	PowerGating   bool
	ClockGating   bool
	RetentionMode bool
	ECCEnable     bool
}

// WordsPerBank returns the number of addressable words in each bank.
func (c Config) WordsPerBank() int {
	return c.Depth / c.Banks
}

// Node returns the process technology parameters for the configured node.
func (c Config) Node() Node {
	return NodeTable[c.ProcessNode]
}

// Fingerprint returns a short deterministic identifier for the
// configuration, used to tag recorded estimates and generated artifacts.
func (c Config) Fingerprint() string {
	flags := ""
	if c.PowerGating {
		flags += "P"
	}
	if c.ClockGating {
		flags += "C"
	}
	if c.RetentionMode {
		flags += "R"
	}
	if c.ECCEnable {
		flags += "E"
	}
	if flags == "" {
		flags = "-"
	}

	return fmt.Sprintf("%dx%db%dn%dv%.2f%s",
		c.Depth, c.Width, c.Banks, c.ProcessNode, c.Voltage, flags)
}

// Builder can build validated SRAM configurations.
type Builder struct {
	depth       int
	width       int
	banks       int
	voltage     float64
	processNode int

	powerGating   bool
	clockGating   bool
	retentionMode bool
	eccEnable     bool
}

// MakeBuilder creates a builder with default geometry.
func MakeBuilder() Builder {
	return Builder{
		depth:       1024,
		width:       32,
		banks:       1,
		voltage:     0.9,
		processNode: 28,
	}
}

// WithDepth sets the number of addressable words.
func (b Builder) WithDepth(depth int) Builder {
	b.depth = depth
	return b
}

// WithWidth sets the number of bits per word.
func (b Builder) WithWidth(width int) Builder {
	b.width = width
	return b
}

// WithBanks sets the number of parallel sub-arrays. Depth must be evenly
// divisible by the bank count.
func (b Builder) WithBanks(banks int) Builder {
	b.banks = banks
	return b
}

// WithVoltage sets the supply voltage in volts.
func (b Builder) WithVoltage(voltage float64) Builder {
	b.voltage = voltage
	return b
}

// WithProcessNode sets the technology node in nanometers. The node must be
// present in NodeTable.
func (b Builder) WithProcessNode(node int) Builder {
	b.processNode = node
	return b
}

// WithPowerGating enables supply gating of idle banks.
func (b Builder) WithPowerGating() Builder {
	b.powerGating = true
	return b
}

// WithClockGating enables clock suppression on inactive cycles.
func (b Builder) WithClockGating() Builder {
	b.clockGating = true
	return b
}

// WithRetentionMode enables the low-voltage data-retention state.
func (b Builder) WithRetentionMode() Builder {
	b.retentionMode = true
	return b
}

// WithECC enables single-error-correcting check bits and logic.
func (b Builder) WithECC() Builder {
	b.eccEnable = true
	return b
}

// Build validates the builder fields and returns an immutable Config.
func (b Builder) Build() (Config, error) {
	c := Config{
		Depth:         b.depth,
		Width:         b.width,
		Banks:         b.banks,
		Voltage:       b.voltage,
		ProcessNode:   b.processNode,
		PowerGating:   b.powerGating,
		ClockGating:   b.clockGating,
		RetentionMode: b.retentionMode,
		ECCEnable:     b.eccEnable,
	}

	if err := c.validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

func (c Config) validate() error {
	if c.Depth <= 0 {
		return &ConfigError{
			Field: "depth", Value: c.Depth,
			Reason: "must be a positive integer",
		}
	}

	if c.Width <= 0 {
		return &ConfigError{
			Field: "width", Value: c.Width,
			Reason: "must be a positive integer",
		}
	}

	if c.Banks <= 0 {
		return &ConfigError{
			Field: "banks", Value: c.Banks,
			Reason: "must be a positive integer",
		}
	}

	if c.Banks > c.Depth {
		return &ConfigError{
			Field: "banks", Value: c.Banks,
			Reason: fmt.Sprintf("must not exceed depth %d", c.Depth),
		}
	}

	if c.Depth%c.Banks != 0 {
		return &ConfigError{
			Field: "banks", Value: c.Banks,
			Reason: fmt.Sprintf("must evenly divide depth %d", c.Depth),
		}
	}

	if c.Voltage <= 0 {
		return &ConfigError{
			Field: "voltage", Value: c.Voltage,
			Reason: "must be positive",
		}
	}

	if _, ok := NodeTable[c.ProcessNode]; !ok {
		return &ConfigError{
			Field: "process_node", Value: c.ProcessNode,
			Reason: fmt.Sprintf(
				"unsupported node, supported nodes are %v nm",
				SupportedNodes()),
		}
	}

	return nil
}

// configRecord is the JSON shape exchanged with the orchestration layer.
type configRecord struct {
	Depth         int     `json:"depth"`
	Width         int     `json:"width"`
	Banks         int     `json:"banks"`
	Voltage       float64 `json:"voltage"`
	ProcessNode   int     `json:"process_node"`
	PowerGating   bool    `json:"power_gating"`
	ClockGating   bool    `json:"clock_gating"`
	RetentionMode bool    `json:"retention_mode"`
	ECCEnable     bool    `json:"ecc_enable"`
}

// DecodeConfig parses a JSON configuration record and validates it the same
// way Builder.Build does.
func DecodeConfig(data []byte) (Config, error) {
	var rec configRecord

	if err := json.Unmarshal(data, &rec); err != nil {
		return Config{}, &ConfigError{
			Field:  "config",
			Value:  string(data),
			Reason: "malformed JSON: " + err.Error(),
		}
	}

	c := Config{
		Depth:         rec.Depth,
		Width:         rec.Width,
		Banks:         rec.Banks,
		Voltage:       rec.Voltage,
		ProcessNode:   rec.ProcessNode,
		PowerGating:   rec.PowerGating,
		ClockGating:   rec.ClockGating,
		RetentionMode: rec.RetentionMode,
		ECCEnable:     rec.ECCEnable,
	}

	if err := c.validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// UnmarshalJSON parses and validates the record shape produced by
// MarshalJSON.
func (c *Config) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeConfig(data)
	if err != nil {
		return err
	}

	*c = decoded

	return nil
}

// MarshalJSON serializes the configuration in the record shape accepted by
// DecodeConfig.
func (c Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(configRecord{
		Depth:         c.Depth,
		Width:         c.Width,
		Banks:         c.Banks,
		Voltage:       c.Voltage,
		ProcessNode:   c.ProcessNode,
		PowerGating:   c.PowerGating,
		ClockGating:   c.ClockGating,
		RetentionMode: c.RetentionMode,
		ECCEnable:     c.ECCEnable,
	})
}
