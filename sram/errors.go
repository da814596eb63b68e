package sram

import "fmt"

// A ConfigError reports a malformed, missing, or out-of-range configuration
// field, or a violated cross-field invariant. It is returned at
// configuration construction time, before any estimator runs.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration field %s=%v: %s",
		e.Field, e.Value, e.Reason)
}

// A ModelRangeError reports a requested operating point outside the range
// over which the analytical model is validated for the given node. The
// model refuses to extrapolate silently.
type ModelRangeError struct {
	Node    int
	Field   string
	Value   float64
	RangeLo float64
	RangeHi float64
}

func (e *ModelRangeError) Error() string {
	return fmt.Sprintf(
		"%s %.3f is outside the validated range [%.2f, %.2f] for the %dnm node",
		e.Field, e.Value, e.RangeLo, e.RangeHi, e.Node)
}

// An ActivityFactorError reports an activity factor outside [0, 1].
type ActivityFactorError struct {
	Value float64
}

func (e *ActivityFactorError) Error() string {
	return fmt.Sprintf(
		"activity factor %.3f is outside the valid range [0, 1]", e.Value)
}
