package pde

import "fmt"

// ConfigError marks invalid or incompatible parameters detected before any
// numeric work. It is surfaced to the caller and never retried.
type ConfigError struct {
	Reason string
}

func (e ConfigError) Error() string { return "config: " + e.Reason }

func Configf(format string, args ...any) ConfigError {
	return ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// NumericalError marks a failure during execution: a near-singular solve or
// a non-finite field value. The run aborts and partial results are discarded.
type NumericalError struct {
	Step   int
	Reason string
}

func (e NumericalError) Error() string {
	return fmt.Sprintf("numerical failure at step %d: %s", e.Step, e.Reason)
}
