package telemetry

import "time"

// MsgSpanEnd reports a finished span to the live dashboard.
type MsgSpanEnd struct {
	Name     string
	Duration time.Duration
	Attrs    map[string]string
	Err      error
}
