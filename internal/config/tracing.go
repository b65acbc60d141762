package config

import (
	"io"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// InitTracing installs a tracer based on the Go standard logger for all
// trace keys, at the configured trace level, and returns it.
func (cfg *Config) InitTracing(w io.Writer) tracing.Trace {
	t := gologadapter.New()
	t.SetOutput(w)
	t.SetTraceLevel(tracing.TraceLevelFromString(cfg.TraceLevel))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return t
	}))
	return t
}
