package helpers

import "expvar"

// Process-wide counters published on /debug/vars.
var (
	GateRedirects   = expvar.NewInt("gate_redirects")
	BackendCalls    = expvar.NewInt("backend_calls")
	BackendFailures = expvar.NewInt("backend_failures")
	UploadsAccepted = expvar.NewInt("uploads_accepted")
)
