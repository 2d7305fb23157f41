// Package debug owns the process-wide zap logger used for engine diagnostics.
//
// Until Init is called, Logger returns a no-op logger. When a log file is
// configured, or the PARTCALC_DEBUG environment variable names one, JSON
// records are also written to that file through a rotating writer.
package debug
