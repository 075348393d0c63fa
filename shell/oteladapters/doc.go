// Package oteladapters connects the library's observability interfaces to OpenTelemetry.
//
// The console wires these adapters when observability is enabled. Without an OTLP endpoint
// the global providers stay no-op and the adapters cost next to nothing.
package oteladapters
