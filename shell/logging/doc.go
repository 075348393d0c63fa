// Package logging builds the slog.Logger used by the console and the handler wrappers.
package logging
