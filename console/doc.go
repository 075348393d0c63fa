// Package console is the interactive, line-oriented menu in front of the library.
//
// It reads one answer per line from an io.Reader, parses numbers, dispatches to the command
// and query handlers, and prints results and errors to an io.Writer. End of input behaves like
// choosing exit.
package console
