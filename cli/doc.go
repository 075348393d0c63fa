// Package cli is the command line entry point: it loads the configuration, builds the library
// with its handlers, and runs the console.
package cli
