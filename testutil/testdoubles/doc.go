// Package testdoubles provides spies for the observability and publishing interfaces.
//
// All spies are safe for concurrent use and record calls for later inspection in tests.
package testdoubles
