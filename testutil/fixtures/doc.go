// Package fixtures provides canonical library states for tests.
package fixtures
