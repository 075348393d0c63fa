// Package observable provides decorators that add metrics, tracing, and logging
// to command and query handlers without touching their business logic.
package observable
