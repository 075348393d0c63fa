// Package registerbook implements the Register Book use case: adding a title with
// a number of copies to the catalog under a unique catalog key.
package registerbook
