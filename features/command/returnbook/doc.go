// Package returnbook implements the Return Book use case.
//
// A patron brings back a copy they hold. The loan is removed before the copy goes back on the shelf;
// if the shelf already holds every copy the library reports a consistency fault,
// which this feature passes on unchanged and publishes as a ReturningBookFailed event.
package returnbook
