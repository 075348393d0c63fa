// Package registerpatron implements the Register Patron use case.
package registerpatron
