// Package registeredpatrons implements the Registered Patrons report, in registration order.
package registeredpatrons
