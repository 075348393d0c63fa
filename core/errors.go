package core

import (
	"errors"
	"fmt"
)

// Kind tags every failure the lending domain can produce.
// The set is closed: callers are expected to switch over all values.
type Kind int

// The kinds of lending errors.
const (
	KindDuplicateBook Kind = iota + 1
	KindDuplicatePatron
	KindBookNotFound
	KindPatronNotFound
	KindNoCopiesAvailable
	KindOverReturn
	KindDuplicateLoan
	KindNoSuchLoan
	KindInvalidCopyCount
)

// AllKinds lists every Kind in declaration order.
func AllKinds() []Kind {
	return []Kind{
		KindDuplicateBook,
		KindDuplicatePatron,
		KindBookNotFound,
		KindPatronNotFound,
		KindNoCopiesAvailable,
		KindOverReturn,
		KindDuplicateLoan,
		KindNoSuchLoan,
		KindInvalidCopyCount,
	}
}

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindDuplicateBook:
		return "DuplicateBook"
	case KindDuplicatePatron:
		return "DuplicatePatron"
	case KindBookNotFound:
		return "BookNotFound"
	case KindPatronNotFound:
		return "PatronNotFound"
	case KindNoCopiesAvailable:
		return "NoCopiesAvailable"
	case KindOverReturn:
		return "OverReturn"
	case KindDuplicateLoan:
		return "DuplicateLoan"
	case KindNoSuchLoan:
		return "NoSuchLoan"
	case KindInvalidCopyCount:
		return "InvalidCopyCount"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinel errors, one per Kind, for use with errors.Is.
var (
	ErrDuplicateBook     = errors.New("a book with this catalog key is already registered")
	ErrDuplicatePatron   = errors.New("a patron with this key is already registered")
	ErrBookNotFound      = errors.New("book not found")
	ErrPatronNotFound    = errors.New("patron not found")
	ErrNoCopiesAvailable = errors.New("no copies available")
	ErrOverReturn        = errors.New("all copies are already in the library")
	ErrDuplicateLoan     = errors.New("patron already has this book on loan")
	ErrNoSuchLoan        = errors.New("patron does not have this book on loan")
	ErrInvalidCopyCount  = errors.New("copy count must not be negative")

	// ErrConsistencyFault marks a failure that left book and patron state out of sync.
	ErrConsistencyFault = errors.New("consistency fault")
)

var sentinels = map[Kind]error{
	KindDuplicateBook:     ErrDuplicateBook,
	KindDuplicatePatron:   ErrDuplicatePatron,
	KindBookNotFound:      ErrBookNotFound,
	KindPatronNotFound:    ErrPatronNotFound,
	KindNoCopiesAvailable: ErrNoCopiesAvailable,
	KindOverReturn:        ErrOverReturn,
	KindDuplicateLoan:     ErrDuplicateLoan,
	KindNoSuchLoan:        ErrNoSuchLoan,
	KindInvalidCopyCount:  ErrInvalidCopyCount,
}

// Severity classifies how bad an Error is.
type Severity string

// Severities of lending errors.
const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Error is the single error type produced by the lending domain.
//
// Only construct it with NewError or AsConsistencyFault.
type Error struct {
	Kind      Kind
	BookKey   BookKeyString
	PatronKey PatronKeyString
	fault     bool
}

// NewError creates an Error of the given kind for the given keys (either may be empty).
func NewError(kind Kind, bookKey BookKeyString, patronKey PatronKeyString) *Error {
	return &Error{
		Kind:      kind,
		BookKey:   bookKey,
		PatronKey: patronKey,
	}
}

// AsConsistencyFault returns a copy of e that also matches ErrConsistencyFault.
func AsConsistencyFault(e *Error) *Error {
	c := *e
	c.fault = true

	return &c
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Kind.String()
	if sentinel, ok := sentinels[e.Kind]; ok {
		msg = sentinel.Error()
	}

	if e.PatronKey != "" {
		msg = fmt.Sprintf("%s (patron %q)", msg, e.PatronKey)
	}

	if e.BookKey != "" {
		msg = fmt.Sprintf("%s (book %q)", msg, e.BookKey)
	}

	if e.fault {
		msg = ErrConsistencyFault.Error() + ": " + msg
	}

	return msg
}

// Is makes errors.Is match the sentinel of the Kind and ErrConsistencyFault for faults.
func (e *Error) Is(target error) bool {
	if e.fault && target == ErrConsistencyFault {
		return true
	}

	return sentinels[e.Kind] == target
}

// IsConsistencyFault reports whether the error left the library in an inconsistent state.
func (e *Error) IsConsistencyFault() bool {
	return e.fault
}

// Severity reports critical for consistency faults and warning for everything else.
func (e *Error) Severity() Severity {
	if e.fault {
		return SeverityCritical
	}

	return SeverityWarning
}

// KindOf extracts the Kind of a lending error anywhere in the chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}

// IsConsistencyFault reports whether err is (or wraps) a consistency fault.
func IsConsistencyFault(err error) bool {
	return errors.Is(err, ErrConsistencyFault)
}
