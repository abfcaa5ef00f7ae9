// Package apperr defines the error taxonomy shared by repositories, services and transports.
//
// Lower layers wrap one of the sentinels with fmt.Errorf("...: %w", ...); transports
// classify with errors.Is and translate into their own status codes.
package apperr

import "errors"

var (
	// ErrNotFound reports an absent entity.
	ErrNotFound = errors.New("not found")
	// ErrForbidden reports an authenticated caller acting on a resource it does not own.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthenticated reports a missing, invalid or unresolvable credential.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrConflict reports a unique constraint violation.
	ErrConflict = errors.New("conflict")
	// ErrInvalidArgument reports a request that failed validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInternal reports a store or transport failure.
	ErrInternal = errors.New("internal error")
)

// Kind returns the sentinel err wraps, falling back to ErrInternal.
func Kind(err error) error {
	for _, kind := range []error{ErrNotFound, ErrForbidden, ErrUnauthenticated, ErrConflict, ErrInvalidArgument} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return ErrInternal
}
