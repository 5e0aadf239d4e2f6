package dispatch

import (
	"errors"
	"fmt"

	"github.com/born-ml/dispatch/internal/scalar"
)

// Common errors.
var (
	ErrUnsupportedType       = errors.New("unsupported scalar type")
	ErrDuplicateTag          = errors.New("scalar type already in profile")
	ErrTooManyTags           = errors.New("too many extra scalar types")
	ErrInvalidTag            = errors.New("invalid scalar type")
	ErrUnknownProfile        = errors.New("unknown profile")
	ErrMissingInstantiation  = errors.New("body has no instantiation for bound scalar type")
	ErrUnsupportedExtensions = errors.New("profile does not accept extra scalar types")
)

// UnsupportedTypeError is returned when a scalar type has no binding in the
// active profile or the platform cannot run it.
type UnsupportedTypeError struct {
	Op   string // Operation name given at the call site.
	Type string // Display name of the rejected scalar type.
}

// Error implements the error interface.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s not implemented for '%s'", e.Op, e.Type)
}

// Is matches ErrUnsupportedType.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// Report builds the error for a rejected scalar type.
func Report(op, typeName string) error {
	return &UnsupportedTypeError{Op: op, Type: typeName}
}

func reportTag(op string, t scalar.ScalarType) error {
	return Report(op, scalar.DisplayName(t))
}

// ProfileError describes a profile that could not be built.
type ProfileError struct {
	Profile string            // Base profile name.
	Tag     scalar.ScalarType // Offending scalar type, if any.
	Err     error             // One of the Err* sentinels.
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if errors.Is(e.Err, ErrTooManyTags) || errors.Is(e.Err, ErrUnknownProfile) || errors.Is(e.Err, ErrUnsupportedExtensions) {
		return fmt.Sprintf("profile %s: %v", e.Profile, e.Err)
	}
	return fmt.Sprintf("profile %s: %v: %s", e.Profile, e.Err, e.Tag)
}

// Unwrap returns the underlying sentinel.
func (e *ProfileError) Unwrap() error {
	return e.Err
}
