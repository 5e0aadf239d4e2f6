// Package scalar defines the closed set of tensor element types and their
// in-memory representations.
package scalar

import "fmt"

// ScalarType identifies the element type of a tensor at runtime.
type ScalarType uint8

// Supported scalar types. The order is fixed; ordinals index registry tables.
const (
	Byte ScalarType = iota
	Char
	Short
	Int
	Long
	Half
	Float
	Double
	ComplexHalf
	ComplexFloat
	ComplexDouble
	Bool
	QInt8
	QUInt8
	QInt32
	BFloat16

	// NumTypes is the number of scalar types.
	NumTypes = int(BFloat16) + 1
)

// Category groups scalar types by arithmetic kind.
type Category uint8

// Scalar type categories.
const (
	SignedInt Category = iota
	UnsignedInt
	Floating
	Complex
	Quantized
	Boolean
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case SignedInt:
		return "signed-int"
	case UnsignedInt:
		return "unsigned-int"
	case Floating:
		return "floating"
	case Complex:
		return "complex"
	case Quantized:
		return "quantized"
	case Boolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Valid reports whether t is one of the defined scalar types.
func (t ScalarType) Valid() bool {
	return int(t) < NumTypes
}

// Size returns the byte width of one element.
func (t ScalarType) Size() int {
	return RepresentationOf(t).Size
}

// Category returns the arithmetic category of t.
func (t ScalarType) Category() Category {
	return RepresentationOf(t).Category
}

// String returns the canonical display name, e.g. "ComplexFloat".
func (t ScalarType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ScalarType(%d)", uint8(t))
	}
	return registry[t].name
}

// IsFloating reports whether t is a real floating-point type.
func (t ScalarType) IsFloating() bool { return t.Valid() && t.Category() == Floating }

// IsComplex reports whether t is a complex type.
func (t ScalarType) IsComplex() bool { return t.Valid() && t.Category() == Complex }

// IsIntegral reports whether t is a signed or unsigned integer type.
// Bool is not integral.
func (t ScalarType) IsIntegral() bool {
	if !t.Valid() {
		return false
	}
	c := t.Category()
	return c == SignedInt || c == UnsignedInt
}

// IsQuantized reports whether t is a quantized integer type.
func (t ScalarType) IsQuantized() bool { return t.Valid() && t.Category() == Quantized }

// All returns every scalar type in ordinal order.
func All() []ScalarType {
	all := make([]ScalarType, NumTypes)
	for i := range all {
		all[i] = ScalarType(i)
	}
	return all
}
