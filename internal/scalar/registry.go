package scalar

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/agnivade/levenshtein"
)

// Representation describes the in-memory type bound to a scalar type.
type Representation struct {
	Tag      ScalarType
	GoType   string // Go type name of the representation, e.g. "float32".
	Size     int    // Byte width of one element.
	Category Category
}

type entry struct {
	name       string
	goType     string
	size       int
	category   Category
	underlying ScalarType // Storage type of quantized entries.
}

// registry is indexed by ordinal and never mutated after init.
var registry = [NumTypes]entry{
	Byte:          {"Byte", "uint8", sizeOf[uint8](), UnsignedInt, Byte},
	Char:          {"Char", "int8", sizeOf[int8](), SignedInt, Char},
	Short:         {"Short", "int16", sizeOf[int16](), SignedInt, Short},
	Int:           {"Int", "int32", sizeOf[int32](), SignedInt, Int},
	Long:          {"Long", "int64", sizeOf[int64](), SignedInt, Long},
	Half:          {"Half", "scalar.Float16", sizeOf[Float16](), Floating, Half},
	Float:         {"Float", "float32", sizeOf[float32](), Floating, Float},
	Double:        {"Double", "float64", sizeOf[float64](), Floating, Double},
	ComplexHalf:   {"ComplexHalf", "scalar.Complex32", sizeOf[Complex32](), Complex, ComplexHalf},
	ComplexFloat:  {"ComplexFloat", "complex64", sizeOf[complex64](), Complex, ComplexFloat},
	ComplexDouble: {"ComplexDouble", "complex128", sizeOf[complex128](), Complex, ComplexDouble},
	Bool:          {"Bool", "bool", sizeOf[bool](), Boolean, Bool},
	QInt8:         {"QInt8", "scalar.Qint8", sizeOf[Qint8](), Quantized, Char},
	QUInt8:        {"QUInt8", "scalar.Quint8", sizeOf[Quint8](), Quantized, Byte},
	QInt32:        {"QInt32", "scalar.Qint32", sizeOf[Qint32](), Quantized, Int},
	BFloat16:      {"BFloat16", "scalar.BrainFloat16", sizeOf[BrainFloat16](), Floating, BFloat16},
}

func init() {
	for i, e := range registry {
		t := ScalarType(i)
		if t.IsQuantized() && registry[e.underlying].size != e.size {
			panic(fmt.Sprintf("scalar: %s is %d bytes but its storage type %s is %d bytes",
				e.name, e.size, registry[e.underlying].name, registry[e.underlying].size))
		}
	}
}

func sizeOf[T Scalar]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// RepresentationOf returns the representation bound to t.
// An invalid t yields the zero Representation with Tag set to t.
func RepresentationOf(t ScalarType) Representation {
	if !t.Valid() {
		return Representation{Tag: t}
	}
	e := registry[t]
	return Representation{Tag: t, GoType: e.goType, Size: e.size, Category: e.category}
}

// DisplayName returns the name used for t in diagnostics.
func DisplayName(t ScalarType) string {
	return t.String()
}

// UnderlyingOf returns the storage type of a quantized type.
func UnderlyingOf(t ScalarType) (ScalarType, bool) {
	if !t.IsQuantized() {
		return t, false
	}
	return registry[t].underlying, true
}

// Parse returns the scalar type with the given display name, ignoring case.
// The error suggests the closest name when there is one.
func Parse(name string) (ScalarType, error) {
	for i, e := range registry {
		if strings.EqualFold(e.name, name) {
			return ScalarType(i), nil
		}
	}

	best, bestDist := "", len(name)/2+1
	for _, e := range registry {
		if d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(e.name)); d < bestDist {
			best, bestDist = e.name, d
		}
	}
	if best != "" {
		return 0, fmt.Errorf("unknown scalar type %q, did you mean %q?", name, best)
	}
	return 0, fmt.Errorf("unknown scalar type %q", name)
}
