package scalar

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarTypeSize(t *testing.T) {
	tests := []struct {
		tag  ScalarType
		size int
		name string
		cat  Category
	}{
		{Byte, 1, "Byte", UnsignedInt},
		{Char, 1, "Char", SignedInt},
		{Short, 2, "Short", SignedInt},
		{Int, 4, "Int", SignedInt},
		{Long, 8, "Long", SignedInt},
		{Half, 2, "Half", Floating},
		{Float, 4, "Float", Floating},
		{Double, 8, "Double", Floating},
		{ComplexHalf, 4, "ComplexHalf", Complex},
		{ComplexFloat, 8, "ComplexFloat", Complex},
		{ComplexDouble, 16, "ComplexDouble", Complex},
		{Bool, 1, "Bool", Boolean},
		{QInt8, 1, "QInt8", Quantized},
		{QUInt8, 1, "QUInt8", Quantized},
		{QInt32, 4, "QInt32", Quantized},
		{BFloat16, 2, "BFloat16", Floating},
	}
	require.Len(t, tests, NumTypes)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.size, tt.tag.Size())
			assert.Equal(t, tt.name, tt.tag.String())
			assert.Equal(t, tt.name, DisplayName(tt.tag))
			assert.Equal(t, tt.cat, tt.tag.Category())

			rep := RepresentationOf(tt.tag)
			assert.Equal(t, tt.tag, rep.Tag)
			assert.Equal(t, tt.size, rep.Size)
		})
	}
}

func checkWidth[T Scalar](t *testing.T) {
	t.Helper()
	var zero T
	tag := TagOf[T]()
	assert.Equal(t, tag.Size(), int(unsafe.Sizeof(zero)), "width of %s", tag)
}

func TestTagOfMatchesRegistry(t *testing.T) {
	checkWidth[uint8](t)
	checkWidth[int8](t)
	checkWidth[int16](t)
	checkWidth[int32](t)
	checkWidth[int64](t)
	checkWidth[Float16](t)
	checkWidth[float32](t)
	checkWidth[float64](t)
	checkWidth[Complex32](t)
	checkWidth[complex64](t)
	checkWidth[complex128](t)
	checkWidth[bool](t)
	checkWidth[Qint8](t)
	checkWidth[Quint8](t)
	checkWidth[Qint32](t)
	checkWidth[BrainFloat16](t)

	assert.Equal(t, Double, TagOf[float64]())
	assert.Equal(t, Float, TagOf[float32]())
	assert.Equal(t, Half, TagOf[Float16]())
	assert.Equal(t, BFloat16, TagOf[BrainFloat16]())
}

func TestUnderlyingOf(t *testing.T) {
	tests := []struct {
		tag, want ScalarType
	}{
		{QInt8, Char},
		{QUInt8, Byte},
		{QInt32, Int},
	}
	for _, tt := range tests {
		got, ok := UnderlyingOf(tt.tag)
		require.True(t, ok, tt.tag.String())
		assert.Equal(t, tt.want, got)
		assert.Equal(t, tt.want.Size(), tt.tag.Size(), "storage width of %s", tt.tag)
	}

	_, ok := UnderlyingOf(Float)
	assert.False(t, ok)
}

func TestInvalidScalarType(t *testing.T) {
	bad := ScalarType(NumTypes)
	assert.False(t, bad.Valid())
	assert.Equal(t, "ScalarType(16)", bad.String())
	assert.Equal(t, 0, RepresentationOf(bad).Size)
	assert.False(t, bad.IsFloating())
	assert.False(t, bad.IsIntegral())
}

func TestCategoryPredicates(t *testing.T) {
	assert.True(t, Float.IsFloating())
	assert.True(t, BFloat16.IsFloating())
	assert.False(t, ComplexFloat.IsFloating())
	assert.True(t, ComplexHalf.IsComplex())
	assert.True(t, Byte.IsIntegral())
	assert.False(t, Bool.IsIntegral())
	assert.True(t, QUInt8.IsQuantized())
	assert.Equal(t, "quantized", Quantized.String())
}

func TestParse(t *testing.T) {
	got, err := Parse("complexfloat")
	require.NoError(t, err)
	assert.Equal(t, ComplexFloat, got)

	got, err = Parse("BFloat16")
	require.NoError(t, err)
	assert.Equal(t, BFloat16, got)

	_, err = Parse("Doubel")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `did you mean "Double"?`)

	_, err = Parse("zzzzzzzzzzzz")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestAll(t *testing.T) {
	all := All()
	require.Len(t, all, NumTypes)
	for i, tag := range all {
		assert.Equal(t, ScalarType(i), tag)
	}
}

func TestBFloat16Conversion(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{1.0, 1.0},
		{-2.5, -2.5},
		{0, 0},
		{3.140625, 3.140625},
		// 1 + 2^-8 is a tie between 1 and 1 + 2^-7; even mantissa wins.
		{1.00390625, 1.0},
		// 1 + 3*2^-8 is a tie between 1 + 2^-7 and 1 + 2^-6; even mantissa wins.
		{1.01171875, 1.015625},
	}
	for _, tt := range tests {
		got := BFloat16FromFloat32(tt.in).Float32()
		assert.Equal(t, tt.want, got, "bf16(%v)", tt.in)
	}

	nan := BFloat16FromFloat32(float32(math.NaN()))
	assert.True(t, math.IsNaN(float64(nan.Float32())))
}

func TestHalfConversion(t *testing.T) {
	assert.Equal(t, float32(0.5), HalfFromFloat32(0.5).Float32())
	assert.Equal(t, float32(-4), HalfFromFloat32(-4).Float32())

	c := Complex32FromComplex64(complex(1.5, -2))
	assert.Equal(t, complex64(complex(1.5, -2)), c.Complex64())
}

func TestQuantizedUnderlying(t *testing.T) {
	assert.Equal(t, int8(-3), Qint8(-3).Underlying())
	assert.Equal(t, uint8(200), Quint8(200).Underlying())
	assert.Equal(t, int32(1<<20), Qint32(1<<20).Underlying())
}
