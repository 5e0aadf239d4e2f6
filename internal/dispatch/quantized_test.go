package dispatch

import (
	"testing"
	"unsafe"

	"github.com/born-ml/dispatch/internal/capability"
	"github.com/born-ml/dispatch/internal/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type qview struct {
	Tag, UnderlyingTag   scalar.ScalarType
	QSize, USize         uintptr
	First                int64
	UnderlyingRepr, Repr scalar.Representation
}

func inspect[Q scalar.QuantizedInt[U], U scalar.Integer](b QuantizedBinding[Q, U], data []byte) qview {
	var q Q
	var u U
	return qview{
		Tag:            b.Tag,
		UnderlyingTag:  b.UnderlyingTag,
		QSize:          unsafe.Sizeof(q),
		USize:          unsafe.Sizeof(u),
		First:          int64(b.View(data)[0].Underlying()),
		UnderlyingRepr: b.UnderlyingRepr,
		Repr:           b.Repr,
	}
}

var inspectBody = NewQuantizedBody(
	QCase(inspect[scalar.Qint8, int8]),
	QCase(inspect[scalar.Quint8, uint8]),
	QCase(inspect[scalar.Qint32, int32]),
)

func TestQuantizedDispatch(t *testing.T) {
	data := []byte{0xfe, 0, 0, 0}
	tests := []struct {
		tag, under scalar.ScalarType
		size       uintptr
		first      int64
	}{
		{scalar.QInt8, scalar.Char, 1, -2},
		{scalar.QUInt8, scalar.Byte, 1, 254},
		{scalar.QInt32, scalar.Int, 4, 254},
	}
	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			got, err := DispatchQuantized(tt.tag, "quantized_sum", QuantizedTypesProfile, inspectBody, data)
			require.NoError(t, err)
			assert.Equal(t, tt.tag, got.Tag)
			assert.Equal(t, tt.under, got.UnderlyingTag)
			assert.Equal(t, tt.size, got.QSize)
			assert.Equal(t, got.QSize, got.USize)
			assert.Equal(t, tt.first, got.First)
			assert.Equal(t, scalar.RepresentationOf(tt.under), got.UnderlyingRepr)
			assert.Equal(t, scalar.Quantized, got.Repr.Category)
		})
	}
}

func TestQuantizedQInt8Underlying(t *testing.T) {
	got, err := DispatchQuantized(scalar.QInt8, "dequantize", QuantizedTypesProfile, inspectBody, []byte{7})
	require.NoError(t, err)
	assert.Equal(t, scalar.Char, got.UnderlyingTag)
	assert.Equal(t, 1, got.UnderlyingRepr.Size)
	assert.Equal(t, scalar.SignedInt, got.UnderlyingRepr.Category)
}

func TestQuantizedUnsupported(t *testing.T) {
	for _, tag := range []scalar.ScalarType{scalar.Char, scalar.Float, scalar.Bool} {
		_, err := DispatchQuantizedOn(capability.All(), tag, "dequantize", QuantizedTypesProfile, inspectBody, []byte{0})
		assert.EqualError(t, err, "dequantize not implemented for '"+tag.String()+"'")
	}
}

func TestQuantizedProfile(t *testing.T) {
	p := QuantizedTypes()
	assert.Equal(t, "QIntTypes", p.Name())
	pairs := p.Pairs()
	require.Len(t, pairs, 3)
	for _, pair := range pairs {
		assert.Equal(t, pair.Quantized.Size, pair.Underlying.Size, pair.Quantized.Tag.String())
	}

	pair, ok := p.Lookup(scalar.QUInt8)
	require.True(t, ok)
	assert.Equal(t, scalar.Byte, pair.Underlying.Tag)

	_, ok = p.Lookup(scalar.Byte)
	assert.False(t, ok)
	assert.NoError(t, inspectBody.Covers(p))

	partial := NewQuantizedBody(QCase(inspect[scalar.Qint8, int8]))
	assert.ErrorIs(t, partial.Covers(p), ErrMissingInstantiation)
	assert.Panics(t, func() {
		_, _ = DispatchQuantized(scalar.QInt32, "dequantize", p, partial, []byte{0, 0, 0, 0})
	})
}

func TestQuantizedBindingStorage(t *testing.T) {
	b := QuantizedBinding[scalar.Quint8, uint8]{Tag: scalar.QUInt8, UnderlyingTag: scalar.Byte}
	data := []byte{1, 2, 3}
	s := b.Storage(data)
	s[0] = 9
	assert.Equal(t, scalar.Quint8(9), b.View(data)[0])
}
