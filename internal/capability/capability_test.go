package capability

import (
	"testing"

	"github.com/born-ml/dispatch/internal/scalar"
	"github.com/stretchr/testify/assert"
)

func TestSupports(t *testing.T) {
	base := Baseline()
	for _, tag := range scalar.All() {
		if tag == scalar.BFloat16 {
			assert.False(t, base.Supports(tag))
			continue
		}
		assert.True(t, base.Supports(tag), tag.String())
	}

	assert.True(t, All().Supports(scalar.BFloat16))
}

func TestDetectOverride(t *testing.T) {
	t.Setenv("BORN_BFLOAT16", "1")
	p := Detect()
	assert.True(t, p.BFloat16)
	assert.Equal(t, "BORN_BFLOAT16", p.Source)

	t.Setenv("BORN_BFLOAT16", "0")
	p = Detect()
	assert.False(t, p.BFloat16)
	assert.Equal(t, "BORN_BFLOAT16", p.Source)
}

func TestDefaultIsStable(t *testing.T) {
	assert.Equal(t, Default(), Default())
}
