// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package dispatch_test

import (
	"testing"

	"github.com/born-ml/dispatch/dispatch"
	"github.com/born-ml/dispatch/scalar"
	"github.com/stretchr/testify/assert"
)

func TestLegacyForwarding(t *testing.T) {
	props := dispatch.TypeProperties{Backend: "CPU", Type: scalar.Half}
	//nolint:staticcheck // exercising the deprecated names
	assert.Equal(t, scalar.Half, dispatch.ScalarTypeOf(props))

	repl, ok := dispatch.Legacy("AllTypesAndHalf")
	assert.True(t, ok)
	assert.Equal(t, "AllTypes(scalar.Half)", repl)

	_, ok = dispatch.Legacy("FloatingTypes")
	assert.False(t, ok)
}
