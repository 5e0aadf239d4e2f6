package dispatch

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/born-ml/dispatch/internal/scalar"
)

type legacyProfile struct {
	base        *Base
	extra       []scalar.ScalarType
	replacement string
}

// legacyProfiles is closed; new names are not added.
var legacyProfiles = map[string]legacyProfile{
	"AllTypesAndHalf":           {BaseAll, []scalar.ScalarType{scalar.Half}, "AllTypes(scalar.Half)"},
	"AllTypesAndHalfAndComplex": {BaseAllAndComplex, []scalar.ScalarType{scalar.Half}, "AllTypesAndComplex(scalar.Half)"},
}

var warned sync.Map

func warnDeprecated(name, replacement string) {
	if _, loaded := warned.LoadOrStore(name, struct{}{}); !loaded {
		slog.Warn("dispatch: deprecated profile", "profile", name, "use", replacement)
	}
}

// lookupLegacy finds a legacy profile by name, ignoring case, and returns
// its canonical name.
func lookupLegacy(name string) (string, legacyProfile, bool) {
	if l, ok := legacyProfiles[name]; ok {
		return name, l, true
	}
	for canon, l := range legacyProfiles {
		if strings.EqualFold(canon, name) {
			return canon, l, true
		}
	}
	return "", legacyProfile{}, false
}

// Legacy returns the replacement for a legacy profile name, ignoring case.
func Legacy(name string) (replacement string, ok bool) {
	_, l, ok := lookupLegacy(name)
	return l.replacement, ok
}

// AllTypesAndHalf returns AllTypes plus Half.
//
// Deprecated: use AllTypes(scalar.Half).
func AllTypesAndHalf() (*Profile, error) {
	warnDeprecated("AllTypesAndHalf", legacyProfiles["AllTypesAndHalf"].replacement)
	return AllTypes(scalar.Half)
}

// AllTypesAndHalfAndComplex returns AllTypesAndComplex plus Half.
//
// Deprecated: use AllTypesAndComplex(scalar.Half).
func AllTypesAndHalfAndComplex() (*Profile, error) {
	warnDeprecated("AllTypesAndHalfAndComplex", legacyProfiles["AllTypesAndHalfAndComplex"].replacement)
	return AllTypesAndComplex(scalar.Half)
}

// TypeProperties pairs a backend name with a scalar type.
//
// Deprecated: pass a scalar.ScalarType to Dispatch instead.
type TypeProperties struct {
	Backend string
	Type    scalar.ScalarType
}

// ScalarType returns the described scalar type.
func (p TypeProperties) ScalarType() scalar.ScalarType {
	return p.Type
}

// ScalarTypeOf unwraps legacy type properties.
//
// Deprecated: pass a scalar.ScalarType to Dispatch instead.
func ScalarTypeOf(p TypeProperties) scalar.ScalarType {
	warnDeprecated("TypeProperties", "scalar.ScalarType")
	return p.Type
}
