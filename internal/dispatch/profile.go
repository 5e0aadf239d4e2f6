package dispatch

import (
	"math/bits"
	"strconv"
	"strings"

	"github.com/born-ml/dispatch/internal/scalar"
)

// MaxExtraTags is the number of scalar types a caller may add to a base set.
const MaxExtraTags = 3

// Set is a bitmask over scalar type ordinals.
type Set uint32

// SetOf returns the set holding tags. Invalid tags are ignored.
func SetOf(tags ...scalar.ScalarType) Set {
	var s Set
	for _, t := range tags {
		s = s.With(t)
	}
	return s
}

// Has reports whether t is in s.
func (s Set) Has(t scalar.ScalarType) bool {
	return t.Valid() && s&(1<<t) != 0
}

// With returns s plus t.
func (s Set) With(t scalar.ScalarType) Set {
	if !t.Valid() {
		return s
	}
	return s | 1<<t
}

// Len returns the number of tags in s.
func (s Set) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Base is a named base set of scalar types, in case order.
type Base struct {
	name string
	tags []scalar.ScalarType
	set  Set
}

func newBase(name string, tags ...scalar.ScalarType) *Base {
	return &Base{name: name, tags: tags, set: SetOf(tags...)}
}

// Name returns the base set name, e.g. "FloatingTypes".
func (b *Base) Name() string { return b.name }

// Tags returns the base tags in case order.
func (b *Base) Tags() []scalar.ScalarType {
	return append([]scalar.ScalarType(nil), b.tags...)
}

// Has reports whether t is one of the base tags.
func (b *Base) Has(t scalar.ScalarType) bool { return b.set.Has(t) }

var allTypes = []scalar.ScalarType{
	scalar.Byte, scalar.Char, scalar.Double, scalar.Float,
	scalar.Int, scalar.Long, scalar.Short,
}

// Base sets.
var (
	BaseFloating           = newBase("FloatingTypes", scalar.Double, scalar.Float)
	BaseFloatingAndHalf    = newBase("FloatingTypesAndHalf", scalar.Double, scalar.Float, scalar.Half)
	BaseIntegral           = newBase("IntegralTypes", scalar.Byte, scalar.Char, scalar.Int, scalar.Long, scalar.Short)
	BaseAll                = newBase("AllTypes", allTypes...)
	BaseComplex            = newBase("ComplexTypes", scalar.ComplexFloat, scalar.ComplexDouble)
	BaseFloatingAndComplex = newBase("FloatingAndComplexTypes", scalar.Double, scalar.Float, scalar.ComplexDouble, scalar.ComplexFloat)
	BaseAllAndComplex      = newBase("AllTypesAndComplex", append(append([]scalar.ScalarType(nil), allTypes...), scalar.ComplexFloat, scalar.ComplexDouble)...)
)

// Profile is an ordered, duplicate-free set of scalar type bindings.
// A Profile is immutable; Extend returns a new one.
type Profile struct {
	name     string
	base     *Base
	extras   []scalar.ScalarType
	bindings []scalar.Representation
	set      Set
}

// Build returns base extended with up to MaxExtraTags extra scalar types.
// An extra that is invalid, already in base, or repeated fails the build.
func Build(base *Base, extra ...scalar.ScalarType) (*Profile, error) {
	if len(extra) > MaxExtraTags {
		return nil, &ProfileError{Profile: base.name, Err: ErrTooManyTags}
	}

	p := &Profile{
		base:     base,
		extras:   append([]scalar.ScalarType(nil), extra...),
		bindings: make([]scalar.Representation, 0, len(base.tags)+len(extra)),
		set:      base.set,
	}
	for _, t := range base.tags {
		p.bindings = append(p.bindings, scalar.RepresentationOf(t))
	}
	for _, t := range extra {
		if !t.Valid() {
			return nil, &ProfileError{Profile: base.name, Tag: t, Err: ErrInvalidTag}
		}
		if p.set.Has(t) {
			return nil, &ProfileError{Profile: base.name, Tag: t, Err: ErrDuplicateTag}
		}
		p.set = p.set.With(t)
		p.bindings = append(p.bindings, scalar.RepresentationOf(t))
	}
	p.name = profileName(base.name, extra)

	return p, nil
}

// MustBuild is like Build but panics on error. It is meant for
// package-level profiles.
func MustBuild(base *Base, extra ...scalar.ScalarType) *Profile {
	return Must(Build(base, extra...))
}

// Must panics if err is non-nil and returns p otherwise.
func Must(p *Profile, err error) *Profile {
	if err != nil {
		panic("dispatch: " + err.Error())
	}
	return p
}

func profileName(base string, extra []scalar.ScalarType) string {
	if len(extra) == 0 {
		return base
	}
	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteString("And")
	if len(extra) > 1 {
		sb.WriteString(strconv.Itoa(len(extra)))
	}
	sb.WriteByte('(')
	for i, t := range extra {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// FloatingTypes returns Double and Float plus extra.
func FloatingTypes(extra ...scalar.ScalarType) (*Profile, error) {
	return Build(BaseFloating, extra...)
}

// FloatingTypesAndHalf returns Double, Float and Half plus extra.
func FloatingTypesAndHalf(extra ...scalar.ScalarType) (*Profile, error) {
	return Build(BaseFloatingAndHalf, extra...)
}

// IntegralTypes returns Byte, Char, Int, Long and Short plus extra.
func IntegralTypes(extra ...scalar.ScalarType) (*Profile, error) {
	return Build(BaseIntegral, extra...)
}

// AllTypes returns the integral and floating types plus extra.
// Bool, Half, BFloat16 and the complex types are not included.
func AllTypes(extra ...scalar.ScalarType) (*Profile, error) {
	return Build(BaseAll, extra...)
}

// ComplexTypes returns ComplexFloat and ComplexDouble plus extra.
func ComplexTypes(extra ...scalar.ScalarType) (*Profile, error) {
	return Build(BaseComplex, extra...)
}

// FloatingAndComplexTypes returns Double, Float, ComplexDouble and
// ComplexFloat plus extra.
func FloatingAndComplexTypes(extra ...scalar.ScalarType) (*Profile, error) {
	return Build(BaseFloatingAndComplex, extra...)
}

// AllTypesAndComplex returns AllTypes, ComplexFloat and ComplexDouble plus extra.
func AllTypesAndComplex(extra ...scalar.ScalarType) (*Profile, error) {
	return Build(BaseAllAndComplex, extra...)
}

// Profiles over the unextended base sets.
var (
	FloatingTypesProfile           = MustBuild(BaseFloating)
	FloatingTypesAndHalfProfile    = MustBuild(BaseFloatingAndHalf)
	IntegralTypesProfile           = MustBuild(BaseIntegral)
	AllTypesProfile                = MustBuild(BaseAll)
	ComplexTypesProfile            = MustBuild(BaseComplex)
	FloatingAndComplexTypesProfile = MustBuild(BaseFloatingAndComplex)
	AllTypesAndComplexProfile      = MustBuild(BaseAllAndComplex)
)

// Name returns the profile name, e.g. "AllTypesAnd2(Half, Bool)".
func (p *Profile) Name() string { return p.name }

// String implements fmt.Stringer.
func (p *Profile) String() string { return p.name }

// Base returns the base set the profile was built from.
func (p *Profile) Base() *Base { return p.base }

// Extras returns the caller-supplied extra tags.
func (p *Profile) Extras() []scalar.ScalarType {
	return append([]scalar.ScalarType(nil), p.extras...)
}

// Set returns the bound tags as a bitmask.
func (p *Profile) Set() Set { return p.set }

// Len returns the number of bindings.
func (p *Profile) Len() int { return len(p.bindings) }

// Bindings returns the bindings in case order: base tags, then extras.
func (p *Profile) Bindings() []scalar.Representation {
	return append([]scalar.Representation(nil), p.bindings...)
}

// Tags returns the bound tags in case order.
func (p *Profile) Tags() []scalar.ScalarType {
	tags := make([]scalar.ScalarType, len(p.bindings))
	for i, b := range p.bindings {
		tags[i] = b.Tag
	}
	return tags
}

// Contains reports whether t is bound.
func (p *Profile) Contains(t scalar.ScalarType) bool {
	return p.set.Has(t)
}

// Lookup returns the representation bound to t.
func (p *Profile) Lookup(t scalar.ScalarType) (scalar.Representation, bool) {
	if !p.set.Has(t) {
		return scalar.Representation{}, false
	}
	return scalar.RepresentationOf(t), true
}

// Extend returns a copy of p with t appended. p itself is unchanged.
func (p *Profile) Extend(t scalar.ScalarType) (*Profile, error) {
	extra := append(p.Extras(), t)
	return Build(p.base, extra...)
}
