package dispatch

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/born-ml/dispatch/internal/scalar"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// catalog maps base set names to base sets in declaration order.
var catalog = func() *orderedmap.OrderedMap[string, *Base] {
	m := orderedmap.New[string, *Base]()
	for _, b := range []*Base{
		BaseFloating,
		BaseFloatingAndHalf,
		BaseIntegral,
		BaseAll,
		BaseComplex,
		BaseFloatingAndComplex,
		BaseAllAndComplex,
	} {
		m.Set(b.name, b)
	}
	return m
}()

// Bases returns every base set in declaration order.
func Bases() []*Base {
	bases := make([]*Base, 0, catalog.Len())
	for pair := catalog.Oldest(); pair != nil; pair = pair.Next() {
		bases = append(bases, pair.Value)
	}
	return bases
}

// LookupBase returns the base set called name, ignoring case.
func LookupBase(name string) (*Base, error) {
	if b, ok := catalog.Get(name); ok {
		return b, nil
	}
	for pair := catalog.Oldest(); pair != nil; pair = pair.Next() {
		if strings.EqualFold(pair.Key, name) {
			return pair.Value, nil
		}
	}

	err := &ProfileError{Profile: name, Err: ErrUnknownProfile}
	if s := suggest(name); s != "" {
		return nil, fmt.Errorf("%w, did you mean %q?", err, s)
	}
	return nil, err
}

// BuildNamed builds a profile from a base set name or a legacy profile name.
func BuildNamed(name string, extra ...scalar.ScalarType) (*Profile, error) {
	if canon, l, ok := lookupLegacy(name); ok {
		warnDeprecated(canon, l.replacement)
		if len(extra) > 0 {
			return nil, &ProfileError{Profile: name, Err: ErrUnsupportedExtensions}
		}
		return Build(l.base, l.extra...)
	}

	base, err := LookupBase(name)
	if err != nil {
		return nil, err
	}
	return Build(base, extra...)
}

func suggest(name string) string {
	best, bestDist := "", len(name)/2+1
	for pair := catalog.Oldest(); pair != nil; pair = pair.Next() {
		if d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(pair.Key)); d < bestDist {
			best, bestDist = pair.Key, d
		}
	}
	return best
}
