package version

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pre-compiled pattern for the platform version grammar:
// numeric major.minor.patch with an optional qualifier token,
// e.g. "2.1.1.RELEASE", "1.2.3.M4", "2.0.0-RC1", "2.0.3".
var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)(?:[.-]([A-Za-z][A-Za-z-]*)(\d+)?)?$`)

// Qualifier ordering from least to most stable. A version without a
// qualifier sorts as a release.
var qualifierOrder = map[string]int{
	"M":              0,
	"RC":             1,
	"BUILD-SNAPSHOT": 2,
	"RELEASE":        3,
}

// Version is a structured platform version. Comparison is numeric on the
// major/minor/patch parts and qualifier-aware on the rest, so "1.10.0"
// correctly sorts above "1.5.0".
type Version struct {
	Major     int
	Minor     int
	Patch     int
	Qualifier Qualifier
}

// Qualifier is the trailing token of a version, e.g. "RELEASE" or "M4"
// (id "M", version 4). A version written without a qualifier has an empty
// ID and orders the same as a RELEASE.
type Qualifier struct {
	ID      string
	Version int
}

// ErrMalformed is returned by Parse when the input does not match the
// version grammar.
type ErrMalformed struct {
	Raw string
}

func (e ErrMalformed) Error() string {
	return fmt.Sprintf("malformed version '%s'", e.Raw)
}

// Parse parses a raw version string into a Version. It returns an
// ErrMalformed error when the string does not match the expected
// major.minor.patch[.QUALIFIER] grammar.
func Parse(raw string) (Version, error) {
	m := versionPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return Version{}, ErrMalformed{Raw: raw}
	}

	// The pattern guarantees the numeric groups parse.
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])

	var qualifier Qualifier
	if m[4] != "" {
		qualifier.ID = m[4]
		if m[5] != "" {
			qualifier.Version, _ = strconv.Atoi(m[5])
		}
	}

	return Version{Major: major, Minor: minor, Patch: patch, Qualifier: qualifier}, nil
}

// MustParse parses a raw version string and panics on malformed input.
// Intended for constants and tests.
func MustParse(raw string) Version {
	v, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare returns -1, 0 or 1 when v is ordered before, equal to or after
// other.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}
	return v.Qualifier.compare(other.Qualifier)
}

// AtLeast reports whether v is greater than or equal to min.
func (v Version) AtLeast(min Version) bool {
	return v.Compare(min) >= 0
}

// String renders the version back to its canonical form.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Qualifier.ID != "" {
		s += "." + v.Qualifier.ID
		if v.Qualifier.Version > 0 {
			s += strconv.Itoa(v.Qualifier.Version)
		}
	}
	return s
}

// MarshalJSON renders the version as its canonical string form.
func (v Version) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON parses a version from its string form.
func (v *Version) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (q Qualifier) compare(other Qualifier) int {
	qID, otherID := q.normalizedID(), other.normalizedID()
	if qID != otherID {
		i, iKnown := qualifierOrder[qID]
		j, jKnown := qualifierOrder[otherID]
		switch {
		case iKnown && jKnown:
			return compareInt(i, j)
		case iKnown:
			return 1
		case jKnown:
			return -1
		default:
			return strings.Compare(qID, otherID)
		}
	}
	return compareInt(q.Version, other.Version)
}

func (q Qualifier) normalizedID() string {
	if q.ID == "" {
		return "RELEASE"
	}
	return q.ID
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
