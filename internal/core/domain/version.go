package domain

import (
	"sort"

	"go.trai.ch/zerr"
)

// VersionPreference is the global tie-break direction when ordering a
// package's candidate versions.
type VersionPreference int

const (
	// PreferNewest orders candidates descending, newest first.
	PreferNewest VersionPreference = iota
	// PreferOldest orders candidates ascending, oldest first.
	PreferOldest
)

// String returns the configuration spelling of the preference.
func (p VersionPreference) String() string {
	if p == PreferOldest {
		return "oldest"
	}
	return "newest"
}

// ParseVersionPreference parses the configuration spelling. The empty
// string defaults to newest.
func ParseVersionPreference(s string) (VersionPreference, error) {
	switch s {
	case "", "newest":
		return PreferNewest, nil
	case "oldest":
		return PreferOldest, nil
	default:
		return PreferNewest, zerr.With(ErrInvalidPreference, "preference", s)
	}
}

// CompareVersions orders two version strings. Versions are split into
// alternating numeric and non-numeric segments; numeric segments
// compare numerically, everything else byte-wise, with a tilde segment
// sorting before the empty suffix so "1.0~beta" precedes "1.0".
// Returns -1, 0 or 1.
func CompareVersions(a, b string) int {
	for a != "" || b != "" {
		var sa, sb string
		var na, nb bool
		sa, a, na = nextSegment(a)
		sb, b, nb = nextSegment(b)

		if na && nb {
			if c := compareNumeric(sa, sb); c != 0 {
				return c
			}
			continue
		}
		if c := compareAlpha(sa, sb); c != 0 {
			return c
		}
	}
	return 0
}

// nextSegment splits off the leading run of digits or non-digits.
func nextSegment(s string) (seg, rest string, numeric bool) {
	if s == "" {
		return "", "", false
	}
	numeric = isDigit(s[0])
	i := 0
	for i < len(s) && isDigit(s[i]) == numeric {
		i++
	}
	return s[:i], s[i:], numeric
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func compareNumeric(a, b string) int {
	a = trimZeros(a)
	b = trimZeros(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return compareBytes(a, b)
}

func trimZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

// compareAlpha orders non-numeric segments. A segment starting with
// '~' sorts before everything, including the empty segment, which is
// how pre-release markers sort below their release.
func compareAlpha(a, b string) int {
	at := a != "" && a[0] == '~'
	bt := b != "" && b[0] == '~'
	if at != bt {
		if at {
			return -1
		}
		return 1
	}
	if (a == "") != (b == "") {
		if a == "" {
			return -1
		}
		return 1
	}
	return compareBytes(a, b)
}

func compareBytes(a, b string) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// SortVersions orders versions in place according to the preference:
// ascending for oldest, descending for newest. The sort is stable so
// equal versions keep their repository order.
func SortVersions(versions []string, pref VersionPreference) {
	sort.SliceStable(versions, func(i, j int) bool {
		c := CompareVersions(versions[i], versions[j])
		if pref == PreferOldest {
			return c < 0
		}
		return c > 0
	})
}
