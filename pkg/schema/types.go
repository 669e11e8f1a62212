// Package schema decodes the declarative per-trait layer table into a typed,
// validated representation. Each entry maps one resolved trait onto the
// visual content of one named output image; entries sharing an image name
// stack in declaration order.
package schema

// ImageKind declares how a matched content string must be interpreted by the
// downstream compose step.
type ImageKind int

const (
	ColorCode ImageKind = iota
	URI
	RawImage
)

// Keyword returns the wire keyword for the kind.
func (k ImageKind) Keyword() string {
	switch k {
	case ColorCode:
		return "color"
	case URI:
		return "uri"
	case RawImage:
		return "image"
	}
	return "unknown"
}

// MatchPattern selects the strategy used to turn a resolved trait value into
// content: table lookup (Options, Range) or direct passthrough (Raw).
type MatchPattern int

const (
	Options MatchPattern = iota
	Range
	Raw
)

// Keyword returns the wire keyword for the pattern.
func (p MatchPattern) Keyword() string {
	switch p {
	case Options:
		return "options"
	case Range:
		return "range"
	case Raw:
		return "raw"
	}
	return "unknown"
}

// KeyKind discriminates the MatchKey union.
type KeyKind int

const (
	KeyExactString KeyKind = iota
	KeyExactNumber
	KeyNumericRange
	KeyWildcard
)

// MatchKey is one candidate key of a match table: an exact string, an exact
// number, an inclusive numeric range, or the wildcard fallback.
type MatchKey struct {
	Kind  KeyKind
	Str   string
	Num   uint64
	Start uint64
	End   uint64
}

// ExactString builds a key matching a text trait value exactly.
func ExactString(s string) MatchKey {
	return MatchKey{Kind: KeyExactString, Str: s}
}

// ExactNumber builds a key matching a numeric trait value exactly.
func ExactNumber(n uint64) MatchKey {
	return MatchKey{Kind: KeyExactNumber, Num: n}
}

// NumericRange builds a key matching numbers in [start, end], both ends
// inclusive.
func NumericRange(start, end uint64) MatchKey {
	return MatchKey{Kind: KeyNumericRange, Start: start, End: end}
}

// Wildcard builds the catch-all key. It matches any resolved value and is
// conventionally declared last as the fallback.
func Wildcard() MatchKey {
	return MatchKey{Kind: KeyWildcard}
}

// MatchRule pairs a key with the content string it selects. Rules are kept
// as an ordered slice, never a map: when several keys could match the same
// value, the first declared rule wins.
type MatchRule struct {
	Key     MatchKey
	Content string
}

// Entry is one decoded, validated schema row. MatchTable is nil when the row
// omitted it (the Raw pattern never consults it).
type Entry struct {
	ImageName   string
	Kind        ImageKind
	SourceTrait string
	Pattern     MatchPattern
	MatchTable  []MatchRule
}
