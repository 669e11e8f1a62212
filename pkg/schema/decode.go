package schema

import (
	"encoding/json"
	"fmt"

	"github.com/sporeprotocol/layergen/pkg/codes"
)

// DecodeRows validates and normalizes raw schema rows into typed entries,
// preserving row order. Each row is a positional array:
//
//	[image_name, kind, source_trait, pattern, match_table?]
//
// where kind is "color" | "uri" | "image" and pattern is "options" | "range"
// | "raw". The optional match table is an array of [key, content] pairs; a
// key is a number, a string, ["*"] for the wildcard, or a two-number
// [start, end] range. Every violation carries its own codes.Code.
func DecodeRows(rows [][]json.RawMessage) ([]Entry, error) {
	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		entry, err := decodeRow(i, row)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func decodeRow(index int, row []json.RawMessage) (Entry, error) {
	if len(row) < 4 {
		return Entry{}, codes.Newf(codes.InsufficientElements, "schema: row %d: want at least 4 elements, got %d", index, len(row))
	}

	name, ok := asString(row[0])
	if !ok {
		return Entry{}, codes.Newf(codes.InvalidName, "schema: row %d: image name must be a string", index)
	}

	kindWord, ok := asString(row[1])
	if !ok {
		return Entry{}, codes.Newf(codes.InvalidType, "schema: row %d: image type must be a string", index)
	}
	var kind ImageKind
	switch kindWord {
	case "color":
		kind = ColorCode
	case "uri":
		kind = URI
	case "image":
		kind = RawImage
	default:
		return Entry{}, codes.Newf(codes.TypeMismatch, "schema: row %d: unrecognized image type %q", index, kindWord)
	}

	sourceTrait, ok := asString(row[2])
	if !ok {
		return Entry{}, codes.Newf(codes.InvalidTraitName, "schema: row %d: trait name must be a string", index)
	}

	patternWord, ok := asString(row[3])
	if !ok {
		return Entry{}, codes.Newf(codes.InvalidPattern, "schema: row %d: pattern must be a string", index)
	}
	var pattern MatchPattern
	switch {
	case patternWord == "options" && (kind == ColorCode || kind == URI):
		pattern = Options
	case patternWord == "range" && (kind == ColorCode || kind == URI):
		pattern = Range
	case patternWord == "raw" && (kind == RawImage || kind == URI):
		pattern = Raw
	default:
		return Entry{}, codes.Newf(codes.PatternMismatch, "schema: row %d: pattern %q is not valid for image type %q", index, patternWord, kindWord)
	}

	entry := Entry{
		ImageName:   name,
		Kind:        kind,
		SourceTrait: sourceTrait,
		Pattern:     pattern,
	}

	if len(row) > 4 {
		table, err := decodeMatchTable(index, row[4])
		if err != nil {
			return Entry{}, err
		}
		entry.MatchTable = table
	}
	return entry, nil
}

func decodeMatchTable(index int, raw json.RawMessage) ([]MatchRule, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, codes.Wrap(codes.InvalidArgs, fmt.Sprintf("schema: row %d: match table must be an array", index), err)
	}
	rules := make([]MatchRule, 0, len(items))
	for j, item := range items {
		rule, err := decodeMatchRule(index, j, item)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func decodeMatchRule(rowIndex, ruleIndex int, raw json.RawMessage) (MatchRule, error) {
	var pair []json.RawMessage
	if err := json.Unmarshal(raw, &pair); err != nil {
		return MatchRule{}, codes.Newf(codes.InvalidArgsElement, "schema: row %d: match table entry %d must be a [key, value] pair", rowIndex, ruleIndex)
	}
	if len(pair) < 2 {
		return MatchRule{}, codes.Newf(codes.InvalidArgsElement, "schema: row %d: match table entry %d must carry a key and a value", rowIndex, ruleIndex)
	}

	key, err := decodeMatchKey(rowIndex, ruleIndex, pair[0])
	if err != nil {
		return MatchRule{}, err
	}

	content, ok := asString(pair[1])
	if !ok {
		return MatchRule{}, codes.Newf(codes.InvalidArgsElement, "schema: row %d: match table entry %d: value must be a string", rowIndex, ruleIndex)
	}
	return MatchRule{Key: key, Content: content}, nil
}

func decodeMatchKey(rowIndex, ruleIndex int, raw json.RawMessage) (MatchKey, error) {
	if n, ok := asUint64(raw); ok {
		return ExactNumber(n), nil
	}
	if s, ok := asString(raw); ok {
		return ExactString(s), nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err == nil {
		if len(elems) == 1 {
			if s, ok := asString(elems[0]); ok && s == "*" {
				return Wildcard(), nil
			}
		}
		if len(elems) == 2 {
			start, okStart := asUint64(elems[0])
			end, okEnd := asUint64(elems[1])
			if okStart && okEnd {
				return NumericRange(start, end), nil
			}
		}
	}
	return MatchKey{}, codes.Newf(codes.InvalidArgsElement, "schema: row %d: match table entry %d: unrecognized key shape", rowIndex, ruleIndex)
}

func asString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func asUint64(raw json.RawMessage) (uint64, bool) {
	var n uint64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	return n, true
}
