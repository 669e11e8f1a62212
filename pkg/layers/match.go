// Package layers turns decoded parameters into ordered per-image layer
// stacks: it groups schema entries by image name, resolves each entry's
// source trait, applies the entry's matching rule, and encodes the selected
// content into compose-ready items.
package layers

import (
	"github.com/sporeprotocol/layergen/pkg/codes"
	"github.com/sporeprotocol/layergen/pkg/schema"
	"github.com/sporeprotocol/layergen/pkg/traits"
)

// Match applies the entry's pattern to a resolved trait value. The boolean
// reports whether a content value was selected: exhausting a match table
// without a hit is a normal outcome that truncates the image group, while a
// scalar-kind mismatch on a consulted key is a hard error regardless of
// whether a later key would have matched.
func Match(entry schema.Entry, resolved traits.Value) (string, bool, error) {
	if entry.Pattern == schema.Raw {
		content, err := resolved.AsString()
		if err != nil {
			return "", false, codes.New(codes.InvalidRawValue, "layers: raw pattern requires a string trait value")
		}
		return content, true, nil
	}

	if entry.MatchTable == nil {
		return "", false, codes.Newf(codes.InvalidOptionArgs, "layers: pattern %q declared without a match table", entry.Pattern.Keyword())
	}

	for _, rule := range entry.MatchTable {
		switch rule.Key.Kind {
		case schema.KeyExactNumber:
			n, err := resolved.AsNumber()
			if err != nil {
				return "", false, err
			}
			if n == rule.Key.Num {
				return rule.Content, true, nil
			}
		case schema.KeyExactString:
			s, err := resolved.AsString()
			if err != nil {
				return "", false, err
			}
			if s == rule.Key.Str {
				return rule.Content, true, nil
			}
		case schema.KeyNumericRange:
			n, err := resolved.AsNumber()
			if err != nil {
				return "", false, err
			}
			if rule.Key.Start <= n && n <= rule.Key.End {
				return rule.Content, true, nil
			}
		case schema.KeyWildcard:
			return rule.Content, true, nil
		}
	}
	return "", false, nil
}
