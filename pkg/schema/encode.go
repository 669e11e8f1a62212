package schema

// EncodeRow renders the entry back into its positional wire form, the exact
// shape DecodeRows accepts. Round-tripping an entry through EncodeRow and
// DecodeRows yields a semantically identical entry, match-table order
// included. Used by authoring tools and tests.
func (e Entry) EncodeRow() []any {
	row := []any{
		e.ImageName,
		e.Kind.Keyword(),
		e.SourceTrait,
		e.Pattern.Keyword(),
	}
	if e.MatchTable == nil {
		return row
	}
	table := make([]any, 0, len(e.MatchTable))
	for _, rule := range e.MatchTable {
		var key any
		switch rule.Key.Kind {
		case KeyExactString:
			key = rule.Key.Str
		case KeyExactNumber:
			key = rule.Key.Num
		case KeyNumericRange:
			key = []any{rule.Key.Start, rule.Key.End}
		case KeyWildcard:
			key = []any{"*"}
		}
		table = append(table, []any{key, rule.Content})
	}
	return append(row, table)
}
