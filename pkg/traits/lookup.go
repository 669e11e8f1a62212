package traits

// FirstValue returns the first value of the first output whose name equals
// trait. A miss is a normal outcome, not an error: callers truncate the
// affected image group instead of failing the run. An output whose value
// list is empty counts as a miss.
func FirstValue(trait string, outputs []Output) (Value, bool) {
	for _, output := range outputs {
		if output.Name != trait {
			continue
		}
		if len(output.Traits) == 0 {
			return Value{}, false
		}
		return output.Traits[0], true
	}
	return Value{}, false
}
