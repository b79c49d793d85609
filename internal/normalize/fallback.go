// ABOUTME: Ordered fallback candidates for optional feed fields
// ABOUTME: The first candidate whose predicate holds supplies the value

package normalize

// candidate is one step of a fallback chain.
type candidate struct {
	ok    bool
	value string
}

func when(ok bool, value string) candidate {
	return candidate{ok: ok, value: value}
}

func always(value string) candidate {
	return candidate{ok: true, value: value}
}

// firstOf returns the value of the first candidate whose predicate holds,
// or the empty string if none do.
func firstOf(candidates ...candidate) string {
	for _, c := range candidates {
		if c.ok {
			return c.value
		}
	}
	return ""
}
