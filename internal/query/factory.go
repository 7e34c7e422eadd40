package query

// Factory turns one criteria field into a predicate. It returns nil when the
// field is absent, which adds no constraint.
type Factory[C any] func(C) Predicate

// Build folds every factory's predicate for c into one conjunction.
func Build[C any](c C, factories ...Factory[C]) Predicate {
	out := Predicate{}
	for _, f := range factories {
		out = append(out, f(c)...)
	}
	return out
}

func Equal[C, V any](column string, get func(C) *V) Factory[C] {
	return func(c C) Predicate {
		v := get(c)
		if v == nil {
			return nil
		}
		return Predicate{{Column: column, Op: OpEq, Value: *v}}
	}
}

// Contains is a case-sensitive substring match.
func Contains[C any](column string, get func(C) *string) Factory[C] {
	return func(c C) Predicate {
		v := get(c)
		if v == nil {
			return nil
		}
		return Predicate{{Column: column, Op: OpContains, Value: *v}}
	}
}

// Member matches when the comma-separated set in column contains the value
// as a whole element.
func Member[C any](column string, get func(C) *string) Factory[C] {
	return func(c C) Predicate {
		v := get(c)
		if v == nil {
			return nil
		}
		return Predicate{{Column: column, Op: OpMember, Value: *v}}
	}
}

// Range applies independently optional inclusive bounds.
func Range[C, V any](column string, lower, upper func(C) *V) Factory[C] {
	return func(c C) Predicate {
		lo, hi := lower(c), upper(c)
		switch {
		case lo != nil && hi != nil:
			return Predicate{{Column: column, Op: OpBetween, Value: [2]any{*lo, *hi}}}
		case lo != nil:
			return Predicate{{Column: column, Op: OpGte, Value: *lo}}
		case hi != nil:
			return Predicate{{Column: column, Op: OpLte, Value: *hi}}
		}
		return nil
	}
}
