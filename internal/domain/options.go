package domain

// OptionSelection pairs an option name with the chosen value, e.g. {"Size", "L"}.
type OptionSelection struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// OptionValues is an ordered map from option name to chosen value.
// Equality is key-wise: two OptionValues are equal when they hold the same
// name/value pairs, regardless of order. The slice form keeps iteration
// deterministic for display and serialization.
type OptionValues []OptionSelection

func (ov OptionValues) Get(name string) (string, bool) {
	for _, sel := range ov {
		if sel.Name == name {
			return sel.Value, true
		}
	}
	return "", false
}

// Set replaces the value for name, appending when the name is new.
func (ov OptionValues) Set(name, value string) OptionValues {
	for i, sel := range ov {
		if sel.Name == name {
			ov[i].Value = value
			return ov
		}
	}
	return append(ov, OptionSelection{Name: name, Value: value})
}

func (ov OptionValues) Equal(other OptionValues) bool {
	if len(ov) != len(other) {
		return false
	}
	for _, sel := range ov {
		v, ok := other.Get(sel.Name)
		if !ok || v != sel.Value {
			return false
		}
	}
	return true
}

// Covers reports whether every selection is present with the same value.
// A variant matches a partial selection when its option values cover it.
func (ov OptionValues) Covers(selections OptionValues) bool {
	for _, sel := range selections {
		v, ok := ov.Get(sel.Name)
		if !ok || v != sel.Value {
			return false
		}
	}
	return true
}

func (ov OptionValues) Clone() OptionValues {
	if ov == nil {
		return nil
	}
	out := make(OptionValues, len(ov))
	copy(out, ov)
	return out
}
