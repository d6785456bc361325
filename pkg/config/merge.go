package config

// DeepMerge overlays patch onto base and returns a new map. Nested objects
// merge key by key; arrays and scalars replace entirely. Neither input is
// mutated.
//
// "Arrays replace" is what makes the datasource tool override sound: setting
// a category to an empty list removes every tool in it regardless of what
// the expert config declared.
func DeepMerge(base, patch map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(patch))
	for k, v := range base {
		out[k] = cloneValue(v)
	}
	for k, pv := range patch {
		bv, exists := out[k]
		if exists {
			bm, bok := asMap(bv)
			pm, pok := asMap(pv)
			if bok && pok {
				out[k] = DeepMerge(bm, pm)
				continue
			}
		}
		out[k] = cloneValue(pv)
	}
	return out
}

// asMap normalizes the two map shapes produced by yaml.v3 and encoding/json.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	}
	return nil, false
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, inner := range val {
			out[k] = cloneValue(inner)
		}
		return out
	case map[any]any:
		if m, ok := asMap(val); ok {
			return cloneValue(m)
		}
		return val
	case []any:
		out := make([]any, len(val))
		for i, inner := range val {
			out[i] = cloneValue(inner)
		}
		return out
	}
	return v
}
