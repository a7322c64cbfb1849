package quadtree

// Filter narrows which hazards a query considers. The zero Filter
// excludes nothing. Filter is an immutable value: every With* method
// returns a new Filter rather than mutating the receiver, so a filter
// built once can be shared across concurrent queries (spec.md §5).
type Filter struct {
	keys   map[HazardKey]struct{}
	scopes map[string]struct{}
}

// WithoutKey returns a copy of f that additionally excludes key.
func (f Filter) WithoutKey(key HazardKey) Filter {
	out := f.clone()
	if out.keys == nil {
		out.keys = make(map[HazardKey]struct{}, 1)
	}
	out.keys[key] = struct{}{}
	return out
}

// WithoutScope returns a copy of f that additionally excludes every
// hazard registered under scope.
func (f Filter) WithoutScope(scope string) Filter {
	out := f.clone()
	if out.scopes == nil {
		out.scopes = make(map[string]struct{}, 1)
	}
	out.scopes[scope] = struct{}{}
	return out
}

func (f Filter) clone() Filter {
	out := Filter{}
	if len(f.keys) > 0 {
		out.keys = make(map[HazardKey]struct{}, len(f.keys))
		for k := range f.keys {
			out.keys[k] = struct{}{}
		}
	}
	if len(f.scopes) > 0 {
		out.scopes = make(map[string]struct{}, len(f.scopes))
		for s := range f.scopes {
			out.scopes[s] = struct{}{}
		}
	}
	return out
}

// allows reports whether a hazard registered under scope with this key
// passes the filter.
func (f Filter) allows(key HazardKey, scope string) bool {
	if _, excluded := f.keys[key]; excluded {
		return false
	}
	_, excluded := f.scopes[scope]
	return !excluded
}
