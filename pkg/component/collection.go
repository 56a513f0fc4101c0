package component

// Collection holds definitions in discovery order. It is append-only while
// the host's build setup runs and read-only afterwards, so render calls may
// scan it concurrently without locking.
type Collection struct {
	definitions []Definition
}

// NewCollection builds a collection from definitions in the given order.
func NewCollection(definitions ...Definition) *Collection {
	c := &Collection{}
	c.Add(definitions...)
	return c
}

// Add appends definitions, preserving insertion order. Call only during
// build setup.
func (c *Collection) Add(definitions ...Definition) {
	c.definitions = append(c.definitions, definitions...)
}

// Match returns the first definition whose slug equals the slugified
// requested type, in collection order. Duplicate slugs are not an error;
// first found wins. An empty type or empty collection short-circuits to no
// match without scanning.
func (c *Collection) Match(typeName string) (Definition, bool) {
	if c == nil || len(c.definitions) == 0 {
		return Definition{}, false
	}
	want := Slugify(typeName)
	if want == "" {
		return Definition{}, false
	}
	for _, def := range c.definitions {
		if def.Slug() == want {
			return def, true
		}
	}
	return Definition{}, false
}

// Len reports the number of definitions.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.definitions)
}

// All returns the definitions in discovery order. The returned slice is a
// copy; mutating it does not affect the collection.
func (c *Collection) All() []Definition {
	if c == nil {
		return nil
	}
	out := make([]Definition, len(c.definitions))
	copy(out, c.definitions)
	return out
}

// Slugs returns each definition's matching key in discovery order.
// Duplicates are preserved.
func (c *Collection) Slugs() []string {
	if c == nil {
		return nil
	}
	slugs := make([]string, 0, len(c.definitions))
	for _, def := range c.definitions {
		slugs = append(slugs, def.Slug())
	}
	return slugs
}
