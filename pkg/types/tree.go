package types

// Doc is an insertion-ordered string-keyed mapping, the generic parsed form
// of a metadata document before loading. Values are scalars (string, int,
// float64, bool, nil), sequences ([]any), or nested *Doc mappings. Go maps
// do not preserve key order, so codecs build a Doc instead and the loader
// consumes it without knowing anything about the serialization.
type Doc struct {
	keys []string
	vals map[string]any
}

// NewDoc returns an empty document tree.
func NewDoc() *Doc {
	return &Doc{vals: make(map[string]any)}
}

// Set stores a value under key. The first Set of a key fixes its position;
// setting an existing key overwrites the value in place.
func (d *Doc) Set(key string, value any) {
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = value
}

// Get returns the value stored under key and whether it exists.
func (d *Doc) Get(key string) (any, bool) {
	v, ok := d.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (d *Doc) Has(key string) bool {
	_, ok := d.vals[key]
	return ok
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (d *Doc) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Len returns the number of keys.
func (d *Doc) Len() int {
	return len(d.keys)
}
