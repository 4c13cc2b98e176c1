package types

// DefaultMap is a map that materializes a value with newValue the first time a
// missing key is read. It is not safe for concurrent use.
type DefaultMap[K comparable, V any] struct {
	data     map[K]V
	newValue func() V
}

// NewDefaultMap returns an empty DefaultMap that fills gaps with newValue.
func NewDefaultMap[K comparable, V any](newValue func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:     make(map[K]V),
		newValue: newValue,
	}
}

// Get returns the value under key, storing a fresh one first when absent.
func (d *DefaultMap[K, V]) Get(key K) V {
	if val, ok := d.data[key]; ok {
		return val
	}

	val := d.newValue()
	d.data[key] = val
	return val
}

// Lookup returns the value under key without materializing it.
func (d *DefaultMap[K, V]) Lookup(key K) (V, bool) {
	val, ok := d.data[key]
	return val, ok
}

// Set stores val under key.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	d.data[key] = val
}

// Delete drops key.
func (d *DefaultMap[K, V]) Delete(key K) {
	delete(d.data, key)
}

// Len returns the number of materialized keys.
func (d *DefaultMap[K, V]) Len() int {
	return len(d.data)
}
