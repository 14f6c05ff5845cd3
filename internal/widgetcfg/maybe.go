package widgetcfg

// Maybe distinguishes a relation that was never loaded from one that was
// loaded and turned out empty. The repository layer marks what it fetched;
// normalization skips unloaded relations entirely.
type Maybe[T any] struct {
	value  T
	loaded bool
}

// Loaded wraps a fetched value, including empty collections.
func Loaded[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, loaded: true}
}

// NotLoaded marks a relation the caller never requested.
func NotLoaded[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get returns the value and whether it was loaded.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.loaded
}
