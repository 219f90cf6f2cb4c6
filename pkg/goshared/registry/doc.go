// Package registry provides a generic thread-safe registry for values indexed
// by key.
//
// Registry is tuned for read-heavy workloads using sync.RWMutex and remembers
// the order in which keys were first registered, so Keys and Range are
// deterministic.
//
// # Basic Usage
//
//	r := registry.New[string, *slog.Logger]()
//	r.Register("app", appLogger)
//
//	logger, ok := r.Get("app")
//
// # Lazy Initialization
//
// GetOrCreate is atomic: the factory runs at most once per key, which makes
// it a good fit for per-name singletons such as named loggers:
//
//	logger := loggers.GetOrCreate("worker", func() *slog.Logger {
//	    return newLogger("worker")
//	})
//
// # Ordering
//
// Re-registering an existing key updates its value in place. Deleting a key
// and registering it again moves it to the end.
package registry
