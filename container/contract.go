package container

// ── Factories ─────────────────────────────────────────────────────────────────

// Factory builds one fresh, type-erased instance. It receives the container
// as a Contract so it can resolve its own dependencies re-entrantly.
// Cycles between factories are the author's responsibility — the container
// does not detect them.
type Factory func(c Contract) any

// Extender wraps an already-resolved instance with decorator logic.
type Extender func(instance any, c Contract) any

// ── Contract ──────────────────────────────────────────────────────────────────

// Contract is the restricted container view handed to factories and service
// providers. It exposes enough surface to register and resolve services
// without exposing the container's internal maps.
//
// *Container implements Contract.
type Contract interface {
	// BindAny stores a transient factory for key, overwriting any prior one.
	BindAny(key Key, factory Factory)

	// Singleton stores a pre-built instance for key, replacing any prior
	// singleton or pending singleton factory.
	Singleton(key Key, instance any)

	// SingletonFactory registers a factory to be materialized on first
	// resolution of key. The factory is not invoked here.
	SingletonFactory(key Key, factory Factory)

	// Transient invokes key's transient factory and returns the fresh
	// instance. Fails with ErrUnresolvedType if key has no binding.
	Transient(key Key) (any, error)

	// ResolveAny resolves key: materialized singleton first, then pending
	// singleton factory, then transient binding.
	// Fails with ErrUnresolvedType if key is unknown in all three.
	ResolveAny(key Key) (any, error)

	// Bound reports whether key has any registration at all.
	Bound(key Key) bool
}
