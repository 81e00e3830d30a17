package container

import (
	"errors"
	"fmt"
)

// ErrUnresolvedType is returned when a key is resolved without any matching
// binding, singleton, or singleton factory. It is the container's only error
// kind — overwrites, re-registration, and repeated lifecycle passes are all
// silently accepted.
var ErrUnresolvedType = errors.New("container: unresolved type")

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the IoC container. It owns three maps:
//
//   - bindings:  Key → transient Factory (new instance per resolution)
//   - instances: Key → materialized singleton
//   - factories: Key → pending singleton Factory (runs at most once)
//
// plus the ServiceProvider registry and the tag/extender side tables.
// All access goes through the container's methods; the maps are never
// exposed. Not safe for concurrent use — see the package documentation.
type Container struct {
	bindings  map[Key]Factory
	instances map[Key]any
	factories map[Key]Factory

	// tag → []Key
	tags map[string][]Key

	// key → extender funcs, applied in registration order
	extenders map[Key][]Extender

	providers *ProviderRegistry
}

var _ Contract = (*Container)(nil)

// New creates an empty container.
func New() *Container {
	c := &Container{
		bindings:  make(map[Key]Factory),
		instances: make(map[Key]any),
		factories: make(map[Key]Factory),
		tags:      make(map[string][]Key),
		extenders: make(map[Key][]Extender),
	}
	c.providers = NewProviderRegistry(c)
	// The container resolves itself — like Laravel's $app->instance('app', $app)
	c.Singleton(KeyOf[*Container](), c)
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Bind registers a transient factory, deriving the key from sample's dynamic
// type. The sample value is discarded.
//
//	// Laravel: $app->bind(UserRepository::class, fn($app) => new UserRepository)
//	c.Bind(&UserRepository{}, func(c container.Contract) any {
//	    return &UserRepository{}
//	})
func (c *Container) Bind(sample any, factory Factory) {
	c.BindAny(KeyFor(sample), factory)
}

// BindAny registers a transient factory under an explicit key.
// Re-binding the same key overwrites the prior factory; this never fails.
func (c *Container) BindAny(key Key, factory Factory) {
	c.bindings[key] = factory
}

// Singleton stores a ready-made instance, bypassing factories entirely.
// Any pending singleton factory for the key is dropped.
//
//	// Laravel: $app->instance(Config::class, $config)
//	c.Singleton(container.KeyOf[*Config](), cfg)
func (c *Container) Singleton(key Key, instance any) {
	delete(c.factories, key)
	c.instances[key] = instance
}

// SingletonFactory registers a factory whose result is cached on first
// resolution. The factory is not invoked here; it runs at most once, ever.
//
//	// Laravel: $app->singleton(Cache::class, fn($app) => new RedisCache)
func (c *Container) SingletonFactory(key Key, factory Factory) {
	delete(c.instances, key)
	c.factories[key] = factory
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Transient invokes key's transient factory and returns the fresh instance.
// Every call constructs a new instance; nothing is cached. The factory may
// resolve other keys from the container during its run.
func (c *Container) Transient(key Key) (any, error) {
	factory, ok := c.bindings[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnresolvedType, key)
	}
	return c.extend(key, factory(c)), nil
}

// Resolve returns the instance registered for key. The priority order is
// fixed: a materialized singleton wins, then a pending singleton factory
// (invoked once and cached), then a transient binding (fresh instance, not
// cached). A key unknown to all three fails with ErrUnresolvedType.
//
// After the first successful resolution of a singleton key, every later call
// returns the identical stored instance.
func (c *Container) Resolve(key Key) (any, error) {
	if instance, ok := c.instances[key]; ok {
		return instance, nil
	}
	if factory, ok := c.factories[key]; ok {
		instance := c.extend(key, factory(c))
		c.instances[key] = instance
		delete(c.factories, key)
		return instance, nil
	}
	return c.Transient(key)
}

// ResolveAny is an alias of Resolve for callers operating on type-erased
// keys (e.g. a ServiceProvider written generically).
func (c *Container) ResolveAny(key Key) (any, error) {
	return c.Resolve(key)
}

// ── Tags ──────────────────────────────────────────────────────────────────────

// Tag associates multiple keys under a named group.
//
//	// Laravel: $app->tag([CpuReport::class, MemReport::class], 'reports')
//	c.Tag([]container.Key{container.KeyOf[*CpuReport](), container.KeyOf[*MemReport]()}, "reports")
func (c *Container) Tag(keys []Key, tag string) {
	c.tags[tag] = append(c.tags[tag], keys...)
}

// Tagged resolves every key registered under a tag, in tagging order.
//
//	// Laravel: $app->tagged('reports')
func (c *Container) Tagged(tag string) ([]any, error) {
	keys := c.tags[tag]
	result := make([]any, 0, len(keys))
	for _, key := range keys {
		instance, err := c.Resolve(key)
		if err != nil {
			return nil, err
		}
		result = append(result, instance)
	}
	return result, nil
}

// ── Extend ────────────────────────────────────────────────────────────────────

// Extend decorates the resolved instances of a key. Future resolutions pass
// through fn; an already-materialized singleton is re-wrapped in place.
//
//	// Laravel: $app->extend(Logger::class, fn($logger, $app) => new TimestampLogger($logger))
func (c *Container) Extend(key Key, fn Extender) {
	c.extenders[key] = append(c.extenders[key], fn)
	if instance, ok := c.instances[key]; ok {
		c.instances[key] = fn(instance, c)
	}
}

// extend runs key's extenders over a freshly built instance.
func (c *Container) extend(key Key, instance any) any {
	for _, fn := range c.extenders[key] {
		instance = fn(instance, c)
	}
	return instance
}

// ── Providers ─────────────────────────────────────────────────────────────────

// Providers returns the container's ServiceProvider registry.
func (c *Container) Providers() *ProviderRegistry { return c.providers }

// RegisterProvider appends a provider to the registry. No provider method is
// invoked until the Register and Boot passes run.
//
//	// Laravel: $app->register(new AppServiceProvider($app))
func (c *Container) RegisterProvider(provider ServiceProvider) {
	c.providers.Add(provider)
}

// Register runs the register pass over all providers, in registration order.
func (c *Container) Register() { c.providers.Register() }

// Boot runs the boot pass over all providers, in registration order.
// Call only after Register.
func (c *Container) Boot() { c.providers.Boot() }

// ── Helpers ───────────────────────────────────────────────────────────────────

// Bound reports whether key has any registration — transient binding,
// singleton instance, or pending singleton factory.
//
//	// Laravel: $app->bound(UserRepository::class)
func (c *Container) Bound(key Key) bool {
	if _, ok := c.bindings[key]; ok {
		return true
	}
	if _, ok := c.instances[key]; ok {
		return true
	}
	_, ok := c.factories[key]
	return ok
}

// Resolved reports whether key holds a materialized singleton.
//
//	// Laravel: $app->resolved(Cache::class)
func (c *Container) Resolved(key Key) bool {
	_, ok := c.instances[key]
	return ok
}

// Forget removes all registrations for key.
//
//	// Laravel: $app->forgetInstance(Cache::class)
func (c *Container) Forget(key Key) {
	delete(c.bindings, key)
	delete(c.instances, key)
	delete(c.factories, key)
	delete(c.extenders, key)
}

// Flush resets every registration. The provider registry is kept, so a
// subsequent Register pass rebuilds the container from its providers.
func (c *Container) Flush() {
	c.bindings = make(map[Key]Factory)
	c.instances = make(map[Key]any)
	c.factories = make(map[Key]Factory)
	c.tags = make(map[string][]Key)
	c.extenders = make(map[Key][]Extender)
	c.Singleton(KeyOf[*Container](), c)
}

// Keys returns every registered key (for debugging).
func (c *Container) Keys() []Key {
	n := len(c.bindings) + len(c.instances) + len(c.factories)
	seen := make(map[Key]bool, n)
	out := make([]Key, 0, n)
	for _, m := range []map[Key]Factory{c.bindings, c.factories} {
		for k := range m {
			if !seen[k] {
				seen[k] = true
				out = append(out, k)
			}
		}
	}
	for k := range c.instances {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// ── Generics helpers ──────────────────────────────────────────────────────────

// Bind registers a transient factory for T, deriving the key from T itself.
//
//	container.Bind(c, func(c container.Contract) *UserRepository {
//	    return &UserRepository{}
//	})
func Bind[T any](c Contract, factory func(c Contract) T) {
	c.BindAny(KeyOf[T](), func(c Contract) any { return factory(c) })
}

// Singleton stores instance under T's key.
func Singleton[T any](c Contract, instance T) {
	c.Singleton(KeyOf[T](), instance)
}

// SingletonFactory registers a lazy singleton factory for T.
func SingletonFactory[T any](c Contract, factory func(c Contract) T) {
	c.SingletonFactory(KeyOf[T](), func(c Contract) any { return factory(c) })
}

// Transient builds a fresh T from its transient binding.
//
//	repo, err := container.Transient[*UserRepository](c)
func Transient[T any](c Contract) (T, error) {
	instance, err := c.Transient(KeyOf[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return narrow[T](instance)
}

// Resolve resolves T and type-asserts the result.
//
//	// Instead of: cfg := c.ResolveAny(key).(*Config)
//	// Write:      cfg, err := container.Resolve[*Config](c)
func Resolve[T any](c Contract) (T, error) {
	instance, err := c.ResolveAny(KeyOf[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return narrow[T](instance)
}

// MustResolve is like Resolve but panics on failure. Intended for bootstrap
// paths where a missing binding is a programming error.
func MustResolve[T any](c Contract) T {
	instance, err := Resolve[T](c)
	if err != nil {
		panic(err)
	}
	return instance
}

// narrow downcasts a type-erased instance. A mismatch means the caller used
// a key derived from a different type than the stored value — the container
// itself always stores values under their own type's key.
func narrow[T any](instance any) (T, error) {
	typed, ok := instance.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("container: %s resolved to %T", KeyOf[T](), instance)
	}
	return typed, nil
}
