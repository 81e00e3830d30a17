// Package container provides a Laravel-style IoC (Inversion of Control)
// container and Service Provider system for Go, keyed by concrete types
// rather than strings.
//
// # Overview
//
// The container manages how your application's services are constructed and
// reused. Each service is identified by a Key derived from its concrete Go
// type, and is registered either as a transient binding (a factory invoked on
// every resolution), a singleton instance (a pre-built value shared by all
// resolutions), or a singleton factory (built lazily on first resolution,
// then shared).
//
// Because Go has no runtime constructor reflection, auto-wiring is replaced
// by explicit factory functions: a Factory receives the container (as the
// restricted Contract view) and may resolve its own dependencies from it.
//
// # Container Lifecycle
//
//  1. Create: c := container.New()
//  2. Add providers: c.RegisterProvider(&MyProvider{})
//  3. Register pass: c.Register()  — every provider binds its services
//  4. Boot pass: c.Boot()          — safe to resolve everything after this
//
// # Bindings
//
//	// Transient — new instance every Transient()/Resolve()
//	// Laravel: $app->bind(Foo::class, fn($app) => new Foo)
//	container.Bind(c, func(c container.Contract) *Foo { return &Foo{} })
//
//	// Pre-built singleton
//	// Laravel: $app->instance(Config::class, $config)
//	container.Singleton(c, myConfig)
//
//	// Lazy singleton — factory runs once, on first Resolve()
//	// Laravel: $app->singleton(Cache::class, fn($app) => new RedisCache)
//	container.SingletonFactory(c, func(c container.Contract) *Cache {
//	    cfg, _ := container.Resolve[*Config](c)
//	    return NewCache(cfg)
//	})
//
// # Resolving
//
//	// Generic (preferred — no type assertion required)
//	cache, err := container.Resolve[*Cache](c)
//
//	// Type-erased, for callers that hold a Key
//	raw, err := c.ResolveAny(container.KeyOf[*Cache]())
//
// Resolution priority is fixed: a materialized singleton wins over a pending
// singleton factory, which wins over a transient binding. A key with no
// registration of any kind fails with ErrUnresolvedType.
//
// # Service Providers
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(app container.Contract) {
//	    container.SingletonFactory(app, func(c container.Contract) *Mailer {
//	        cfg, _ := container.Resolve[*Config](c)
//	        return NewMailer(cfg)
//	    })
//	}
//
//	func (p *AppServiceProvider) Boot(app container.Contract) {
//	    // safe to resolve other bindings here
//	}
//
//	c.RegisterProvider(&AppServiceProvider{})
//	c.Register()
//	c.Boot()
//
// # Concurrency
//
// The container is not safe for concurrent use. Every operation runs
// synchronously on the caller's goroutine, and singleton materialization is a
// check-then-write sequence: two goroutines racing on the first resolution of
// the same key could run its singleton factory twice. Share a container
// across goroutines only behind external synchronization, and finish all
// registration before concurrent reads begin.
package container
