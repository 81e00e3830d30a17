package container

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider is a modular configuration unit run in two engine-wide
// passes: first every provider's Register, then every provider's Boot, both
// in registration order.
//
// Every provider must implement at minimum Register(). Boot() is called
// after ALL providers have been registered, making it safe to resolve other
// bindings inside Boot(). Cross-provider register-time dependencies are the
// author's responsibility — the container guarantees "all registers, then
// all boots" and nothing finer.
//
//	// Laravel:
//	// class AppServiceProvider extends ServiceProvider {
//	//     public function register(): void { $this->app->singleton(...); }
//	//     public function boot(): void     { /* use resolved services */ }
//	// }
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(app container.Contract) {
//	    container.SingletonFactory(app, func(c container.Contract) *Logger {
//	        cfg, _ := container.Resolve[*Config](c)
//	        return NewLogger(cfg)
//	    })
//	}
//
//	func (p *AppServiceProvider) Boot(app container.Contract) {
//	    logger := container.MustResolve[*Logger](app)
//	    logger.Info("application booted")
//	}
type ServiceProvider interface {
	// Register binds services into the container.
	// Do NOT resolve other bindings here — use Boot() for that.
	Register(app Contract)

	// Boot is called after all providers are registered.
	// Safe to resolve and use any binding here.
	Boot(app Contract)

	// Provides returns the keys this provider registers. Used for deferred
	// (lazy) provider loading; return nil if the provider is always eager.
	//
	//	// Laravel: public function provides(): array { return [Cache::class]; }
	Provides() []Key

	// IsDeferred returns true if this provider should be loaded lazily —
	// only when one of its Provides() keys is first resolved. A deferred
	// provider must bind every key it lists in Provides().
	//
	//	// Laravel: protected $defer = true;
	IsDeferred() bool
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct providing no-op implementations of
// Boot(), Provides(), and IsDeferred(). Embed it and override what you need.
//
//	type MyProvider struct{ container.BaseProvider }
//	func (p *MyProvider) Register(app container.Contract) { ... }
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ Contract)  {}
func (p *BaseProvider) Provides() []Key  { return nil }
func (p *BaseProvider) IsDeferred() bool { return false }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry holds the ordered list of ServiceProviders and runs the
// two engine-wide passes over them. Every Container owns one; reach it via
// Container.Providers().
type ProviderRegistry struct {
	app       *Container
	providers []ServiceProvider
	booted    bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{app: app}
}

// Add appends a provider in registration order. No provider method is
// invoked here — registration happens in the Register pass.
func (r *ProviderRegistry) Add(provider ServiceProvider) {
	r.providers = append(r.providers, provider)
}

// Register runs the register pass: each provider's Register, in order.
// Deferred providers are not registered; each of their Provides() keys gets
// a lazy binding that performs the real registration on first resolution.
//
// Calling Register twice re-runs every provider's Register; per key, the
// last registration wins.
func (r *ProviderRegistry) Register() {
	for _, provider := range r.providers {
		if provider.IsDeferred() {
			r.deferProvider(provider)
			continue
		}
		provider.Register(r.app)
	}
}

// deferProvider installs a lazy binding for each of the provider's keys.
// The first resolution of any of them triggers the real Register (and Boot,
// if the boot pass has already run), then resolves the key for real.
func (r *ProviderRegistry) deferProvider(provider ServiceProvider) {
	loaded := false
	for _, key := range provider.Provides() {
		key := key
		r.app.BindAny(key, func(c Contract) any {
			if !loaded {
				loaded = true
				provider.Register(c)
				if r.booted {
					provider.Boot(c)
				}
			}
			instance, err := c.ResolveAny(key)
			if err != nil {
				return nil
			}
			return instance
		})
	}
}

// Boot runs the boot pass: each eager provider's Boot, in order. Must be
// called after Register — all registers complete before any boot. Calling
// Boot twice re-runs every Boot; avoiding double boots is the caller's
// responsibility.
func (r *ProviderRegistry) Boot() {
	r.booted = true
	for _, provider := range r.providers {
		if provider.IsDeferred() {
			continue
		}
		provider.Boot(r.app)
	}
}

// Booted reports whether at least one boot pass has run.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// All returns the registered providers in registration order.
func (r *ProviderRegistry) All() []ServiceProvider { return r.providers }
