// Package app provides the application bootstrap kernel.
package app

import (
	"github.com/km-arc/go-container/config"
	"github.com/km-arc/go-container/container"
	"github.com/km-arc/go-container/providers"
)

// Application is the top-level application object. It embeds the IoC
// Container so user code can call app.RegisterProvider(), app.Resolve()
// and friends directly — like $app in Laravel's bootstrap/app.php.
type Application struct {
	*container.Container
}

// New creates the application with the framework's built-in providers added.
// Call Bootstrap (or Register + Boot) before resolving services.
func New(envFiles ...string) *Application {
	c := container.New()
	c.RegisterProvider(&providers.ConfigServiceProvider{EnvFiles: envFiles})

	return &Application{Container: c}
}

// Bootstrap runs the register pass and then the boot pass over all
// providers. Safe to resolve everything afterwards.
func (a *Application) Bootstrap() {
	a.Register()
	a.Boot()
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.MustResolve[*config.Config](a.Container)
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }
func (a *Application) Version() string     { return "0.1.0" }
