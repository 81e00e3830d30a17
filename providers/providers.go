// Package providers ships the service providers built into the framework.
package providers

import (
	"github.com/km-arc/go-container/config"
	"github.com/km-arc/go-container/container"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds *config.Config into the container as a lazy singleton: the files are
// only read when the config is first resolved.
//
// Laravel equivalent:
//
//	// Illuminate\Foundation\Bootstrap\LoadConfiguration
//	$app->singleton('config', fn() => new Repository($items));
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app container.Contract) {
	envFiles := p.EnvFiles
	container.SingletonFactory(app, func(c container.Contract) *config.Config {
		return config.Load(envFiles...)
	})
}
