package config

import "context"

type configKey struct{}

// WithContext returns a copy of ctx carrying cfg so subcommands reuse the
// config the root command already loaded.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the config stored by WithContext, or nil when there
// is none.
func FromContext(ctx context.Context) *Config {
	if ctx == nil {
		return nil
	}
	cfg, _ := ctx.Value(configKey{}).(*Config)
	return cfg
}
