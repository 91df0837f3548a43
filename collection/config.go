package collection

import "github.com/kbukum/regkit/config"

// NewFromConfig creates a collection configured from registry settings.
func NewFromConfig(cfg config.RegistryConfig, opts ...Option) *ServiceCollection {
	base := make([]Option, 0, len(opts)+2)
	if cfg.CapacityHint > 0 {
		base = append(base, WithCapacity(cfg.CapacityHint))
	}
	if cfg.WarnOnReplace {
		base = append(base, WithWarnOnReplace())
	}
	return New(append(base, opts...)...)
}
