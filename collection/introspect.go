package collection

import (
	"github.com/kbukum/regkit/descriptor"
	"github.com/kbukum/regkit/util"
)

// RegistrationInfo describes one collection entry for introspection.
type RegistrationInfo struct {
	// ID is the descriptor's unique identifier, empty for entries that do
	// not expose one.
	ID string
	// Key is the resource key, empty for unkeyed entries.
	Key string
	// Keyed reports whether the entry satisfies the keyed capability.
	Keyed bool
	// ServiceType is the human-readable service type name.
	ServiceType string
	// Source describes the implementation source variant.
	Source string
	// Lifetime is the entry's lifetime.
	Lifetime string
}

// Registrations returns introspection records for every entry, in
// registration order.
func (c *ServiceCollection) Registrations() []RegistrationInfo {
	infos := make([]RegistrationInfo, 0, len(c.descriptors))
	for _, d := range c.descriptors {
		info := RegistrationInfo{
			ServiceType: util.TypeName(d.ServiceType()),
			Source:      d.Source().String(),
			Lifetime:    d.Lifetime().String(),
		}
		if k, ok := d.(descriptor.Keyed); ok {
			info.Keyed = true
			info.Key = k.ResourceKey()
		}
		if r, ok := d.(*descriptor.Resource); ok {
			info.ID = r.ID().String()
		}
		infos = append(infos, info)
	}
	return infos
}
