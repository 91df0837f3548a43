package descriptor

import "reflect"

// Resolver is the resolution context handed to factories. It is satisfied
// by the provider built from a service collection.
type Resolver interface {
	// Resolve returns the registered value for the given service type.
	Resolve(t reflect.Type) (any, error)
}

// Factory produces a service value from the resolution context.
type Factory func(r Resolver) (any, error)

// Descriptor is the base contract every collection entry satisfies: the
// service type it is registered under, the source that produces the value,
// and its lifetime.
type Descriptor interface {
	ServiceType() reflect.Type
	Source() Source
	Lifetime() Lifetime
}

// Keyed is the capability contract for keyed registrations. Only entries
// implementing Keyed participate in duplicate detection by resource key;
// entries lacking it are never considered duplicates regardless of their
// service type.
type Keyed interface {
	ResourceKey() string
}
