package descriptor

// Lifetime controls how many instances the resolver creates for a
// registration.
type Lifetime int

const (
	// Singleton resolves once per provider; the instance is cached and
	// reused for every subsequent resolution. Keyed registrations always
	// use this lifetime.
	Singleton Lifetime = iota

	// Scoped resolves once per scope. A provider built from a collection
	// acts as a single scope.
	Scoped

	// Transient resolves a new instance on every resolution.
	Transient
)

// String returns the human-readable name of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "singleton"
	case Scoped:
		return "scoped"
	case Transient:
		return "transient"
	default:
		return "unknown"
	}
}
