// Package descriptor defines the descriptor model shared by the service
// collection and the registration API.
//
// A descriptor is an immutable record describing how to produce one
// registered service: the service type it is registered under, an
// implementation source (a concrete type, a pre-built instance, or a
// factory), and a lifetime. The host collection stores values of the
// Descriptor interface; the keyed layer contributes Resource descriptors,
// which additionally carry a resource key and satisfy the Keyed capability
// so generic scanning code can detect them without knowing the concrete
// type.
package descriptor
