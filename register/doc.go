// Package register provides keyed singleton registration over a service
// collection.
//
// Every function binds a resource key to a service-type/implementation
// pair and appends the resulting descriptor to the collection. The Add
// family always appends, so the same (key, service type) pair may appear
// more than once and the provider's last-registered-wins policy decides
// which one resolves. The TryAdd family appends only when no existing
// keyed entry shares both the key and the service type; a conflicting call
// is a silent no-op, so the first registration wins.
//
// Each family comes in a reflect.Type form (AddSingleton, AddSingletonType,
// AddSingletonInstance, AddSingletonFactory) and a generically-typed form
// (AddSingletonFor, AddSingletonAs, AddSingletonInstanceFor,
// AddSingletonFactoryFor, AddSingletonFactoryAs). The generic forms verify
// that the implementation type is assignable to the service type; the
// reflect.Type forms leave that to the caller.
package register
