package descriptor

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"

	"github.com/kbukum/regkit/errors"
	"github.com/kbukum/regkit/util"
)

// Resource is a keyed singleton descriptor. It binds a resource key to a
// service-type/implementation pair so multiple implementations of the same
// service type can be registered side by side and told apart later.
//
// Resources are immutable after construction and always carry the
// Singleton lifetime; that restriction is a fixed policy of the keyed
// layer, not a caller-selectable option.
type Resource struct {
	id          uuid.UUID
	key         string
	serviceType reflect.Type
	source      Source
}

// NewResourceType constructs a keyed descriptor whose value is produced by
// instantiating implementationType.
//
// Whether implementationType is assignable to serviceType is not checked
// here; the generically-typed registration forms enforce it, the
// reflect.Type forms leave it to the caller.
func NewResourceType(key string, serviceType, implementationType reflect.Type) (*Resource, error) {
	return newResource(key, serviceType, TypeSource(implementationType))
}

// NewResourceInstance constructs a keyed descriptor wrapping a pre-built
// value.
func NewResourceInstance(key string, serviceType reflect.Type, instance any) (*Resource, error) {
	return newResource(key, serviceType, InstanceSource(instance))
}

// NewResourceFactory constructs a keyed descriptor whose value is produced
// by factory at resolution time.
func NewResourceFactory(key string, serviceType reflect.Type, factory Factory) (*Resource, error) {
	return newResource(key, serviceType, FactorySource(factory))
}

// newResource is the single construction path behind the three public
// constructors; it owns the shared validation.
func newResource(key string, serviceType reflect.Type, source Source) (*Resource, error) {
	if util.IsBlank(key) {
		return nil, errors.InvalidKey("key", "must not be empty or whitespace")
	}
	if serviceType == nil {
		return nil, errors.MissingReference("serviceType")
	}
	if source.payloadNil() {
		return nil, errors.MissingReference(source.paramName())
	}
	return &Resource{
		id:          uuid.New(),
		key:         key,
		serviceType: serviceType,
		source:      source,
	}, nil
}

// ID returns the unique identifier assigned at construction, used for
// introspection and log correlation.
func (r *Resource) ID() uuid.UUID { return r.id }

// ResourceKey returns the caller-chosen key distinguishing this
// registration from others of the same service type.
func (r *Resource) ResourceKey() string { return r.key }

// ServiceType returns the type the entry is registered under.
func (r *Resource) ServiceType() reflect.Type { return r.serviceType }

// Source returns the implementation source.
func (r *Resource) Source() Source { return r.source }

// Lifetime always returns Singleton for keyed registrations.
func (r *Resource) Lifetime() Lifetime { return Singleton }

// String returns a short description for logs.
func (r *Resource) String() string {
	return fmt.Sprintf("resource %q %s %s", r.key, util.TypeName(r.serviceType), r.source)
}
