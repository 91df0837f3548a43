package register

import (
	"reflect"

	"github.com/kbukum/regkit/collection"
	"github.com/kbukum/regkit/descriptor"
	"github.com/kbukum/regkit/errors"
	"github.com/kbukum/regkit/util"
)

// AddSingletonFor registers TService under key using TService itself as
// the implementation.
func AddSingletonFor[TService any](services *collection.ServiceCollection, key string) error {
	t := reflect.TypeOf((*TService)(nil)).Elem()
	return addType(services, key, t, t, false)
}

// AddSingletonAs registers TImplementation under key as an implementation
// of TService. Unlike the reflect.Type forms, assignability of the
// implementation to the service type is verified.
func AddSingletonAs[TService, TImplementation any](services *collection.ServiceCollection, key string) error {
	return addTypeChecked[TService, TImplementation](services, key, false)
}

// AddSingletonInstanceFor registers a pre-built instance of TService under
// key.
func AddSingletonInstanceFor[TService any](services *collection.ServiceCollection, key string, instance TService) error {
	return addInstance(services, key, reflect.TypeOf((*TService)(nil)).Elem(), instance, false)
}

// AddSingletonFactoryFor registers a typed factory under key as the
// producer of TService.
func AddSingletonFactoryFor[TService any](services *collection.ServiceCollection, key string, factory func(descriptor.Resolver) (TService, error)) error {
	return addFactory(services, key, reflect.TypeOf((*TService)(nil)).Elem(), wrapFactory(factory), false)
}

// AddSingletonFactoryAs registers a typed factory producing
// TImplementation under key as the producer of TService.
func AddSingletonFactoryAs[TService, TImplementation any](services *collection.ServiceCollection, key string, factory func(descriptor.Resolver) (TImplementation, error)) error {
	return addFactoryChecked[TService, TImplementation](services, key, factory, false)
}

// TryAddSingletonFor registers TService under key unless a keyed entry
// with the same key and service type already exists.
func TryAddSingletonFor[TService any](services *collection.ServiceCollection, key string) error {
	t := reflect.TypeOf((*TService)(nil)).Elem()
	return addType(services, key, t, t, true)
}

// TryAddSingletonAs registers TImplementation under key as an
// implementation of TService unless a keyed entry with the same key and
// service type already exists.
func TryAddSingletonAs[TService, TImplementation any](services *collection.ServiceCollection, key string) error {
	return addTypeChecked[TService, TImplementation](services, key, true)
}

// TryAddSingletonInstanceFor registers a pre-built instance of TService
// under key unless a keyed entry with the same key and service type
// already exists.
func TryAddSingletonInstanceFor[TService any](services *collection.ServiceCollection, key string, instance TService) error {
	return addInstance(services, key, reflect.TypeOf((*TService)(nil)).Elem(), instance, true)
}

// TryAddSingletonFactoryFor registers a typed factory under key unless a
// keyed entry with the same key and service type already exists.
func TryAddSingletonFactoryFor[TService any](services *collection.ServiceCollection, key string, factory func(descriptor.Resolver) (TService, error)) error {
	return addFactory(services, key, reflect.TypeOf((*TService)(nil)).Elem(), wrapFactory(factory), true)
}

// TryAddSingletonFactoryAs registers a typed factory producing
// TImplementation under key unless a keyed entry with the same key and
// service type already exists.
func TryAddSingletonFactoryAs[TService, TImplementation any](services *collection.ServiceCollection, key string, factory func(descriptor.Resolver) (TImplementation, error)) error {
	return addFactoryChecked[TService, TImplementation](services, key, factory, true)
}

// --- helpers ---

func addTypeChecked[TService, TImplementation any](services *collection.ServiceCollection, key string, tryAdd bool) error {
	if services == nil {
		return errors.MissingReference("services")
	}
	serviceType := reflect.TypeOf((*TService)(nil)).Elem()
	implType := reflect.TypeOf((*TImplementation)(nil)).Elem()
	res, err := descriptor.NewResourceType(key, serviceType, implType)
	if err != nil {
		return err
	}
	if err := checkAssignable(serviceType, implType); err != nil {
		return err
	}
	return addResource(services, res, tryAdd)
}

func addFactoryChecked[TService, TImplementation any](services *collection.ServiceCollection, key string, factory func(descriptor.Resolver) (TImplementation, error), tryAdd bool) error {
	if services == nil {
		return errors.MissingReference("services")
	}
	serviceType := reflect.TypeOf((*TService)(nil)).Elem()
	implType := reflect.TypeOf((*TImplementation)(nil)).Elem()
	res, err := descriptor.NewResourceFactory(key, serviceType, wrapFactory(factory))
	if err != nil {
		return err
	}
	if err := checkAssignable(serviceType, implType); err != nil {
		return err
	}
	return addResource(services, res, tryAdd)
}

// checkAssignable verifies that TImplementation is assignable to TService.
// Go generics cannot express the subtype constraint, so the check runs at
// registration time.
func checkAssignable(serviceType, implType reflect.Type) error {
	if implType.AssignableTo(serviceType) {
		return nil
	}
	return errors.TypeMismatch(util.TypeName(serviceType), util.TypeName(implType)).
		WithDetail("reason", "implementation type is not assignable to service type")
}

// wrapFactory adapts a typed factory to the untyped descriptor.Factory,
// preserving nilness so missing factories still fail validation.
func wrapFactory[T any](factory func(descriptor.Resolver) (T, error)) descriptor.Factory {
	if factory == nil {
		return nil
	}
	return func(r descriptor.Resolver) (any, error) {
		return factory(r)
	}
}
