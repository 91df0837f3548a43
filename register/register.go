package register

import (
	"context"
	"reflect"

	"github.com/kbukum/regkit/collection"
	"github.com/kbukum/regkit/descriptor"
	"github.com/kbukum/regkit/errors"
	"github.com/kbukum/regkit/logger"
	"github.com/kbukum/regkit/observability"
	"github.com/kbukum/regkit/util"
)

// AddSingleton registers serviceType under key using serviceType itself as
// the implementation.
func AddSingleton(services *collection.ServiceCollection, key string, serviceType reflect.Type) error {
	return addType(services, key, serviceType, serviceType, false)
}

// AddSingletonType registers implementationType under key as an
// implementation of serviceType.
func AddSingletonType(services *collection.ServiceCollection, key string, serviceType, implementationType reflect.Type) error {
	return addType(services, key, serviceType, implementationType, false)
}

// AddSingletonInstance registers a pre-built instance under key as an
// implementation of serviceType.
func AddSingletonInstance(services *collection.ServiceCollection, key string, serviceType reflect.Type, instance any) error {
	return addInstance(services, key, serviceType, instance, false)
}

// AddSingletonFactory registers a factory under key as the producer of
// serviceType.
func AddSingletonFactory(services *collection.ServiceCollection, key string, serviceType reflect.Type, factory descriptor.Factory) error {
	return addFactory(services, key, serviceType, factory, false)
}

// TryAddSingleton registers serviceType under key unless a keyed entry
// with the same key and service type already exists.
func TryAddSingleton(services *collection.ServiceCollection, key string, serviceType reflect.Type) error {
	return addType(services, key, serviceType, serviceType, true)
}

// TryAddSingletonType registers implementationType under key unless a
// keyed entry with the same key and service type already exists.
func TryAddSingletonType(services *collection.ServiceCollection, key string, serviceType, implementationType reflect.Type) error {
	return addType(services, key, serviceType, implementationType, true)
}

// TryAddSingletonInstance registers a pre-built instance under key unless
// a keyed entry with the same key and service type already exists.
func TryAddSingletonInstance(services *collection.ServiceCollection, key string, serviceType reflect.Type, instance any) error {
	return addInstance(services, key, serviceType, instance, true)
}

// TryAddSingletonFactory registers a factory under key unless a keyed
// entry with the same key and service type already exists.
func TryAddSingletonFactory(services *collection.ServiceCollection, key string, serviceType reflect.Type, factory descriptor.Factory) error {
	return addFactory(services, key, serviceType, factory, true)
}

// --- shared construction and append path ---

func addType(services *collection.ServiceCollection, key string, serviceType, implementationType reflect.Type, tryAdd bool) error {
	if services == nil {
		return errors.MissingReference("services")
	}
	res, err := descriptor.NewResourceType(key, serviceType, implementationType)
	if err != nil {
		return err
	}
	return addResource(services, res, tryAdd)
}

func addInstance(services *collection.ServiceCollection, key string, serviceType reflect.Type, instance any, tryAdd bool) error {
	if services == nil {
		return errors.MissingReference("services")
	}
	res, err := descriptor.NewResourceInstance(key, serviceType, instance)
	if err != nil {
		return err
	}
	return addResource(services, res, tryAdd)
}

func addFactory(services *collection.ServiceCollection, key string, serviceType reflect.Type, factory descriptor.Factory, tryAdd bool) error {
	if services == nil {
		return errors.MissingReference("services")
	}
	res, err := descriptor.NewResourceFactory(key, serviceType, factory)
	if err != nil {
		return err
	}
	return addResource(services, res, tryAdd)
}

// addResource appends the descriptor, or drops it when tryAdd is set and a
// conflicting keyed entry already exists. The drop is the designed
// idempotence path, not an error.
func addResource(services *collection.ServiceCollection, res *descriptor.Resource, tryAdd bool) error {
	if tryAdd && hasConflict(services, res.ResourceKey(), res.ServiceType()) {
		services.Logger().Debug("registration skipped, key already bound", map[string]interface{}{
			logger.FieldResourceKey: res.ResourceKey(),
			logger.FieldServiceType: util.TypeName(res.ServiceType()),
			logger.FieldDescriptor:  res.ID().String(),
		})
		if m := services.Metrics(); m != nil {
			m.RecordRegistration(context.Background(),
				observability.OutcomeSkipped, res.Source().Kind().String(), true)
		}
		return nil
	}
	return services.Append(res)
}

// hasConflict scans the collection for an existing keyed entry with the
// same resource key and service type. Entries lacking the keyed capability
// never conflict, whatever their service type.
func hasConflict(services *collection.ServiceCollection, key string, serviceType reflect.Type) bool {
	found := false
	services.Range(func(d descriptor.Descriptor) bool {
		keyed, ok := d.(descriptor.Keyed)
		if ok && keyed.ResourceKey() == key && d.ServiceType() == serviceType {
			found = true
			return false
		}
		return true
	})
	return found
}
