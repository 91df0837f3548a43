package descriptor

import (
	"reflect"

	"github.com/kbukum/regkit/util"
)

// SourceKind identifies which variant of an implementation source is set.
type SourceKind int

const (
	// SourceInvalid is the zero value; descriptors never carry it.
	SourceInvalid SourceKind = iota
	// SourceType instantiates a concrete type via the resolver.
	SourceType
	// SourceInstance returns a pre-built value.
	SourceInstance
	// SourceFactory invokes a factory function with the resolution context.
	SourceFactory
)

// String returns the human-readable name of the source kind.
func (k SourceKind) String() string {
	switch k {
	case SourceType:
		return "type"
	case SourceInstance:
		return "instance"
	case SourceFactory:
		return "factory"
	default:
		return "invalid"
	}
}

// Source is the implementation source of a descriptor: exactly one of a
// concrete implementation type, a pre-built instance, or a factory.
type Source struct {
	kind     SourceKind
	implType reflect.Type
	instance any
	factory  Factory
}

// TypeSource returns a Source that instantiates the given concrete type.
func TypeSource(implementationType reflect.Type) Source {
	return Source{kind: SourceType, implType: implementationType}
}

// InstanceSource returns a Source that yields the given pre-built value.
func InstanceSource(instance any) Source {
	return Source{kind: SourceInstance, instance: instance}
}

// FactorySource returns a Source that invokes the given factory.
func FactorySource(factory Factory) Source {
	return Source{kind: SourceFactory, factory: factory}
}

// Kind returns which variant is set.
func (s Source) Kind() SourceKind { return s.kind }

// ImplementationType returns the concrete type for a type source, or nil.
func (s Source) ImplementationType() reflect.Type { return s.implType }

// Instance returns the pre-built value for an instance source, or nil.
func (s Source) Instance() any { return s.instance }

// Factory returns the factory for a factory source, or nil.
func (s Source) Factory() Factory { return s.factory }

// String returns a short description of the source for logs.
func (s Source) String() string {
	switch s.kind {
	case SourceType:
		return "type(" + util.TypeName(s.implType) + ")"
	case SourceInstance:
		return "instance(" + util.TypeName(reflect.TypeOf(s.instance)) + ")"
	case SourceFactory:
		return "factory"
	default:
		return "invalid"
	}
}

// payloadNil reports whether the variant's payload is missing. Used by
// descriptor constructors to reject nil types, instances, and factories.
func (s Source) payloadNil() bool {
	switch s.kind {
	case SourceType:
		return s.implType == nil
	case SourceInstance:
		if s.instance == nil {
			return true
		}
		// Catch typed nils (e.g. a nil *T stored in an any).
		v := reflect.ValueOf(s.instance)
		switch v.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return v.IsNil()
		}
		return false
	case SourceFactory:
		return s.factory == nil
	default:
		return true
	}
}

// paramName returns the conventional parameter name for the variant's
// payload, used in missing-reference errors.
func (s Source) paramName() string {
	switch s.kind {
	case SourceType:
		return "implementationType"
	case SourceInstance:
		return "instance"
	case SourceFactory:
		return "factory"
	default:
		return "source"
	}
}
