package descriptor

import (
	"fmt"
	"reflect"

	"github.com/kbukum/regkit/errors"
	"github.com/kbukum/regkit/util"
)

// Service is a plain, unkeyed descriptor: the collection's native entry
// type. It supports any lifetime and never satisfies the Keyed capability.
type Service struct {
	serviceType reflect.Type
	source      Source
	lifetime    Lifetime
}

// NewService constructs an unkeyed descriptor.
func NewService(serviceType reflect.Type, source Source, lifetime Lifetime) (*Service, error) {
	if serviceType == nil {
		return nil, errors.MissingReference("serviceType")
	}
	if source.payloadNil() {
		return nil, errors.MissingReference(source.paramName())
	}
	return &Service{
		serviceType: serviceType,
		source:      source,
		lifetime:    lifetime,
	}, nil
}

// ServiceType returns the type the entry is registered under.
func (s *Service) ServiceType() reflect.Type { return s.serviceType }

// Source returns the implementation source.
func (s *Service) Source() Source { return s.source }

// Lifetime returns the entry's lifetime.
func (s *Service) Lifetime() Lifetime { return s.lifetime }

// String returns a short description for logs.
func (s *Service) String() string {
	return fmt.Sprintf("service %s %s %s", util.TypeName(s.serviceType), s.source, s.lifetime)
}
