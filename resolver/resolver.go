// Package resolver implements a minimal resolution engine over a service
// collection.
//
// Lookup is strictly by service type; resource keys carried by keyed
// descriptors play no part here, and keyed entries resolve like any other
// registration. When several entries share a service type the
// last-registered one wins.
package resolver

import (
	"context"
	"reflect"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/regkit/collection"
	"github.com/kbukum/regkit/descriptor"
	"github.com/kbukum/regkit/errors"
	"github.com/kbukum/regkit/logger"
	"github.com/kbukum/regkit/observability"
	"github.com/kbukum/regkit/util"
)

// Provider resolves services from a snapshot of a collection. Unlike the
// collection, a Provider is safe for concurrent use: the snapshot is
// immutable and singleton construction is guarded per entry.
//
// A Provider acts as a single scope; scoped descriptors behave like
// singletons within it.
type Provider struct {
	entries map[reflect.Type][]*entry
	log     *logger.Logger
	metrics *observability.Metrics
	tracer  trace.Tracer
}

// entry pairs a descriptor with its lazily constructed value.
type entry struct {
	desc  descriptor.Descriptor
	once  sync.Once
	value any
	err   error
}

// Option configures a Provider.
type Option func(*Provider)

// WithLogger sets the logger used for resolution diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(p *Provider) { p.log = l }
}

// WithMetrics attaches metric instruments; resolutions are recorded on
// them as they happen.
func WithMetrics(m *observability.Metrics) Option {
	return func(p *Provider) { p.metrics = m }
}

// WithTracer enables a span per first-time construction, useful for
// finding slow constructors during startup.
func WithTracer(t trace.Tracer) Option {
	return func(p *Provider) { p.tracer = t }
}

// Build creates a Provider from a snapshot of the collection. Later
// appends to the collection are not visible to the provider.
func Build(services *collection.ServiceCollection, opts ...Option) (*Provider, error) {
	if services == nil {
		return nil, errors.MissingReference("services")
	}

	p := &Provider{
		entries: make(map[reflect.Type][]*entry),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = logger.WithComponent("resolver")
	}

	services.Range(func(d descriptor.Descriptor) bool {
		t := d.ServiceType()
		p.entries[t] = append(p.entries[t], &entry{desc: d})
		return true
	})
	return p, nil
}

// Resolve returns the registered value for the given service type. With
// duplicate registrations the last-registered entry is used.
func (p *Provider) Resolve(t reflect.Type) (any, error) {
	start := time.Now()
	value, err := p.resolve(t)

	if p.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		p.metrics.RecordResolve(context.Background(), util.TypeName(t), status, time.Since(start))
	}
	return value, err
}

func (p *Provider) resolve(t reflect.Type) (any, error) {
	if t == nil {
		return nil, errors.MissingReference("serviceType")
	}

	candidates, ok := p.entries[t]
	if !ok || len(candidates) == 0 {
		return nil, errors.NotFound(util.TypeName(t))
	}
	return candidates[len(candidates)-1].resolve(p)
}

// resolve constructs the entry's value according to its lifetime.
func (e *entry) resolve(p *Provider) (any, error) {
	if e.desc.Lifetime() == descriptor.Transient {
		return p.construct(e.desc)
	}

	// Singleton and (within this provider) scoped entries construct once.
	e.once.Do(func() {
		e.value, e.err = p.construct(e.desc)
	})
	return e.value, e.err
}

// construct produces a value from the descriptor's implementation source.
func (p *Provider) construct(d descriptor.Descriptor) (any, error) {
	if p.tracer != nil {
		_, span := p.tracer.Start(context.Background(), "resolver.construct", trace.WithAttributes(
			attribute.String("service_type", util.TypeName(d.ServiceType())),
			attribute.String("source", d.Source().String()),
		))
		defer span.End()
	}

	src := d.Source()
	switch src.Kind() {
	case descriptor.SourceInstance:
		return src.Instance(), nil

	case descriptor.SourceFactory:
		value, err := src.Factory()(p)
		if err != nil {
			p.log.Error("factory failed", logger.ErrorFields("construct", err))
			return nil, errors.Internal(err).
				WithDetail("service_type", util.TypeName(d.ServiceType()))
		}
		return value, nil

	case descriptor.SourceType:
		return instantiate(src.ImplementationType())

	default:
		return nil, errors.Internal(nil).
			WithDetail("reason", "descriptor has no implementation source")
	}
}

// instantiate creates a zero-initialized value of the implementation type.
// Pointer types yield a pointer to a fresh element; interface types cannot
// be instantiated.
func instantiate(t reflect.Type) (any, error) {
	switch t.Kind() {
	case reflect.Interface:
		return nil, errors.TypeMismatch("concrete type", util.TypeName(t)).
			WithDetail("reason", "cannot instantiate an interface type")
	case reflect.Ptr:
		return reflect.New(t.Elem()).Interface(), nil
	default:
		return reflect.New(t).Elem().Interface(), nil
	}
}
