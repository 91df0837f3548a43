// Package collection implements the host service collection: an ordered,
// append-only sequence of descriptors that the registration API writes
// into and the resolver reads from.
//
// The collection is deliberately not safe for concurrent use. Registration
// is a startup-time activity that completes before resolution begins, and
// the collection is not intended for concurrent mutation.
package collection

import (
	"context"

	"github.com/kbukum/regkit/descriptor"
	"github.com/kbukum/regkit/errors"
	"github.com/kbukum/regkit/logger"
	"github.com/kbukum/regkit/observability"
	"github.com/kbukum/regkit/util"
)

// ServiceCollection is an ordered, append-only sequence of descriptors.
// Duplicate service types are permitted; uniqueness of (key, service type)
// pairs is enforced only by the TryAdd registration family, not here.
type ServiceCollection struct {
	descriptors   []descriptor.Descriptor
	log           *logger.Logger
	metrics       *observability.Metrics
	warnOnReplace bool
}

// Option configures a ServiceCollection.
type Option func(*ServiceCollection)

// WithLogger sets the logger used for registration diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(c *ServiceCollection) { c.log = l }
}

// WithMetrics attaches metric instruments; registrations are recorded on
// them as they happen.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *ServiceCollection) { c.metrics = m }
}

// WithWarnOnReplace logs a warning when an appended keyed entry shares its
// key and service type with an existing one, since the later entry will
// shadow the earlier one under the provider's last-registered-wins policy.
func WithWarnOnReplace() Option {
	return func(c *ServiceCollection) { c.warnOnReplace = true }
}

// WithCapacity pre-sizes the backing slice.
func WithCapacity(n int) Option {
	return func(c *ServiceCollection) {
		if n > 0 {
			c.descriptors = make([]descriptor.Descriptor, 0, n)
		}
	}
}

// New creates an empty service collection.
func New(opts ...Option) *ServiceCollection {
	c := &ServiceCollection{}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.WithComponent("collection")
	}
	return c
}

// Append adds a descriptor to the end of the collection. The collection
// never inspects, mutates, or removes a descriptor after insertion.
func (c *ServiceCollection) Append(d descriptor.Descriptor) error {
	if d == nil {
		return errors.MissingReference("descriptor")
	}

	if c.warnOnReplace {
		c.warnIfShadowing(d)
	}
	c.descriptors = append(c.descriptors, d)

	_, keyed := d.(descriptor.Keyed)
	c.log.Debug("descriptor appended", map[string]interface{}{
		logger.FieldServiceType: util.TypeName(d.ServiceType()),
		logger.FieldSource:      d.Source().String(),
		logger.FieldLifetime:    d.Lifetime().String(),
		"keyed":                 keyed,
	})
	if c.metrics != nil {
		c.metrics.RecordRegistration(context.Background(),
			observability.OutcomeAdded, d.Source().Kind().String(), keyed)
	}
	return nil
}

// warnIfShadowing logs when a keyed entry duplicates an existing
// (key, service type) pair.
func (c *ServiceCollection) warnIfShadowing(d descriptor.Descriptor) {
	keyed, ok := d.(descriptor.Keyed)
	if !ok {
		return
	}
	for _, existing := range c.descriptors {
		ek, ok := existing.(descriptor.Keyed)
		if ok && ek.ResourceKey() == keyed.ResourceKey() && existing.ServiceType() == d.ServiceType() {
			c.log.Warn("keyed registration shadows an earlier one", map[string]interface{}{
				logger.FieldResourceKey: keyed.ResourceKey(),
				logger.FieldServiceType: util.TypeName(d.ServiceType()),
			})
			return
		}
	}
}

// Len returns the number of descriptors in the collection.
func (c *ServiceCollection) Len() int { return len(c.descriptors) }

// At returns the descriptor at index i. It panics if i is out of range,
// matching slice indexing semantics.
func (c *ServiceCollection) At(i int) descriptor.Descriptor { return c.descriptors[i] }

// Descriptors returns a copy of the collection's entries in registration
// order.
func (c *ServiceCollection) Descriptors() []descriptor.Descriptor {
	out := make([]descriptor.Descriptor, len(c.descriptors))
	copy(out, c.descriptors)
	return out
}

// Range calls fn for each descriptor in registration order until fn
// returns false.
func (c *ServiceCollection) Range(fn func(d descriptor.Descriptor) bool) {
	for _, d := range c.descriptors {
		if !fn(d) {
			return
		}
	}
}

// Logger returns the collection's logger.
func (c *ServiceCollection) Logger() *logger.Logger { return c.log }

// Metrics returns the attached metric instruments, or nil.
func (c *ServiceCollection) Metrics() *observability.Metrics { return c.metrics }
