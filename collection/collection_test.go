package collection

import (
	"reflect"
	"testing"

	"github.com/kbukum/regkit/config"
	"github.com/kbukum/regkit/descriptor"
	"github.com/kbukum/regkit/errors"
)

type store interface {
	Get(key string) string
}

type memoryStore struct{}

func (memoryStore) Get(string) string { return "" }

var (
	storeType  = reflect.TypeOf((*store)(nil)).Elem()
	memoryType = reflect.TypeOf((*memoryStore)(nil)).Elem()
)

func newResource(t *testing.T, key string) *descriptor.Resource {
	t.Helper()
	res, err := descriptor.NewResourceType(key, storeType, memoryType)
	if err != nil {
		t.Fatalf("NewResourceType failed: %v", err)
	}
	return res
}

func TestAppendPreservesOrder(t *testing.T) {
	c := New()

	first := newResource(t, "first")
	second := newResource(t, "second")
	if err := c.Append(first); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := c.Append(second); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if c.Len() != 2 {
		t.Fatalf("expected 2 descriptors, got %d", c.Len())
	}
	if c.At(0) != descriptor.Descriptor(first) || c.At(1) != descriptor.Descriptor(second) {
		t.Error("descriptors must keep registration order")
	}
}

func TestAppendNil(t *testing.T) {
	c := New()
	if err := c.Append(nil); !errors.IsCode(err, errors.ErrCodeMissingReference) {
		t.Errorf("expected MISSING_REFERENCE, got %v", err)
	}
	if c.Len() != 0 {
		t.Error("failed append must not modify the collection")
	}
}

func TestDuplicateServiceTypesPermitted(t *testing.T) {
	c := New()
	// The collection itself never enforces uniqueness, even for identical
	// keyed entries; that is the TryAdd family's job.
	if err := c.Append(newResource(t, "a")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := c.Append(newResource(t, "a")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("expected 2 descriptors, got %d", c.Len())
	}
}

func TestDescriptorsReturnsCopy(t *testing.T) {
	c := New()
	if err := c.Append(newResource(t, "a")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	snapshot := c.Descriptors()
	snapshot[0] = nil
	if c.At(0) == nil {
		t.Error("mutating the snapshot must not affect the collection")
	}
}

func TestRangeStopsEarly(t *testing.T) {
	c := New()
	for _, key := range []string{"a", "b", "c"} {
		if err := c.Append(newResource(t, key)); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	seen := 0
	c.Range(func(descriptor.Descriptor) bool {
		seen++
		return seen < 2
	})
	if seen != 2 {
		t.Errorf("expected Range to stop after 2 entries, saw %d", seen)
	}
}

func TestRegistrations(t *testing.T) {
	c := New()
	if err := c.Append(newResource(t, "primary")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	svc, err := descriptor.NewService(storeType, descriptor.TypeSource(memoryType), descriptor.Transient)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	if err := c.Append(svc); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	infos := c.Registrations()
	if len(infos) != 2 {
		t.Fatalf("expected 2 registrations, got %d", len(infos))
	}

	if !infos[0].Keyed || infos[0].Key != "primary" {
		t.Errorf("expected a keyed entry with key 'primary', got %+v", infos[0])
	}
	if infos[0].ID == "" {
		t.Error("expected keyed entries to expose a descriptor ID")
	}
	if infos[0].Lifetime != "singleton" {
		t.Errorf("expected singleton lifetime, got %q", infos[0].Lifetime)
	}

	if infos[1].Keyed || infos[1].Key != "" {
		t.Errorf("expected an unkeyed entry, got %+v", infos[1])
	}
	if infos[1].Lifetime != "transient" {
		t.Errorf("expected transient lifetime, got %q", infos[1].Lifetime)
	}
}

func TestWarnOnReplaceDoesNotBlockAppend(t *testing.T) {
	c := New(WithWarnOnReplace())
	if err := c.Append(newResource(t, "a")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := c.Append(newResource(t, "a")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("warn-on-replace must only log, not block: got %d", c.Len())
	}
}

func TestNewFromConfig(t *testing.T) {
	c := NewFromConfig(config.RegistryConfig{CapacityHint: 8, WarnOnReplace: true})
	if c.Len() != 0 {
		t.Fatalf("expected an empty collection, got %d", c.Len())
	}
	if !c.warnOnReplace {
		t.Error("expected warn-on-replace to be enabled")
	}
	if err := c.Append(newResource(t, "a")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
}
