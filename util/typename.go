package util

import "reflect"

// TypeName returns a stable, human-readable name for a reflect.Type,
// suitable for log fields and error messages. Pointer types are rendered
// with a leading asterisk; a nil type renders as "<nil>".
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == reflect.Ptr {
		return "*" + TypeName(t.Elem())
	}
	if t.Name() == "" {
		// Anonymous or composite types fall back to Go syntax.
		return t.String()
	}
	if t.PkgPath() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.Name()
}
