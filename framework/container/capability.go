package container

import "reflect"

// ── Capability ────────────────────────────────────────────────────────────────

// Capability identifies the contract a consumer asks the container for.
//
// It is only ever used as a lookup key: two capabilities are equal when they
// were built from the same Go type. The reflect.Type inside is a stable type
// identifier, nothing more. The container never inspects constructors.
//
//	type Mailer interface{ Send(to, body string) error }
//
//	key := container.CapabilityOf[Mailer]()
//	key.String() // "github.com/acme/app.Mailer"
type Capability struct {
	typ reflect.Type
}

// CapabilityOf returns the capability for the type parameter T.
//
// Interface types are the usual choice, but any type works:
// CapabilityOf[*Config]() is a perfectly good key.
func CapabilityOf[T any]() Capability {
	return Capability{typ: reflect.TypeOf((*T)(nil)).Elem()}
}

// IsZero reports whether c is the zero Capability.
func (c Capability) IsZero() bool { return c.typ == nil }

// String returns the package-qualified type name of the capability, e.g.
// "github.com/acme/app.Mailer". Unnamed types use their literal spelling.
func (c Capability) String() string {
	if c.typ == nil {
		return "<nil>"
	}
	if c.typ.Name() != "" && c.typ.PkgPath() != "" {
		return c.typ.PkgPath() + "." + c.typ.Name()
	}
	return c.typ.String()
}

// admits reports whether v can be handed out for this capability.
// nil is admitted for interface, pointer, map, slice, chan and func kinds.
func (c Capability) admits(v any) bool {
	if v == nil {
		switch c.typ.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return true
		}
		return false
	}
	t := reflect.TypeOf(v)
	if c.typ.Kind() == reflect.Interface {
		return t.Implements(c.typ)
	}
	return t == c.typ
}
