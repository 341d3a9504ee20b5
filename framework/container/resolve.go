package container

import "fmt"

// ── Typed resolution ──────────────────────────────────────────────────────────

// Resolve returns the instance of the first binding registered for T.
//
//	mailer, err := container.Resolve[Mailer](res)
func Resolve[T any](r *Resolver) (T, error) {
	var zero T
	c := CapabilityOf[T]()
	inst, err := r.Resolve(c)
	if err != nil {
		return zero, err
	}
	return cast[T](c, inst)
}

// ResolveAll returns one instance per binding registered for T, in
// registration order.
//
//	notifiers, err := container.ResolveAll[Notifier](res)
func ResolveAll[T any](r *Resolver) ([]T, error) {
	c := CapabilityOf[T]()
	insts, err := r.ResolveAll(c)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(insts))
	for i, inst := range insts {
		typed, err := cast[T](c, inst)
		if err != nil {
			return nil, err
		}
		out[i] = typed
	}
	return out, nil
}

// MustResolve is like Resolve but panics on error. Meant for bootstrap code
// where a missing binding is a programming error.
func MustResolve[T any](r *Resolver) T {
	v, err := Resolve[T](r)
	if err != nil {
		panic(err.Error())
	}
	return v
}

func cast[T any](c Capability, inst any) (T, error) {
	var zero T
	if inst == nil {
		if c.admits(nil) {
			return zero, nil
		}
		return zero, fmt.Errorf("%w: [%s] resolved to nil", ErrTypeMismatch, c)
	}
	typed, ok := inst.(T)
	if !ok {
		return zero, fmt.Errorf("%w: [%s] resolved to %T", ErrTypeMismatch, c, inst)
	}
	return typed, nil
}
