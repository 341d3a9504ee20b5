package container

import "fmt"

// Lifecycle selects how often a binding builds a new instance.
type Lifecycle int

const (
	// Transient builds a fresh instance on every resolution.
	Transient Lifecycle = iota

	// Singleton builds one instance on first resolution and hands the same
	// instance out for as long as the Resolver lives.
	Singleton
)

// String returns "transient" or "singleton".
func (l Lifecycle) String() string {
	switch l {
	case Transient:
		return "transient"
	case Singleton:
		return "singleton"
	default:
		return fmt.Sprintf("Lifecycle(%d)", int(l))
	}
}

// MarshalText lets lifecycles appear by name in JSON and YAML output.
func (l Lifecycle) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText.
func (l *Lifecycle) UnmarshalText(text []byte) error {
	switch string(text) {
	case "transient":
		*l = Transient
	case "singleton":
		*l = Singleton
	default:
		return fmt.Errorf("container: unknown lifecycle %q", text)
	}
	return nil
}

func (l Lifecycle) valid() bool { return l == Transient || l == Singleton }
