package container

import "errors"

// Resolution errors. Returned errors wrap one of these; test with errors.Is.
var (
	ErrUnregisteredCapability = errors.New("container: no binding registered")
	ErrCyclicDependency       = errors.New("container: cyclic dependency")
	ErrTypeMismatch           = errors.New("container: resolved value has the wrong type")
	ErrProvidersBooted        = errors.New("container: providers already booted")
)
