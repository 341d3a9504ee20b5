package container

import (
	"fmt"
	"strings"
)

// ── Cycle detection ───────────────────────────────────────────────────────────

// checkAcyclic walks the edges construction of root would follow (the first
// binding of every dependency) and fails with ErrCyclicDependency if the walk
// returns to a binding still on the stack. Unregistered dependencies are
// skipped; construction reports those. Bindings proven acyclic are memoised.
func (r *Resolver) checkAcyclic(root *Binding) error {
	if root.acyclic.Load() {
		return nil
	}

	visited := make(map[*Binding]bool)
	onStack := make(map[*Binding]bool)
	var stack []*Binding

	var dfs func(b *Binding) error
	dfs = func(b *Binding) error {
		visited[b] = true
		onStack[b] = true
		stack = append(stack, b)

		for _, dep := range b.recipe.Deps {
			next, ok := r.registry.first(dep)
			if !ok || next.acyclic.Load() {
				continue
			}
			if onStack[next] {
				return cycleError(stack, next)
			}
			if !visited[next] {
				if err := dfs(next); err != nil {
					return err
				}
			}
		}

		onStack[b] = false
		stack = stack[:len(stack)-1]
		return nil
	}

	if err := dfs(root); err != nil {
		return err
	}
	for b := range visited {
		b.acyclic.Store(true)
	}
	return nil
}

// cycleError renders the loop starting at back, e.g. "a.A -> a.B -> a.A".
func cycleError(stack []*Binding, back *Binding) error {
	start := 0
	for i, b := range stack {
		if b == back {
			start = i
			break
		}
	}
	names := make([]string, 0, len(stack)-start+1)
	for _, b := range stack[start:] {
		names = append(names, b.capability.String())
	}
	names = append(names, back.capability.String())
	return fmt.Errorf("%w: %s", ErrCyclicDependency, strings.Join(names, " -> "))
}

// ── Describe ──────────────────────────────────────────────────────────────────

// BindingInfo is a read-only snapshot of one binding, for diagnostics.
type BindingInfo struct {
	Capability   string    `json:"capability" yaml:"capability"`
	Index        int       `json:"index" yaml:"index"`
	Lifecycle    Lifecycle `json:"lifecycle" yaml:"lifecycle"`
	Dependencies []string  `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	Built        bool      `json:"built" yaml:"built"`
}

// Describe lists every binding in reg: capabilities in first-registration
// order, bindings of a capability in registration order.
func Describe(reg *Registry) []BindingInfo {
	out := make([]BindingInfo, 0, reg.Len())
	for _, c := range reg.Capabilities() {
		for _, b := range reg.Lookup(c) {
			info := BindingInfo{
				Capability: c.String(),
				Index:      b.Index(),
				Lifecycle:  b.Lifecycle(),
				Built:      b.Built(),
			}
			for _, dep := range b.recipe.Deps {
				info.Dependencies = append(info.Dependencies, dep.String())
			}
			out = append(out, info)
		}
	}
	return out
}
