// SPDX-License-Identifier: MIT
// Package: lvtopo/sorter
//
// errors.go — sentinel errors for the sorter package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (offending group, cycle path) is attached with %w wrapping.
//   • Nothing in this package panics on user input.

package sorter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConstraintViolation indicates that an item's declaration is invalid on
// its own: its group appears in its before/after lists, or the lists name the
// unassociated sentinel. Nothing from the offending call is appended.
var ErrConstraintViolation = errors.New("sorter: constraint violation")

// ErrDependencyCycle indicates that the constraints accumulated in a store
// admit no total order. The published order is left unchanged.
var ErrDependencyCycle = errors.New("sorter: dependency cycle")

// constraintErrorf wraps ErrConstraintViolation with a formatted reason.
func constraintErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConstraintViolation, fmt.Sprintf(format, args...))
}

// cycleError wraps ErrDependencyCycle with the calling operation's context
// and, when known, the group labels along one offending cycle.
//
// The rendered path closes on its first element, e.g. "b -> a -> c -> b".
func cycleError(context string, path []string) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: %s", ErrDependencyCycle, context)
	}
	closed := append(append([]string(nil), path...), path[0])

	return fmt.Errorf("%w: %s (cycle: %s)", ErrDependencyCycle, context, strings.Join(closed, " -> "))
}

// addContext reproduces the message used when an Add call closes a cycle.
func addContext(group string) string {
	if group == NoGroup {
		return "item created a dependencies error"
	}

	return "item added into group " + group + " created a dependencies error"
}

// Operation contexts for the other mutating calls.
const (
	mergeContext = "merge created a dependencies error"
	sortContext  = "sort created a dependencies error"
)
