// SPDX-License-Identifier: MIT
// Package: lvtopo/sorter
//
// options.go — functional options for items (Add/AddAll) and for the Sorter
// itself (New).
//
// Contract:
//   • Options only record values; validation happens in Add/AddAll so that
//     bad declarations surface as ErrConstraintViolation, never as panics.
//   • Options are applied left-to-right; later options override earlier ones,
//     except WithBefore/WithAfter which accumulate.

package sorter

import (
	"io"
	"log/slog"
)

// NoGroup is the group carried by items registered without WithGroup.
// It may never be named in WithBefore or WithAfter.
const NoGroup = "?"

// Option configures the placement of the items passed to a single Add or
// AddAll call. All items of one call share the same options.
type Option func(*itemOptions)

// itemOptions is the resolved declaration shared by one batch of items.
type itemOptions struct {
	group  string   // NoGroup unless WithGroup is given
	before []string // groups the items must precede, in declaration order
	after  []string // groups the items must follow, in declaration order
	rank   float64  // explicit tie-break; valid only if ranked
	ranked bool     // true once WithSort is applied
}

// newItemOptions applies opts over the defaults and normalizes the result.
func newItemOptions(opts []Option) itemOptions {
	o := itemOptions{group: NoGroup}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.before = dedupe(o.before)
	o.after = dedupe(o.after)

	return o
}

// WithGroup places the items into group. An empty group means NoGroup.
func WithGroup(group string) Option {
	return func(o *itemOptions) {
		if group == "" {
			group = NoGroup
		}
		o.group = group
	}
}

// WithBefore declares that the items must precede every member of each of
// the given groups. Repeated use accumulates; duplicates are ignored.
func WithBefore(groups ...string) Option {
	return func(o *itemOptions) {
		o.before = append(o.before, groups...)
	}
}

// WithAfter declares that the items must follow every member of each of the
// given groups. Repeated use accumulates; duplicates are ignored.
func WithAfter(groups ...string) Option {
	return func(o *itemOptions) {
		o.after = append(o.after, groups...)
	}
}

// WithSort sets an explicit tie-break rank that replaces the registration
// sequence when ordering otherwise unconstrained items. Ranks are compared
// with sequences of unranked items in one key space, which is what lets
// Merge interleave items from different stores.
func WithSort(rank float64) Option {
	return func(o *itemOptions) {
		o.rank = rank
		o.ranked = true
	}
}

// SorterOption configures a Sorter at construction time.
type SorterOption func(*sorterConfig)

// sorterConfig holds construction-time settings shared by all payload types.
type sorterConfig struct {
	logger *slog.Logger
}

// defaultSorterConfig returns a config whose logger discards everything.
func defaultSorterConfig() sorterConfig {
	return sorterConfig{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// WithLogger routes the sorter's diagnostics to logger. Sort results are
// logged at Debug level and cycles at Warn. A nil logger has no effect.
func WithLogger(logger *slog.Logger) SorterOption {
	return func(c *sorterConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// dedupe drops repeated labels while keeping the first occurrence's position.
func dedupe(labels []string) []string {
	if len(labels) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}

	return out
}
