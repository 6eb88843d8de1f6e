// SPDX-License-Identifier: MIT
// Package color: functional configuration.
// This file defines:
//   - Ordering, the greedy vertex-ordering heuristics,
//   - Option / options with documented defaults,
//   - With* constructors (panic only on nonsensical values),
//   - gatherOptions, the single internal resolution point.

package color

// Ordering selects the sequence in which the greedy algorithms visit
// vertices. Correctness is order-independent; only color count varies.
type Ordering int

const (
	// NaturalOrder visits vertices 0..n-1; fully deterministic and the
	// order the worked examples assume.
	NaturalOrder Ordering = iota

	// LargestFirst visits vertices by descending degree (ties by index).
	LargestFirst

	// SmallestLast repeatedly removes a minimum-degree vertex and colors
	// in reverse removal order.
	SmallestLast
)

// DefaultOrdering is the documented default heuristic.
const DefaultOrdering = NaturalOrder

// Option mutates internal options; safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying setters.
type options struct {
	ordering Ordering
	byRows   bool
}

// WithOrdering selects the greedy visiting heuristic.
// Panics with a stable message on an unknown Ordering (programmer error).
// Complexity: O(1).
func WithOrdering(ord Ordering) Option {
	if ord != NaturalOrder && ord != LargestFirst && ord != SmallestLast {
		panic(panicUnknownOrdering)
	}

	return func(o *options) { o.ordering = ord }
}

// WithRows makes Jacobian color rows instead of columns, so the
// compressed products are vector-matrix (VJP-style) products. Ignored by
// Hessian, where the symmetric pattern makes both sides identical.
// Complexity: O(1).
func WithRows() Option {
	return func(o *options) { o.byRows = true }
}

// gatherOptions applies setters over documented defaults;
// last-writer-wins.
func gatherOptions(opts ...Option) options {
	o := options{ordering: DefaultOrdering, byRows: false}
	for _, set := range opts {
		set(&o)
	}

	return o
}
