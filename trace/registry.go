// SPDX-License-Identifier: MIT
// Package trace: named-primitive registry.
//
// The method set on Tracer is the closed, compile-time enumerated rule
// set. Programs that dispatch primitives dynamically (interpreters, tape
// replayers) go through this registry instead: look a rule up by name,
// apply it, and treat an unknown name as a hard ErrUnsupportedOp — a
// silent skip would yield a falsely sparse pattern.
//
// Registration is write-once: built-ins cannot be shadowed, and a name
// maps to the same rule for the lifetime of the process (determinism).

package trace

import "sync"

// UnaryRule propagates dependencies through a one-operand primitive.
type UnaryRule func(Tracer) Tracer

// BinaryRule propagates dependencies through a two-operand primitive.
type BinaryRule func(Tracer, Tracer) Tracer

var (
	regMu    sync.RWMutex
	unaryOps = map[string]UnaryRule{
		"neg":   Tracer.Neg,
		"abs":   Tracer.Abs,
		"sin":   Tracer.Sin,
		"cos":   Tracer.Cos,
		"tan":   Tracer.Tan,
		"exp":   Tracer.Exp,
		"log":   Tracer.Log,
		"sqrt":  Tracer.Sqrt,
		"tanh":  Tracer.Tanh,
		"sign":  Tracer.Sign,
		"floor": Tracer.Floor,
		"ceil":  Tracer.Ceil,
		"round": Tracer.Round,
	}
	binaryOps = map[string]BinaryRule{
		"add": Tracer.Add,
		"sub": Tracer.Sub,
		"mul": Tracer.Mul,
		"div": Tracer.Div,
		"pow": Tracer.Pow,
	}
)

// RegisterUnary installs a propagation rule under name.
// Errors: ErrNilRule for a nil rule or empty name, ErrDuplicateOp if the
// name is taken (built-ins included).
func RegisterUnary(name string, rule UnaryRule) error {
	if name == "" || rule == nil {
		return ErrNilRule
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, exists := unaryOps[name]; exists {
		return ErrDuplicateOp
	}
	unaryOps[name] = rule

	return nil
}

// RegisterBinary installs a two-operand propagation rule under name.
// Errors: ErrNilRule, ErrDuplicateOp.
func RegisterBinary(name string, rule BinaryRule) error {
	if name == "" || rule == nil {
		return ErrNilRule
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, exists := binaryOps[name]; exists {
		return ErrDuplicateOp
	}
	binaryOps[name] = rule

	return nil
}

// ApplyUnary applies the rule registered under name to t.
// An unknown name is the hard failure ErrUnsupportedOp.
func ApplyUnary(name string, t Tracer) (Tracer, error) {
	regMu.RLock()
	rule, ok := unaryOps[name]
	regMu.RUnlock()
	if !ok {
		return Tracer{}, ErrUnsupportedOp
	}

	return rule(t), nil
}

// ApplyBinary applies the rule registered under name to (a, b).
// An unknown name is the hard failure ErrUnsupportedOp.
func ApplyBinary(name string, a, b Tracer) (Tracer, error) {
	regMu.RLock()
	rule, ok := binaryOps[name]
	regMu.RUnlock()
	if !ok {
		return Tracer{}, ErrUnsupportedOp
	}

	return rule(a, b), nil
}
