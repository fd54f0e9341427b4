// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package poly provides bounded in-place polymorphic value containers
// in Go.
//
// The core type [Poly] holds a single value of any subtype implementing a
// shared capability interface, stored inline in a fixed-size region rather
// than behind a heap allocation. Slices of Poly give homogeneous,
// contiguous, cache-friendly collections of heterogeneous behaviorally
// polymorphic values with no per-element allocation, at the cost of a hard
// per-element size ceiling fixed by the container type.
//
// # Design Philosophy
//
// poly provides:
//   - Inline storage with no heap allocation on the construct/relocate/
//     dispose hot path (admission of a subtype's first use may allocate)
//   - Admission checks that make storing an oversized, misaligned, or
//     GC-unsafe subtype unrepresentable through the public API
//   - Relocation that preserves dynamic type identity without assuming
//     anything about the shared interface's own copy or move semantics
//
// # F-Bounded Movers
//
// The relocation strategy is a type parameter constrained by the F-bounded
// [Mover] interface (type M Mover[M, B]), so mover state is rebound by
// value with no erasure or allocation:
//
//   - [Universal]: stateful; captures one [RawMove] specialized to the
//     stored subtype when that subtype enters the container. Costs one
//     function word per container; subtypes need implement nothing beyond
//     the shared interface.
//   - [Virtual]: stateless; relocates through the stored value's own
//     [Relocatable.MoveTo]. Costs nothing per container; every subtype must
//     implement the relocation capability, enforced at compile time by
//     Virtual's constraint.
//
// # Storage Regions
//
// Any pointer-free ("plain") type serves as a region; its size and
// alignment bound the admissible subtypes. [Slot16] through [Slot256] cover
// the common word-aligned capacities. Plainness cuts both ways: because the
// region carries no pointer bits for the garbage collector, subtypes
// containing pointers are rejected — a pointer stored into the region would
// not keep its referent alive.
//
// # Admissibility
//
// A subtype T is admissible in Poly[S, B, M] iff sizeof(T) ≤ sizeof(S),
// the alignment of S is a multiple of the alignment of T, S and T are both
// plain, and M can relocate T. The subtype relationship itself is enforced
// at compile time by the PT interface{ *T; B } constraint on every
// admitting operation. The remaining checks run eagerly at each admission
// point and panic with an error naming the failed check; [Check] and
// [CanHold] expose the same checks as a non-panicking predicate for
// generic code, and [StorableIn] exposes the layout clause alone.
//
// # Value Lifecycle
//
// Construction:
//
//   - [Of]: construct from a value
//   - [Make]: construct in place from an init function
//   - [Take]: move-construct from another container
//
// Mutation (each disposes the superseded value exactly once):
//
//   - [Assign]: replace with a value, rebinding to its subtype
//   - [Emplace]: replace with a value constructed in place
//   - [Poly.MoveFrom]: move-assign from another container
//   - [Poly.Swap]: exchange values and mover states through one transient
//     region
//
// Observation and teardown:
//
//   - [Poly.Get]: shared-interface view of the stored value; downcast by
//     type assertion
//   - [Poly.Dispose]: destroy the stored value; ends the lifecycle
//
// Copying a live Poly is not supported: an interface-level copy cannot be
// assumed to exist or to terminate correctly for an unbounded set of
// subtypes, so no copy operation is exposed and a Poly must not be
// duplicated by plain assignment while it holds a live value.
//
// Moved-from convention: relocation leaves the source holding the zero
// value of its former subtype. The source container stays valid — it can be
// assigned to, moved from again, or disposed — and Dispose implementations
// must therefore accept the zero value.
//
// # Slicing
//
// A [Universal] mover is bound to the exact subtype that entered the
// container. Applying a mover bound to type Base to memory holding a
// struct that embeds Base relocates only the embedded prefix: the
// derived-only state is left behind and the destination's dynamic type is
// Base. This is specified behavior of the raw primitive, not a defect; the
// container itself never desynchronizes mover and bytes because both are
// installed as one unit.
//
// # Concurrency
//
// A Poly confines one logical value to one owner. No operation blocks or
// suspends. Concurrent mutation of the same container is undefined
// behavior; callers sharing a container across goroutines must serialize
// access externally.
//
// # Example
//
//	type Arith interface {
//		poly.Shared
//		poly.Relocatable
//		Eval() int
//	}
//
//	type Pair struct{ A, B int }
//
//	func (p *Pair) Eval() int                 { return p.A + p.B }
//	func (p *Pair) Dispose()                  {}
//	func (p *Pair) MoveTo(dst unsafe.Pointer) { poly.RelocateSelf(p, dst) }
//
//	box := poly.Of[poly.Slot16, Arith, poly.Virtual[Arith]](Pair{3, 4})
//	sum := box.Get().Eval() // 7
package poly
