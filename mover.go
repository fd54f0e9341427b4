// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poly

import "unsafe"

// RawMove is the relocation primitive: it moves the value stored at src
// into dst and leaves src moved-from (the zero value of the concrete
// subtype). A RawMove is always specialized to one concrete subtype and
// must never fail; applying it to memory holding a different subtype
// slices the value (see the package documentation).
type RawMove func(src, dst unsafe.Pointer)

// RawMoveFor returns the RawMove specialized to T: copy sizeof(T) bytes
// to the destination, then zero the source.
func RawMoveFor[T any]() RawMove {
	return func(src, dst unsafe.Pointer) {
		s := (*T)(src)
		*(*T)(dst) = *s
		var zero T
		*s = zero
	}
}

// Relocatable is the relocation capability required by [Virtual] movers.
// A subtype implements it by delegating to [RelocateSelf]:
//
//	func (c *Circle) MoveTo(dst unsafe.Pointer) { poly.RelocateSelf(c, dst) }
//
// MoveTo must move the receiver's value to dst and leave the receiver
// moved-from. Because the method is declared on the concrete pointer type,
// dynamic dispatch through the shared interface reaches the exact subtype,
// which is what preserves dynamic identity across relocation.
type Relocatable interface {
	MoveTo(dst unsafe.Pointer)
}

// RelocateSelf moves *src to dst and zeroes *src.
// It is the canonical MoveTo body for [Relocatable] subtypes.
func RelocateSelf[T any](src *T, dst unsafe.Pointer) {
	*(*T)(dst) = *src
	var zero T
	*src = zero
}

// Mover is the F-bounded relocation strategy interface.
// M knows its own concrete type, so rebinding to a new subtype returns
// fresh mover state by value, without allocation or type erasure.
//
// Two implementations are provided: [Universal] (stateful, one function
// word of container overhead, no demands on subtypes) and [Virtual]
// (stateless, zero overhead, subtypes must implement [Relocatable]).
// Custom movers must guarantee that Relocate cannot fail and must report
// admissibility honestly through Movable.
type Mover[M, B any] interface {
	// Rebind returns mover state bound to the subtype whose relocation
	// primitive is raw. Stateless movers ignore raw and return themselves.
	Rebind(raw RawMove) M

	// Relocate moves the value stored at from into to, leaving the source
	// moved-from. src is the shared-interface view of that same value;
	// stateless movers dispatch through it, stateful movers use from
	// directly. The dynamic type of the value is preserved only when the
	// mover is bound to that exact type.
	Relocate(src B, from, to unsafe.Pointer)

	// Movable reports whether this mover strategy can relocate the subtype
	// witnessed by pt, a nil pointer of the candidate's pointer type.
	Movable(pt any) bool
}

// Universal is the stateful mover: it carries one [RawMove] specialized
// to the subtype currently stored in the container. Every plain subtype is
// movable by it, at the cost of one function word per container and the
// obligation to rebind on every type-changing mutation.
type Universal[B any] struct {
	move RawMove
}

// Rebind returns a Universal mover bound to the subtype of raw.
func (Universal[B]) Rebind(raw RawMove) Universal[B] { return Universal[B]{move: raw} }

// Relocate applies the captured relocation primitive.
func (m Universal[B]) Relocate(_ B, from, to unsafe.Pointer) { m.move(from, to) }

// Movable reports true: any plain value is relocatable by copy-and-zero.
func (Universal[B]) Movable(any) bool { return true }

// Virtual is the stateless mover: it relocates through the stored value's
// own [Relocatable.MoveTo], so it carries no state and adds no container
// overhead. The price is the constraint on B: the shared interface must
// declare the relocation capability and every subtype must implement it.
type Virtual[B Relocatable] struct{}

// Rebind is a no-op: a Virtual mover has no per-subtype state.
func (Virtual[B]) Rebind(RawMove) Virtual[B] { return Virtual[B]{} }

// Relocate dispatches the relocation to the stored value itself.
func (Virtual[B]) Relocate(src B, _, to unsafe.Pointer) { src.MoveTo(to) }

// Movable reports whether the witnessed subtype implements [Relocatable].
func (Virtual[B]) Movable(pt any) bool {
	_, ok := pt.(Relocatable)
	return ok
}
