// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poly

import "unsafe"

// Shared is the minimal capability set of stored subtypes: a way to destroy
// the logical value. User-defined shared interfaces embed Shared and add
// the domain's dispatch methods; Virtual-strategy interfaces also embed
// [Relocatable].
//
// Dispose must not fail and must accept the moved-from (zero) value of the
// subtype: moving a value out of a container leaves a zero value behind,
// and that residue is still disposed through the same method.
type Shared interface {
	Dispose()
}

// Poly is a bounded in-place polymorphic container: it holds exactly one
// live value of some subtype of B, stored inline in a region of type S,
// with no heap allocation for the value. S fixes the hard ceiling on
// admissible subtypes; M fixes the relocation strategy.
//
// A Poly is never empty between construction and [Poly.Dispose]. Every
// mutation is a transition from "holding subtype X" to "holding subtype Y"
// that destroys the old value exactly once and keeps the dynamic-type
// record synchronized with the stored bytes.
//
// A live Poly must not be copied: two copies would both claim ownership of
// the logical value and dispose it twice. Move values between containers
// with [Take], [Poly.MoveFrom] and [Poly.Swap] instead. A Poly is not safe
// for concurrent mutation; callers sharing one across goroutines must
// serialize access externally.
type Poly[S any, B Shared, M Mover[M, B]] struct {
	as      func(unsafe.Pointer) B
	mover   M
	storage S
}

// install sets the dynamic-type record and returns the storage address for
// the caller to place the new value at. Deriving bd and installing it
// around value placement is the single internal rebind operation; there is
// no path that changes the stored type without passing through here.
func (p *Poly[S, B, M]) install(bd binding[B]) unsafe.Pointer {
	p.as = bd.as
	p.mover = p.mover.Rebind(bd.raw)
	return unsafe.Pointer(&p.storage)
}

// Of constructs a container holding v. The storage region, shared
// interface and mover strategy are fixed by the explicit type arguments:
//
//	box := poly.Of[poly.Slot16, Arith, poly.Universal[Arith]](Pair{3, 4})
//
// v's subtype must be admissible; an inadmissible subtype panics with the
// admission error before any value is constructed.
func Of[S any, B Shared, M Mover[M, B], T any, PT interface {
	*T
	B
}](v T) Poly[S, B, M] {
	var p Poly[S, B, M]
	*(*T)(p.install(bindingFor[S, B, M, T, PT]())) = v
	return p
}

// Make constructs a container holding a T built in place: the slot starts
// as the zero value of T and init, if non-nil, completes construction
// directly in storage. init must not fail; it runs after the container is
// already bound to T.
func Make[S any, B Shared, M Mover[M, B], T any, PT interface {
	*T
	B
}](init func(*T)) Poly[S, B, M] {
	var p Poly[S, B, M]
	t := (*T)(p.install(bindingFor[S, B, M, T, PT]()))
	if init != nil {
		init(t)
	}
	return p
}

// Take move-constructs a container from other: the new container inherits
// other's mover state and dynamic-type record and relocates other's value
// into its own storage. other is left moved-from (holding the zero value
// of its former subtype) and remains valid to assign to, dispose, or move
// from again.
func Take[S any, B Shared, M Mover[M, B]](other *Poly[S, B, M]) Poly[S, B, M] {
	var p Poly[S, B, M]
	p.as = other.as
	p.mover = other.mover
	p.mover.Relocate(other.Get(), unsafe.Pointer(&other.storage), unsafe.Pointer(&p.storage))
	return p
}

// Assign replaces the stored value with v, rebinding the container to v's
// subtype. The binding for the incoming subtype is derived first — it is
// the only step that can fail, by panicking on an inadmissible subtype —
// so a rejected Assign leaves the container unmodified. The previous value
// is disposed exactly once.
func Assign[S any, B Shared, M Mover[M, B], T any, PT interface {
	*T
	B
}](p *Poly[S, B, M], v T) {
	bd := bindingFor[S, B, M, T, PT]()
	p.Get().Dispose()
	*(*T)(p.install(bd)) = v
}

// Emplace replaces the stored value with a T built in place, like [Make]
// but as a mutation. The previous value is disposed exactly once, the slot
// is reset to the zero value of T, and init, if non-nil, completes
// construction in storage.
func Emplace[S any, B Shared, M Mover[M, B], T any, PT interface {
	*T
	B
}](p *Poly[S, B, M], init func(*T)) {
	bd := bindingFor[S, B, M, T, PT]()
	p.Get().Dispose()
	t := (*T)(p.install(bd))
	var zero T
	*t = zero
	if init != nil {
		init(t)
	}
}

// Get returns the shared-interface view of the stored value. The returned
// interface's dynamic type is the concrete subtype's pointer type, so
// callers that independently know the subtype may downcast:
//
//	if c, ok := shape.Get().(*Circle); ok { c.Radius = 10 }
//
// The view aliases the container's storage; it is invalidated by any
// subsequent mutation of the container.
func (p *Poly[S, B, M]) Get() B {
	return p.as(unsafe.Pointer(&p.storage))
}

// MoveFrom replaces the stored value with other's value, disposing the
// current value and inheriting other's mover state and dynamic-type
// record. other is left moved-from. Moving a container from itself is a
// no-op.
func (p *Poly[S, B, M]) MoveFrom(other *Poly[S, B, M]) {
	if p == other {
		return
	}
	p.Get().Dispose()
	p.as = other.as
	p.mover = other.mover
	p.mover.Relocate(other.Get(), unsafe.Pointer(&other.storage), unsafe.Pointer(&p.storage))
}

// Swap exchanges the logical values and mover states of two containers,
// which may hold different subtypes. The exchange relocates through one
// transient region of type S: p's value to the temporary, other's value to
// p, the temporary to other. Every relocation goes through the mover bound
// to the value being moved, never through a bytewise exchange, so custom
// relocation semantics are honored. The moved-from temporary is disposed
// before the dynamic-type records are exchanged. Swapping a container with
// itself is a no-op.
func (p *Poly[S, B, M]) Swap(other *Poly[S, B, M]) {
	if p == other {
		return
	}
	var tmp S
	tp := unsafe.Pointer(&tmp)
	p.mover.Relocate(p.Get(), unsafe.Pointer(&p.storage), tp)
	other.mover.Relocate(other.Get(), unsafe.Pointer(&other.storage), unsafe.Pointer(&p.storage))
	p.mover.Relocate(p.as(tp), tp, unsafe.Pointer(&other.storage))
	p.as(tp).Dispose()
	p.as, other.as = other.as, p.as
	p.mover, other.mover = other.mover, p.mover
}

// Dispose destroys the stored value through the shared interface. It ends
// the container's lifecycle: the container must not be used again except
// to be reinitialized by assignment from [Take] or a constructor. Dispose
// runs the subtype's Dispose exactly once for the currently held logical
// value; values superseded by earlier mutations were already disposed at
// the time of each transition.
func (p *Poly[S, B, M]) Dispose() {
	p.Get().Dispose()
}
