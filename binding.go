// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poly

import (
	"reflect"
	"sync"
	"unsafe"
)

// A binding is the dynamic-type record of a container: the binder that
// reconstructs the shared-interface view of the storage region, paired with
// the relocation primitive for the same subtype. The two halves are derived
// together and installed together; no code path updates one without the
// other, so the mover can never disagree with the stored bytes about the
// subtype they hold.
type binding[B any] struct {
	as  func(unsafe.Pointer) B
	raw RawMove
}

// bindingKey gives each (storage, base, mover, subtype) tuple a unique
// reflect.Type, so the binding cache is keyed by a single interface value
// and lookups never box.
type bindingKey[S, B, M, T any] struct{}

var bindingCache sync.Map // reflect.Type of bindingKey -> binding[B]

// bindingFor derives the binding for subtype T stored as B in a region S
// moved by M. It panics if T is not admissible; derivation is therefore the
// only fallible step of any mutation and runs before the old value is
// destroyed. Derived bindings are cached per instantiation, keeping
// repeated admissions of the same subtype allocation-free.
func bindingFor[S any, B Shared, M Mover[M, B], T any, PT interface {
	*T
	B
}]() binding[B] {
	key := reflect.TypeFor[bindingKey[S, B, M, T]]()
	if v, ok := bindingCache.Load(key); ok {
		return v.(binding[B])
	}
	mustAdmit[S, B, M, T, PT]()
	bd := binding[B]{
		as:  binderFor[B, T, PT](),
		raw: RawMoveFor[T](),
	}
	bindingCache.Store(key, bd)
	return bd
}

// binderFor returns the binder reconstructing the B view of a T stored at
// an address. The returned interface value's dynamic type is the concrete
// pointer type, so type assertions and reflection on [Poly.Get] results
// observe the exact stored subtype.
func binderFor[B any, T any, PT interface {
	*T
	B
}]() func(unsafe.Pointer) B {
	return func(p unsafe.Pointer) B {
		return any(PT((*T)(p))).(B)
	}
}
