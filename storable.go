// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poly

import (
	"fmt"
	"reflect"
	"sync"
)

// Storage layout checks.
// A subtype T is storable in a region S iff T fits in S, S's alignment is a
// multiple of T's, and both types are plain. "Plain" means the type contains
// no pointer words: the region is opaque to the garbage collector, so any
// pointer placed into it would be invisible to the collector and its
// referent could be reclaimed while still stored.

// Word-aligned storage regions of common byte capacities.
// Any pointer-free type works as a region; these cover the usual cases.
type (
	Slot16  [2]uint64
	Slot32  [4]uint64
	Slot64  [8]uint64
	Slot128 [16]uint64
	Slot256 [32]uint64
)

// plainCache memoizes the pointer-freedom walk per reflect.Type.
// The admission path hits it on every type-changing mutation.
var plainCache sync.Map // reflect.Type -> bool

// plain reports whether t contains no pointer words.
func plain(t reflect.Type) bool {
	if v, ok := plainCache.Load(t); ok {
		return v.(bool)
	}
	p := computePlain(t)
	plainCache.Store(t, p)
	return p
}

func computePlain(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || plain(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !plain(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Chan, Func, Interface, Map, Pointer, Slice, String, UnsafePointer.
		return false
	}
}

// StorableIn reports whether a value of type T can be stored in a region
// of type S. It is the predicate form of the storability check; the
// container's admission path reports the failed clause via [Check].
func StorableIn[T, S any]() bool {
	return storableErr[T, S]() == nil
}

// storableErr returns nil if T is storable in S, otherwise an error
// wrapping the sentinel for the first failed clause.
func storableErr[T, S any]() error {
	t := reflect.TypeFor[T]()
	s := reflect.TypeFor[S]()
	if t.Size() > s.Size() {
		return fmt.Errorf("%w: %v is %d bytes, region %v is %d", ErrTooLarge, t, t.Size(), s, s.Size())
	}
	if s.Align()%t.Align() != 0 {
		return fmt.Errorf("%w: %v aligns to %d, region %v to %d", ErrMisaligned, t, t.Align(), s, s.Align())
	}
	if !plain(s) {
		return fmt.Errorf("%w: %v", ErrStorageNotPlain, s)
	}
	if !plain(t) {
		return fmt.Errorf("%w: %v", ErrSubtypeNotPlain, t)
	}
	return nil
}
