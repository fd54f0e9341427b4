// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poly

import (
	"errors"
	"fmt"
	"reflect"
)

// Admission errors. [Check] wraps these with the offending type names;
// match with errors.Is. Inside the container's own operations an admission
// failure is a contract violation, so the mutating entry points panic with
// the same error instead of returning it.
var (
	// ErrTooLarge reports a subtype whose size exceeds the storage region.
	ErrTooLarge = errors.New("poly: subtype does not fit storage region")

	// ErrMisaligned reports a region whose alignment is not a multiple of
	// the subtype's required alignment.
	ErrMisaligned = errors.New("poly: storage region misaligned for subtype")

	// ErrStorageNotPlain reports a storage region type containing pointers.
	ErrStorageNotPlain = errors.New("poly: storage region is not plain")

	// ErrSubtypeNotPlain reports a subtype containing pointers, which the
	// GC-opaque storage region cannot keep alive.
	ErrSubtypeNotPlain = errors.New("poly: subtype is not plain")

	// ErrNotMovable reports a subtype the configured mover cannot relocate.
	ErrNotMovable = errors.New("poly: mover cannot relocate subtype")
)

// Check reports whether subtype T may be stored in a Poly[S, B, M].
// It returns nil when T is admissible, otherwise an error wrapping the
// sentinel for the failed check. This is the runtime predicate surface for
// generic code that needs to branch on admissibility; the container's own
// operations enforce the same checks and panic on violation.
func Check[S any, B Shared, M Mover[M, B], T any, PT interface {
	*T
	B
}]() error {
	if err := storableErr[T, S](); err != nil {
		return err
	}
	var m M
	var pt PT
	if !m.Movable(pt) {
		return fmt.Errorf("%w: %v", ErrNotMovable, reflect.TypeFor[T]())
	}
	return nil
}

// CanHold reports whether a Poly[S, B, M] admits subtype T.
func CanHold[S any, B Shared, M Mover[M, B], T any, PT interface {
	*T
	B
}]() bool {
	return Check[S, B, M, T, PT]() == nil
}

// mustAdmit panics with the admission error if T is not admissible.
// Callers run it before destroying any stored value, so a rejected subtype
// leaves the container unmodified.
func mustAdmit[S any, B Shared, M Mover[M, B], T any, PT interface {
	*T
	B
}]() {
	if err := Check[S, B, M, T, PT](); err != nil {
		panic(err)
	}
}
