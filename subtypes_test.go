// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poly_test

import (
	"unsafe"

	"code.hybscloud.com/poly"
)

// Test subtype zoo. Every subtype implements MoveTo so the same fixtures
// exercise both mover strategies.

// Arith is the shared interface for test subtypes.
type Arith interface {
	poly.Shared
	poly.Relocatable
	Eval() int
}

// One holds one integer (8 bytes).
type One struct{ A int }

func (o *One) Eval() int { return o.A }
func (o *One) Dispose() {}
func (o *One) MoveTo(dst unsafe.Pointer) { poly.RelocateSelf(o, dst) }

// Two holds two integers (16 bytes, the full Slot16 region).
type Two struct{ A, B int }

func (w *Two) Eval() int { return w.A + w.B }
func (w *Two) Dispose() {}
func (w *Two) MoveTo(dst unsafe.Pointer) { poly.RelocateSelf(w, dst) }

// Solo and Extended model a base/derived pair through embedding.
// Extended's derived-only state is Extra.
type Solo struct{ X int }

func (s *Solo) Eval() int { return s.X }
func (s *Solo) Dispose() {}
func (s *Solo) MoveTo(dst unsafe.Pointer) { poly.RelocateSelf(s, dst) }

type Extended struct {
	Solo
	Extra int
}

func (e *Extended) Eval() int { return e.X + e.Extra }
func (e *Extended) MoveTo(dst unsafe.Pointer) { poly.RelocateSelf(e, dst) }

// Giant exceeds every test region.
type Giant struct{ Vals [16]uint64 }

func (g *Giant) Eval() int { return int(g.Vals[0]) }
func (g *Giant) Dispose() {}
func (g *Giant) MoveTo(dst unsafe.Pointer) { poly.RelocateSelf(g, dst) }

// Leaky carries a pointer and must be rejected by the plainness check.
type Leaky struct{ P *int }

func (l *Leaky) Eval() int { return *l.P }
func (l *Leaky) Dispose() {}
func (l *Leaky) MoveTo(dst unsafe.Pointer) { poly.RelocateSelf(l, dst) }

// Tracked observes disposal. Movers zero the source on relocation, so a
// moved-from Tracked has Live false and its disposal is not tallied:
// the tally counts logical values, not storage slots.
type Tracked struct {
	ID   int32
	Live bool
}

var disposeTally = map[int32]int{}

func resetTally() { disposeTally = map[int32]int{} }

func (tr *Tracked) Eval() int { return int(tr.ID) }
func (tr *Tracked) Dispose() {
	if tr.Live {
		disposeTally[tr.ID]++
	}
}
func (tr *Tracked) MoveTo(dst unsafe.Pointer) { poly.RelocateSelf(tr, dst) }
