// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package poly_test

import (
	"fmt"
	"math"
	"unsafe"

	"code.hybscloud.com/poly"
)

// Shape is a shared interface sized for small geometric values.
type Shape interface {
	poly.Shared
	poly.Relocatable
	Area() float32
}

type Circle struct{ Radius float32 }

func (c *Circle) Area() float32 { return math.Pi * c.Radius * c.Radius }
func (c *Circle) Dispose() {}
func (c *Circle) MoveTo(dst unsafe.Pointer) { poly.RelocateSelf(c, dst) }

type Rectangle struct{ W, H float32 }

func (r *Rectangle) Area() float32 { return r.W * r.H }
func (r *Rectangle) Dispose() {}
func (r *Rectangle) MoveTo(dst unsafe.Pointer) { poly.RelocateSelf(r, dst) }

// Banner carries more state than the region admits.
type Banner struct {
	Rectangle
	Angle float64
	Color uint64
}

func (b *Banner) MoveTo(dst unsafe.Pointer) { poly.RelocateSelf(b, dst) }

// Example mirrors the classic shape walkthrough: one container, several
// subtypes over its lifetime, downcasts for in-place mutation, and the
// admissibility predicate rejecting an oversized subtype.
func Example() {
	shape := poly.Of[poly.Slot16, Shape, poly.Virtual[Shape]](Circle{Radius: 2})
	fmt.Printf("%.2f\n", shape.Get().Area())

	shape.Get().(*Circle).Radius = 10
	fmt.Printf("%.2f\n", shape.Get().Area())

	poly.Emplace(&shape, func(r *Rectangle) { r.W, r.H = 3, 4 })
	fmt.Printf("%.2f\n", shape.Get().Area())

	shape.Get().(*Rectangle).H *= 2
	fmt.Printf("%.2f\n", shape.Get().Area())

	fmt.Println(poly.CanHold[poly.Slot16, Shape, poly.Virtual[Shape], Banner]())

	shape.Dispose()
	// Output:
	// 12.57
	// 314.16
	// 12.00
	// 24.00
	// false
}

// Example_pipeline stores heterogeneous operations contiguously and
// evaluates them through the shared interface.
func Example_pipeline() {
	pipeline := []opBox{
		poly.Of[poly.Slot16, UnaryOp, poly.Virtual[UnaryOp]](AddOp{RHS: 10}),
		poly.Of[poly.Slot16, UnaryOp, poly.Virtual[UnaryOp]](SubOp{RHS: 3}),
		poly.Of[poly.Slot16, UnaryOp, poly.Virtual[UnaryOp]](XorOp{RHS: 6}),
	}

	acc := 0
	for i := range pipeline {
		acc = pipeline[i].Get().Apply(acc)
	}
	fmt.Println(acc)

	for i := range pipeline {
		pipeline[i].Dispose()
	}
	// Output:
	// 1
}
