/*
 * v3_test.go
 *
 * Copyright 2013 Raul Mera <rmera@zinc>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation; either version 2 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 *
 *
 */

package v3

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

//everything equal to or smaller than this is considered zero
const appzero float64 = 1e-12

// Returns an identity matrix spanning span cols and rows
func gnEye(span int) *mat.Dense {
	A := mat.NewDense(span, span, nil)
	for i := 0; i < span; i++ {
		A.Set(i, i, 1.0)
	}
	return A
}

func TestNewMatrix(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 3 {
		Te.Errorf("expected 3 vecs, got %d", A.NVecs())
	}
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("a slice not divisible by 3 should give an error")
	}
	E, err := NewMatrix(nil)
	if err != nil {
		Te.Fatal(err)
	}
	if E.NVecs() != 0 {
		Te.Errorf("empty matrix has %d vecs", E.NVecs())
	}
	fmt.Println(A, E)
}

func TestViewAndMul(Te *testing.T) {
	A, _ := NewMatrix([]float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9})
	T := Zeros(3)
	T.Mul(A, gnEye(3))
	if !mat.Equal(T, A) {
		Te.Errorf("multiplication by the identity changed the matrix %v %v", A, T)
	}
	T.Mul(T, gnEye(3)) //receiver aliasing
	if !mat.Equal(T, A) {
		Te.Errorf("aliased multiplication by the identity changed the matrix %v %v", A, T)
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Errorf("changes in a view should be reflected in the original")
	}
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	if err != nil {
		Te.Fatal(err)
	}
	B := Zeros(3)
	cind := []int{1, 3, 5}
	err = B.SomeVecsSafe(A, cind)
	if err != nil {
		Te.Fatal(err)
	}
	if B.At(2, 2) != 18 || B.At(0, 0) != 4 {
		Te.Errorf("wrong vectors selected %v", B)
	}
	C := Zeros(2)
	if err = C.SomeVecsSafe(A, cind); err == nil {
		Te.Errorf("mismatched receiver should give an error")
	}
}

func TestCentering(Te *testing.T) {
	A, _ := NewMatrix([]float64{0, 0, 0, 2, 0, 0, 0, 2, 0, 0, 0, 2})
	c := A.Centroid()
	if c.Vec(0) != [3]float64{0.5, 0.5, 0.5} {
		Te.Errorf("wrong centroid %v", c)
	}
	B := Zeros(A.NVecs())
	B.SubVec(A, c)
	nc := B.Centroid().Vec(0)
	for _, v := range nc {
		if math.Abs(v) > appzero {
			Te.Errorf("centered matrix has centroid %v", nc)
		}
	}
	B.AddVec(B, c)
	if !mat.EqualApprox(A, B, appzero) {
		Te.Errorf("AddVec did not undo SubVec %v %v", A, B)
	}
	if A.SqNorm() != 12 {
		Te.Errorf("wrong squared norm %f", A.SqNorm())
	}
	if d := Dist([3]float64{0, 0, 0}, [3]float64{3, 4, 0}); d != 5 {
		Te.Errorf("wrong distance %f", d)
	}
}
