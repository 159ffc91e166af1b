/*
 * gocoords.go, part of goRIG.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package v3

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
//If vecs is 0, an empty Matrix is returned.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	if vecs == 0 {
		return &Matrix{new(mat.Dense)}
	}
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

//METHODS

//NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	if F == nil || F.Dense == nil || F.IsEmpty() {
		return 0
	}
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//Len is the same as NVecs
func (F *Matrix) Len() int {
	return F.NVecs()
}

//Vec returns a copy of the ith vector as an array.
func (F *Matrix) Vec(i int) [3]float64 {
	if i >= F.NVecs() || i < 0 {
		panic(ErrIndexOutOfRange)
	}
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//SetVec sets the ith vector of F to v
func (F *Matrix) SetVec(i int, v [3]float64) {
	if i >= F.NVecs() || i < 0 {
		panic(ErrIndexOutOfRange)
	}
	for j, w := range v {
		F.Set(i, j, w)
	}
}

//AddVec adds a vector to each vector of the matrix A, putting the result on the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	v := vec.Vec(0)
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)+v[j])
		}
	}
}

//SubVec subtracts the vector to each vector of the matrix A, putting
//the result on the receiver. Panics if matrices are mismatched.
func (F *Matrix) SubVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != rc || rr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	v := vec.Vec(0)
	for i := 0; i < ar; i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)-v[j])
		}
	}
}

//SomeVecs puts in the receiver the ith vectors of matrix A,
//where i are the numbers in clist. The vectors are in the same order
//than the clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	ar, ac := A.Dims()
	fr, fc := F.Dims()
	if ac != fc || fr != len(clist) || ar < len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		for j := 0; j < ac; j++ {
			F.Set(key, j, A.At(val, j))
		}
	}
}

//SomeVecsSafe is like SomeVecs but returns an error instead of panicking.
func (F *Matrix) SomeVecsSafe(A *Matrix, clist []int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case PanicMsg:
				err = Error{string(e), []string{"SomeVecsSafe"}, true}
			case mat.Error:
				err = Error{fmt.Sprintf("goRIG/v3: Error in a gonum function: %s", e.Error()), []string{"SomeVecsSafe"}, true}
			default:
				panic(r)
			}
		}
	}()
	F.SomeVecs(A, clist)
	return err
}

//Centroid returns a 1x3 Matrix with the geometric center of the vectors in F.
//Panics if F is empty.
func (F *Matrix) Centroid() *Matrix {
	n := F.NVecs()
	if n == 0 {
		panic(ErrShape)
	}
	var c [3]float64
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			c[j] += F.At(i, j)
		}
	}
	ret := Zeros(1)
	for j := range c {
		ret.Set(0, j, c[j]/float64(n))
	}
	return ret
}

//SqNorm returns the sum of the squared norms of all the vectors in F.
func (F *Matrix) SqNorm() float64 {
	var s float64
	for i := 0; i < F.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			s += F.At(i, j) * F.At(i, j)
		}
	}
	return s
}

//Returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r := F.NVecs()
	if r == 0 {
		return "[ ]"
	}
	v := make([]string, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	row := make([]float64, 3)
	for i := 0; i < r; i++ {
		mat.Row(row, i, F.Dense)
		if i == 0 {
			v[i+1] = fmt.Sprintf("%6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
			continue
		} else if i == r-1 {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2])
			continue
		} else {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		}
	}
	v[len(v)-2] = strings.Replace(v[len(v)-2], "\n", "", 1)
	return strings.Join(v, "")
}

//Dist returns the euclidean distance between 2 points.
func Dist(a, b [3]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
