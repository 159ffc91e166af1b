/*
 * gonum.go, part of goRIG.
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

//gonum.go contains most of what is needed for handling the gonum/mat types and facilities.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space. The underlying implementation is a gonum Dense.
//Within the package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates of a point in 3D space. The name of some functions in
//the library reflect this.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
//An empty slice gives an empty (zero vectors) Matrix.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	if rows == 0 {
		return Zeros(0), nil
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//VecView returns a view of the given vector of the matrix.
//Changes in the view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from i,j and spanning r rows and
//c columns. Changes in the view are reflected in F and vice-versa.
func (F *Matrix) View(i, j, r, c int) *Matrix {
	ret := F.Dense.Slice(i, i+r, j, j+c).(*mat.Dense)
	return &Matrix{ret}
}

//Mul Wraps mat.Dense.Mul to take care of the case when one of the
//arguments is also the receiver. Since the receiver is a Matrix,
//the mat function could check A (mat.Dense) vs F (Matrix) and
//it would not know that internally F.Dense==A, hence the need for this function.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if a, ok := A.(*Matrix); ok {
		A = a.Dense
	}
	if b, ok := B.(*Matrix); ok {
		B = b.Dense
	}
	if A == F.Dense || B == F.Dense {
		ar, _ := A.Dims()
		_, bc := B.Dims()
		tmp := mat.NewDense(ar, bc, nil)
		tmp.Mul(A, B)
		F.Dense.Copy(tmp)
		return
	}
	F.Dense.Mul(A, B)
}

//Errors

type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix    = PanicMsg("goRIG/v3: A Matrix should have 3 columns")
	ErrShape           = PanicMsg("goRIG/v3: Dimension mismatch")
	ErrIndexOutOfRange = PanicMsg("goRIG/v3: index out of range")
)
