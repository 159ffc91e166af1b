/*
 * kabsch.go, part of goRIG.
 *
 * Copyright 2021 Raul Mera rauldotmeraatusachdotcl
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

package align

import (
	"fmt"
	"math"

	v3 "github.com/rmera/rig/v3"
	"gonum.org/v1/gonum/mat"
)

//Result contains the outcome of a superposition of a set of coordinates b onto a set a.
type Result struct {
	RMSD      float64
	Rotation  *mat.Dense //3x3, multiplies row vectors from the right
	CentroidA *v3.Matrix
	CentroidB *v3.Matrix
	Aligned   *v3.Matrix //b, superimposed onto a
}

//Transform applies the superposition in R to the coordinates c, which are not modified.
//c is translated so the centroid of b goes to the origin, rotated, and translated to
//the centroid of a.
func (R *Result) Transform(c *v3.Matrix) *v3.Matrix {
	ret := v3.Zeros(c.NVecs())
	if c.NVecs() == 0 {
		return ret
	}
	ret.SubVec(c, R.CentroidB)
	ret.Mul(ret, R.Rotation)
	ret.AddVec(ret, R.CentroidA)
	return ret
}

//checkPair returns an error if a and b are not well-formed, non-empty,
//coordinate sets of the same length.
func checkPair(a, b *v3.Matrix, caller string) error {
	if a == nil || b == nil || a.Dense == nil || b.Dense == nil {
		return CError{"goRIG/align: nil coordinates", []string{caller}}
	}
	if !a.IsEmpty() {
		if _, c := a.Dims(); c != 3 {
			return CError{fmt.Sprintf("goRIG/align: coordinates with %d columns", c), []string{caller}}
		}
	}
	if !b.IsEmpty() {
		if _, c := b.Dims(); c != 3 {
			return CError{fmt.Sprintf("goRIG/align: coordinates with %d columns", c), []string{caller}}
		}
	}
	if a.NVecs() != b.NVecs() {
		return SizeMismatchError{lena: a.NVecs(), lenb: b.NVecs(), deco: []string{caller}}
	}
	if a.NVecs() == 0 {
		return CError{"goRIG/align: empty coordinates", []string{caller}}
	}
	return nil
}

//centered returns a copy of c with its centroid at the origin, and the centroid.
func centered(c *v3.Matrix) (*v3.Matrix, *v3.Matrix) {
	cen := c.Centroid()
	ret := v3.Zeros(c.NVecs())
	ret.SubVec(c, cen)
	return ret, cen
}

//covariance returns the 3x3 matrix Q^T P
func covariance(p, q *v3.Matrix) *mat.Dense {
	ret := mat.NewDense(3, 3, nil)
	ret.Mul(q.T(), p)
	return ret
}

//Kabsch returns the optimal superposition of b onto a and the resulting RMSD.
//Point i of a corresponds to point i of b. Neither a nor b is modified.
//If superimposing b onto a would require a reflection, the best proper rotation
//is obtained instead.
func Kabsch(a, b *v3.Matrix) (*Result, error) {
	if err := checkPair(a, b, "Kabsch"); err != nil {
		return nil, err
	}
	n := a.NVecs()
	p, cena := centered(a)
	q, cenb := centered(b)
	e0 := p.SqNorm() + q.SqNorm()
	var svd mat.SVD
	if ok := svd.Factorize(covariance(p, q), mat.SVDFull); !ok {
		return nil, CError{"goRIG/align: SVD factorization failed", []string{"Kabsch"}}
	}
	var U, V mat.Dense
	svd.UTo(&U)
	svd.VTo(&V)
	s := svd.Values(nil)
	//gonum sorts the singular values in decreasing order, so the smallest is the last.
	if mat.Det(&U)*mat.Det(&V) < 0 {
		s[2] = -s[2]
		for i := 0; i < 3; i++ {
			U.Set(i, 2, -U.At(i, 2))
		}
	}
	rot := mat.NewDense(3, 3, nil)
	rot.Mul(&U, V.T())
	msd := (e0 - 2*(s[0]+s[1]+s[2])) / float64(n)
	ret := &Result{
		RMSD:      math.Sqrt(math.Max(0, msd)),
		Rotation:  rot,
		CentroidA: cena,
		CentroidB: cenb,
	}
	ret.Aligned = v3.Zeros(n)
	ret.Aligned.Mul(q, rot)
	ret.Aligned.AddVec(ret.Aligned, cena)
	return ret, nil
}

//RMSD returns the RMSD between a and b after the optimal superposition.
func RMSD(a, b *v3.Matrix) (float64, error) {
	r, err := Kabsch(a, b)
	if err != nil {
		return -1, errDecorate(err, "RMSD")
	}
	return r.RMSD, nil
}

//RawRMSD returns the RSMD (root of the mean square deviation) between a and b,
//without superimposing them.
func RawRMSD(a, b *v3.Matrix) (float64, error) {
	if err := checkPair(a, b, "RawRMSD"); err != nil {
		return -1, err
	}
	var sum float64
	for i := 0; i < a.NVecs(); i++ {
		d := v3.Dist(a.Vec(i), b.Vec(i))
		sum += d * d
	}
	return math.Sqrt(sum / float64(a.NVecs())), nil
}

//Super determines the best rotation and translations to superimpose the coords in test
//considering only the atoms present in the slice of int testlst, onto the atoms with indexes
//in templalst of templa. It applies the transformation to the whole test and returns it.
//If testlst and templalst are both nil, all the atoms are used. test is not modified.
func Super(test, templa *v3.Matrix, testlst, templalst []int) (*v3.Matrix, error) {
	if len(templalst) != len(testlst) {
		return nil, SizeMismatchError{lena: len(templalst), lenb: len(testlst), deco: []string{"Super"}}
	}
	ctest, ctempla := test, templa
	if testlst != nil {
		ctest = v3.Zeros(len(testlst))
		ctempla = v3.Zeros(len(templalst))
		if err := ctest.SomeVecsSafe(test, testlst); err != nil {
			return nil, CError{err.Error(), []string{"Super"}}
		}
		if err := ctempla.SomeVecsSafe(templa, templalst); err != nil {
			return nil, CError{err.Error(), []string{"Super"}}
		}
	}
	r, err := Kabsch(ctempla, ctest)
	if err != nil {
		return nil, errDecorate(err, "Super")
	}
	return r.Transform(test), nil
}
