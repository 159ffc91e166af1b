/*
 * grid_test.go, part of goRIG.
 *
 * Copyright 2015 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package grid

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/rmera/rig/v3"
)

func cloud(r *rand.Rand, n int, side float64) *v3.Matrix {
	c := v3.Zeros(n)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			c.Set(i, j, r.Float64()*side-side/2)
		}
	}
	return c
}

func bruteForce(a, b *v3.Matrix, cutoff float64) Pairs {
	ret := make(Pairs)
	directed := b != nil
	if !directed {
		b = a
	}
	for i := 0; i < a.NVecs(); i++ {
		start := 0
		if !directed {
			start = i + 1
		}
		for j := start; j < b.NVecs(); j++ {
			if d := v3.Dist(a.Vec(i), b.Vec(j)); d <= cutoff {
				ret[Pair{i, j}] = d
			}
		}
	}
	return ret
}

func samePairs(Te *testing.T, got, expected Pairs) {
	Te.Helper()
	if len(got) != len(expected) {
		Te.Errorf("got %d pairs, expected %d", len(got), len(expected))
	}
	for k, v := range expected {
		d, ok := got[k]
		if !ok {
			Te.Errorf("pair %v at %5.3f A missing", k, v)
			continue
		}
		if math.Abs(d-v) > 1e-12 {
			Te.Errorf("pair %v distance %f, expected %f", k, d, v)
		}
	}
}

func TestCellSize(Te *testing.T) {
	for _, v := range []struct {
		cutoff float64
		size   int
	}{{8, 800}, {4.1, 410}, {5.0, 500}, {4.105, 411}, {0.01, 1}, {0.001, 1}, {0.0001, 1}} {
		if s := CellSize(v.cutoff); s != v.size {
			Te.Errorf("cutoff %f gave size %d, expected %d", v.cutoff, s, v.size)
		}
	}
	c, _ := v3.NewMatrix([]float64{0, 0, 0})
	if G := New(c, nil, 4.5); G.Size() != 450 || G.Directed() {
		Te.Errorf("wrong grid for a 4.5 A cutoff: size %d directed %t", G.Size(), G.Directed())
	}
	if CellSize(0) >= 1 {
		Te.Errorf("a zero cutoff should give a box edge under 1")
	}
}

func TestKeys(Te *testing.T) {
	k := KeyFor([3]float64{4.99, -0.01, 5.0}, 500)
	if k != (Key{0, -500, 500}) {
		Te.Errorf("wrong key %v", k)
	}
}

func TestUndirected(Te *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, cutoff := range []float64{2.5, 4.1, 8.0} {
		c := cloud(r, 300, 30)
		G := New(c, nil, cutoff)
		got := G.Pairs(cutoff)
		samePairs(Te, got, bruteForce(c, nil, cutoff))
		for k := range got {
			if k.I >= k.J {
				Te.Errorf("non canonical pair %v", k)
			}
		}
		fmt.Println("cutoff", cutoff, "boxes", G.Len(), "pairs", len(got))
	}
}

func TestDirected(Te *testing.T) {
	r := rand.New(rand.NewSource(7))
	a := cloud(r, 150, 20)
	b := cloud(r, 200, 20)
	G := New(a, b, 3.5)
	if !G.Directed() {
		Te.Fatal("grid should be directed")
	}
	samePairs(Te, G.Pairs(3.5), bruteForce(a, b, 3.5))
}

func TestOccupancy(Te *testing.T) {
	r := rand.New(rand.NewSource(3))
	a := cloud(r, 100, 15)
	b := cloud(r, 50, 15)
	G := New(a, b, 4.0)
	total := 0
	for _, v := range G.Occupancy() {
		total += v
	}
	if total != 150 {
		Te.Errorf("occupancy adds to %d, expected 150", total)
	}
	U := New(a, nil, 4.0)
	total = 0
	for _, v := range U.Occupancy() {
		total += v
	}
	if total != 100 {
		Te.Errorf("occupancy adds to %d, expected 100", total)
	}
}

func TestNeighbors(Te *testing.T) {
	c, _ := v3.NewMatrix([]float64{
		0.5, 0.5, 0.5,
		1.5, 0.5, 0.5,
		1.5, 1.5, 1.5,
		3.5, 0.5, 0.5,
	})
	G := New(c, nil, 1.0)
	if G.Len() != 4 {
		Te.Fatalf("expected 4 boxes, got %d", G.Len())
	}
	n := G.Neighbors(Key{0, 0, 0})
	if len(n) != 2 {
		Te.Errorf("expected 2 neighbors, got %d", len(n))
	}
	b, ok := G.Box(Key{300, 0, 0})
	if !ok || b.IPoints()[0] != 3 {
		Te.Errorf("point 3 should be alone in box 300,0,0")
	}
	if len(G.Neighbors(Key{300, 0, 0})) != 0 {
		Te.Errorf("box 300,0,0 should have no occupied neighbors")
	}
	p := G.Pairs(1.0)
	if _, ok := p[Pair{0, 1}]; !ok || len(p) != 1 {
		Te.Errorf("expected only the pair 0-1, got %v", p.Sorted())
	}
}
