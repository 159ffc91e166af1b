/*
 * grid.go, part of goRIG.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package grid bins 3D points into cubic boxes with an edge equal to a distance
//cutoff, so all pairs of points within the cutoff can be found by looking only
//at each box and its 26 neighbors.
//
//Coordinates and cutoff are multiplied by Scale and truncated to integers to
//obtain the box edge and the box keys, which gives a precision of 0.01 A.
package grid

import (
	"math"
	"sort"

	"github.com/rmera/rig/v3"
)

//Scale is the factor by which coordinates and cutoffs are multiplied before
//being turned into integer box keys.
const Scale = 100

//PanicMsg is used for programming errors in this package.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const ErrCellSize = PanicMsg("goRIG/grid: the cutoff gives a box edge smaller than the grid precision")

//CellSize returns the edge of a box, in scaled units, for the given cutoff.
//For cutoffs with up to two decimals this is floor(cutoff*Scale). Cutoffs
//with more decimals get the edge rounded up, so that two points within the
//cutoff are never more than one box apart along any axis.
func CellSize(cutoff float64) int {
	//the small shift absorbs the round-off in, say, 4.1*100=409.99999999999994
	return int(math.Ceil(cutoff*Scale - 1e-6))
}

//Key identifies a box: the scaled coordinates of its lower corner.
type Key [3]int

//less orders keys lexicographically.
func (k Key) less(o Key) bool {
	for i := range k {
		if k[i] != o[i] {
			return k[i] < o[i]
		}
	}
	return false
}

//KeyFor returns the key of the box, with edge size, that contains point p.
func KeyFor(p [3]float64, size int) Key {
	var k Key
	s := float64(size)
	for i, v := range p {
		k[i] = size * int(math.Floor(v*Scale/s))
	}
	return k
}

//Pair is a pair of point indexes. I is the index of the point in the i-side
//set, J the index in the j-side set. For undirected runs both sides are the
//same set and I<J always.
type Pair struct {
	I, J int
}

//Pairs maps pairs of points to their distance.
type Pairs map[Pair]float64

//Sorted returns the pairs in P ordered by I and then by J.
func (P Pairs) Sorted() []Pair {
	ret := make([]Pair, 0, len(P))
	for k := range P {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(a, b int) bool {
		if ret[a].I != ret[b].I {
			return ret[a].I < ret[b].I
		}
		return ret[a].J < ret[b].J
	})
	return ret
}

//Grid is a set of boxes, created for one search and discarded after it.
type Grid struct {
	boxes    map[Key]*Box
	size     int
	directed bool
}

//New bins the points of icoords and jcoords in boxes with an edge appropiate for cutoff.
//If jcoords is nil, the search is undirected: icoords is used as both sides.
//It panics if the cutoff gives a box edge smaller than 1 scaled unit, which
//callers are expected to check beforehand.
func New(icoords, jcoords *v3.Matrix, cutoff float64) *Grid {
	size := CellSize(cutoff)
	if size < 1 {
		panic(ErrCellSize)
	}
	G := &Grid{boxes: make(map[Key]*Box), size: size, directed: jcoords != nil}
	for i := 0; i < icoords.NVecs(); i++ {
		p := point{index: i, coords: icoords.Vec(i)}
		b := G.boxFor(p.coords)
		b.ipoints = append(b.ipoints, p)
	}
	if !G.directed {
		for _, b := range G.boxes {
			b.jpoints = b.ipoints
		}
		return G
	}
	for i := 0; i < jcoords.NVecs(); i++ {
		p := point{index: i, coords: jcoords.Vec(i)}
		b := G.boxFor(p.coords)
		b.jpoints = append(b.jpoints, p)
	}
	return G
}

func (G *Grid) boxFor(p [3]float64) *Box {
	k := KeyFor(p, G.size)
	b, ok := G.boxes[k]
	if !ok {
		b = &Box{key: k}
		G.boxes[k] = b
	}
	return b
}

//Size returns the box edge in scaled units.
func (G *Grid) Size() int { return G.size }

//Directed returns true if the grid holds two different point sets.
func (G *Grid) Directed() bool { return G.directed }

//Len returns the number of occupied boxes.
func (G *Grid) Len() int { return len(G.boxes) }

//Box returns the box with key k, and whether it exists.
func (G *Grid) Box(k Key) (*Box, bool) {
	b, ok := G.boxes[k]
	return b, ok
}

//Keys returns the keys of all occupied boxes, in lexicographic order.
func (G *Grid) Keys() []Key {
	ret := make([]Key, 0, len(G.boxes))
	for k := range G.boxes {
		ret = append(ret, k)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].less(ret[j]) })
	return ret
}

//Neighbors returns the occupied boxes among the 26 that share a face, an edge
//or a corner with the box of key k.
func (G *Grid) Neighbors(k Key) []*Box {
	ret := make([]*Box, 0, 26)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				n := Key{k[0] + dx*G.size, k[1] + dy*G.size, k[2] + dz*G.size}
				if b, ok := G.boxes[n]; ok {
					ret = append(ret, b)
				}
			}
		}
	}
	return ret
}

//Pairs returns all the pairs of points within cutoff of each other, each one
//recorded once. For undirected grids each pair of neighboring boxes is visited
//only from the box with the smaller key.
func (G *Grid) Pairs(cutoff float64) Pairs {
	pairs := make(Pairs)
	for k, b := range G.boxes {
		b.DistancesWithinBox(G.directed, cutoff, pairs)
		for _, n := range G.Neighbors(k) {
			if !G.directed && !k.less(n.key) {
				continue
			}
			b.DistancesToNeighbor(n, G.directed, cutoff, pairs)
		}
	}
	return pairs
}

//Occupancy returns the number of points in each occupied box, with boxes
//in key order.
func (G *Grid) Occupancy() []int {
	keys := G.Keys()
	ret := make([]int, len(keys))
	for i, k := range keys {
		ret[i] = G.boxes[k].Len()
	}
	return ret
}

type point struct {
	index  int
	coords [3]float64
}

//Box is a cell of the grid. It keeps the i-side points and the j-side points
//that fall in it. For undirected grids both buckets are the same.
type Box struct {
	key     Key
	ipoints []point
	jpoints []point
}

//Key returns the key of the box.
func (B *Box) Key() Key { return B.key }

//IPoints returns the indexes of the i-side points in the box.
func (B *Box) IPoints() []int { return indexes(B.ipoints) }

//JPoints returns the indexes of the j-side points in the box.
func (B *Box) JPoints() []int { return indexes(B.jpoints) }

//Len returns the number of different points in the box.
func (B *Box) Len() int {
	if len(B.jpoints) > 0 && len(B.ipoints) > 0 && &B.ipoints[0] == &B.jpoints[0] {
		return len(B.ipoints)
	}
	return len(B.ipoints) + len(B.jpoints)
}

func indexes(p []point) []int {
	ret := make([]int, len(p))
	for i, v := range p {
		ret[i] = v.index
	}
	return ret
}

//DistancesWithinBox adds to pairs all the pairs of points in the box within cutoff.
//If directed is false only the pairs with the j index larger than the i index are
//considered, so no self pair or repeated pair is produced.
func (B *Box) DistancesWithinBox(directed bool, cutoff float64, pairs Pairs) {
	for a, p := range B.ipoints {
		start := 0
		if !directed {
			start = a + 1
		}
		for _, q := range B.jpoints[start:] {
			add(p, q, directed, cutoff, pairs)
		}
	}
}

//DistancesToNeighbor adds to pairs the pairs formed by the i-points of the box and the
//j-points of the other box, that are within cutoff.
func (B *Box) DistancesToNeighbor(other *Box, directed bool, cutoff float64, pairs Pairs) {
	for _, p := range B.ipoints {
		for _, q := range other.jpoints {
			add(p, q, directed, cutoff, pairs)
		}
	}
}

func add(p, q point, directed bool, cutoff float64, pairs Pairs) {
	d := v3.Dist(p.coords, q.coords)
	if d > cutoff {
		return
	}
	if !directed && q.index < p.index {
		p, q = q, p
	}
	pairs[Pair{p.index, q.index}] = d
}
