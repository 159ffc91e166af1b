/*
 * contacts.go, part of goRIG.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package histo

import (
	"log"

	rig "github.com/rmera/rig"
	"github.com/rmera/rig/grid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//UnitDividers returns the dividers for bins of width 1 that cover all integers from 0 to max.
func UnitDividers(max int) []float64 {
	if max < 0 {
		max = 0
	}
	return floats.Span(make([]float64, max+2), 0, float64(max+1))
}

func maxInt(v []int) int {
	m := 0
	for _, w := range v {
		if w > m {
			m = w
		}
	}
	return m
}

func ints2floats(v []int) []float64 {
	ret := make([]float64, len(v))
	for i, w := range v {
		ret[i] = float64(w)
	}
	return ret
}

//Occupancy returns the histogram of the number of points in each occupied box of the grid g,
//a measure of the density of the grid. If dividers is nil, bins of width 1 are used.
func Occupancy(g *grid.Grid, dividers []float64) *Data {
	occ := g.Occupancy()
	if dividers == nil {
		dividers = UnitDividers(maxInt(occ))
	}
	d := NewData(dividers, ints2floats(occ))
	if d.Total() != len(occ) {
		log.Printf("goRIG/histo.Occupancy: %d boxes are outside the given dividers", len(occ)-d.Total())
	}
	return d
}

//Ranges returns the histogram of the sequence separation of the given contacts.
//If dividers is nil, bins of width 1 are used.
func Ranges(contacts []rig.Contact, dividers []float64) *Data {
	r := make([]int, len(contacts))
	for i, c := range contacts {
		r[i] = c.Range()
	}
	if dividers == nil {
		dividers = UnitDividers(maxInt(r))
	}
	d := NewData(dividers, ints2floats(r))
	if d.Total() != len(r) {
		log.Printf("goRIG/histo.Ranges: %d contacts are outside the given dividers", len(r)-d.Total())
	}
	return d
}

//Stats returns the mean and the (unbiased) standard deviation of values.
func Stats(values []float64) (mean, std float64) {
	return stat.MeanStdDev(values, nil)
}
