/*
 * histo_test.go, part of goRIG.
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
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"testing"

	rig "github.com/rmera/rig"
	"github.com/rmera/rig/grid"
	v3 "github.com/rmera/rig/v3"
)

func TestHisto(Te *testing.T) {
	rawdata := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1}
	d := NewData([]float64{0, 1, 2, 3, 4, 8}, rawdata, 3)
	fmt.Println(d)
	//8, 44 and 32 are out of range
	if d.Total() != 26 || d.Sum() != 26 || d.ID() != 3 {
		Te.Errorf("wrong totals %d %f", d.Total(), d.Sum())
	}
	if !reflect.DeepEqual(d.View(), []float64{2, 6, 2, 7, 9}) {
		Te.Errorf("wrong bins %v", d.View())
	}
	if rawdata[0] != 1 || rawdata[1] != 6 {
		Te.Errorf("the raw data was modified")
	}
	d.Normalize()
	if math.Abs(d.Sum()-1) > 1e-12 {
		Te.Errorf("normalized histogram adds to %f", d.Sum())
	}
	d.AddData(0.5, 100)
	if math.Abs(d.Sum()-1) > 1e-12 {
		Te.Errorf("out of range data should not count, normalized histogram adds to %f", d.Sum())
	}
	d.UnNormalize()
	if d.Total() != 27 || math.Abs(d.View()[0]-3) > 1e-9 {
		Te.Errorf("AddData failed %v", d)
	}
	e := NewData([]float64{0, 1, 2, 3, 4, 8}, nil)
	e.AddData(0, 0, 7.9)
	s := new(Data)
	s.Add(d, e)
	if math.Abs(s.View()[0]-5) > 1e-9 || math.Abs(s.View()[4]-10) > 1e-9 {
		Te.Errorf("wrong addition %v", s)
	}
	if s.Total() != 30 {
		Te.Errorf("wrong total after addition %d", s.Total())
	}
	s.Sub(d, e)
	if s.Total() != 24 || math.Abs(s.View()[4]-8) > 1e-9 {
		Te.Errorf("wrong substraction %v", s)
	}
	s.Sub(e, d, true)
	if math.Abs(s.View()[0]-1) > 1e-9 || s.Total() != 24 {
		Te.Errorf("wrong absolute substraction %v", s)
	}
	j, err := json.Marshal(d)
	if err != nil {
		Te.Fatal(err)
	}
	d2 := new(Data)
	if err = json.Unmarshal(j, d2); err != nil || d2.Total() != d.Total() {
		Te.Errorf("JSON round trip failed %v", err)
	}
}

func TestOccupancy(Te *testing.T) {
	c, _ := v3.NewMatrix([]float64{
		0.5, 0.5, 0.5,
		0.6, 0.5, 0.5,
		0.7, 0.5, 0.5,
		1.5, 0.5, 0.5,
		5.5, 0.5, 0.5,
		5.6, 0.5, 0.5,
	})
	g := grid.New(c, nil, 1.0)
	o := Occupancy(g, nil)
	fmt.Println(o)
	if !reflect.DeepEqual(o.View(), []float64{0, 1, 1, 1}) {
		Te.Errorf("wrong occupancy %v", o.View())
	}
	mean, std := Stats([]float64{3, 1, 2})
	if mean != 2 || math.Abs(std-1) > 1e-12 {
		Te.Errorf("wrong stats %f %f", mean, std)
	}
}

func TestRanges(Te *testing.T) {
	contacts := []rig.Contact{{I: 1, J: 2}, {I: 3, J: 1}, {I: 1, J: 5}, {I: 4, J: 5}}
	r := Ranges(contacts, nil)
	if !reflect.DeepEqual(r.View(), []float64{0, 2, 1, 0, 1}) {
		Te.Errorf("wrong ranges %v", r.View())
	}
	r = Ranges(contacts, []float64{0, 2, 3})
	if r.Total() != 3 {
		Te.Errorf("one contact should be out of range, total %d", r.Total())
	}
}
