/*
 * plot_test.go
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
 *
 */

package chemplot

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	rig "github.com/rmera/rig"
	"gonum.org/v1/plot/vg"
)

func testGraph(Te *testing.T) *rig.Graph {
	contacts := []rig.Contact{{I: 1, J: 2}, {I: 2, J: 9}, {I: 1, J: 20}}
	g, err := rig.NewGraph(contacts, nil, "", 8.0, "Ca")
	if err != nil {
		Te.Fatal(err)
	}
	return g
}

func TestRangeClasses(Te *testing.T) {
	for r, expected := range map[int]int{1: 0, 5: 0, 6: 1, 11: 1, 12: 2, 19: 2} {
		if c := rangeClass(r); c != expected {
			Te.Errorf("range %d should be in class %d, not %d", r, expected, c)
		}
	}
}

func TestContactMap(Te *testing.T) {
	g := testGraph(Te)
	p, err := ContactMap(g, "Test contact map")
	if err != nil {
		Te.Fatal(err)
	}
	if p.X.Max != 21 || p.Y.Max != 21 {
		Te.Errorf("wrong axes %f %f", p.X.Max, p.Y.Max)
	}
	var b bytes.Buffer
	if err := WriteContactMap(g, &b, 4*vg.Inch, "svg"); err != nil {
		Te.Fatal(err)
	}
	fmt.Println("svg bytes:", b.Len())
	if !strings.Contains(b.String(), "<svg") {
		Te.Errorf("the output doesn't look like an svg")
	}
	if _, err := ContactMap(nil, ""); err == nil {
		Te.Errorf("a nil graph should give an error")
	}
}
