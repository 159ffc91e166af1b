/*
 * contactmap.go, part of goRIG
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
*/

//Package chemplot draws contact maps for residue interaction graphs.
package chemplot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	rig "github.com/rmera/rig"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//Range classes for contacts. A contact belongs to the last class whose
//lower limit is not larger than the contact's range.
var RangeClasses = []struct {
	Name string
	Min  int
}{
	{"Short", 1},
	{"Medium", 6},
	{"Long", 12},
}

func rangeClass(r int) int {
	ret := 0
	for i, v := range RangeClasses {
		if r >= v.Min {
			ret = i
		}
	}
	return ret
}

func basicMapPlot(title string, length int) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Residue i"
	p.Y.Label.Text = "Residue j"
	p.X.Min = 0
	p.X.Max = float64(length + 1)
	p.Y.Min = 0
	p.Y.Max = float64(length + 1)
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return p
}

//ContactMap returns a plot with one point for each contact (i,j) in g.
//For undirected graphs, the map is drawn symmetric.
//Points are colored according to the range class of the contact.
func ContactMap(g *rig.Graph, title string) (*plot.Plot, error) {
	if g == nil {
		return nil, fmt.Errorf("goRIG/chemplot.ContactMap: nil graph")
	}
	p := basicMapPlot(title, g.FullLength())
	classes := make([]plotter.XYs, len(RangeClasses))
	for _, c := range g.Contacts() {
		k := rangeClass(c.Range())
		classes[k] = append(classes[k], plotter.XY{X: float64(c.I), Y: float64(c.J)})
		if !g.Directed() {
			classes[k] = append(classes[k], plotter.XY{X: float64(c.J), Y: float64(c.I)})
		}
	}
	for k, pts := range classes {
		if len(pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		r, gr, b := colors(k, len(RangeClasses))
		s.GlyphStyle.Color = color.RGBA{R: r, G: gr, B: b, A: 255}
		s.GlyphStyle.Shape = getShape(k)
		s.GlyphStyle.Radius = vg.Points(2)
		p.Add(s)
		p.Legend.Add(RangeClasses[k].Name, s)
	}
	return p, nil
}

//WriteContactMap draws the contact map of g to w, in the given format ("png", "svg", "pdf", etc.)
//The map is a square of the given side.
func WriteContactMap(g *rig.Graph, w io.Writer, side vg.Length, format string) error {
	if g == nil {
		return fmt.Errorf("goRIG/chemplot.WriteContactMap: nil graph")
	}
	p, err := ContactMap(g, fmt.Sprintf("%s contacts, cutoff %3.1f", g.CT(), g.Cutoff()))
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(side, side, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * maxcolor), uint8(g * maxcolor), uint8(b * maxcolor)
}

//spreads steps colors over the hue circle, skipping the yellows, which
//are hard to see on white.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64((float64(key) * norm) + 20.0)
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	return iHVS2RGB(h, 1.0, 1.0)
}

func getShape(key int) draw.GlyphDrawer {
	switch key % 4 {
	case 0:
		return draw.CircleGlyph{}
	case 1:
		return draw.SquareGlyph{}
	case 2:
		return draw.PyramidGlyph{}
	default:
		return draw.CrossGlyph{}
	}
}
