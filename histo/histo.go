/*
 * histo.go, part of goRIG.
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

//Package histo builds histograms of quantities related to contact detection:
//how many atoms fall in each box of a grid, and the sequence separation of contacts.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Data is a histogram. Bin i counts the values v with dividers[i] <= v < dividers[i+1].
type Data struct {
	id         int
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

//MarshalJSON encodes the histogram, including its dividers, as JSON.
func (D *Data) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		ID         int       `json:"id"`
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		ID:         D.id,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

//UnmarshalJSON replaces the contents of the histogram with the JSON-encoded one in b.
func (D *Data) UnmarshalJSON(b []byte) error {
	var a struct {
		ID         int       `json:"id"`
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	D.id = a.ID
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}

//ID returns the ID of the histogram
func (D *Data) ID() int {
	return D.id
}

//Total returns the number of values that were counted in the histogram.
func (D *Data) Total() int {
	return D.total
}

//String prints a -hopefully- pretty string representation of
//the histogram. The representation uses 3 lines of text
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

//NewData returns a new histogram from the dividers and rawdata given.
//rawdata can be nil. In that case, an empty histogram is created.
//if an ID for the histogram is given, it will be set. If not, the ID will
//be set to -1. Panics if less than 2 dividers are given.
func NewData(dividers []float64, rawdata []float64, ID ...int) *Data {
	if len(dividers) < 2 {
		panic("goRIG/histo.NewData: at least 2 dividers are needed")
	}
	d := new(Data)
	//copied to avoid somebody changing it from outside
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(d.dividers, rawdata)
	}
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d
}

//AddData adds the given data point(s) to the histogram.
//Values outside the dividers are left out, and not counted in the total.
func (D *Data) AddData(point ...float64) {
	var norma bool
	if D.normalized {
		norma = true
		D.UnNormalize()
	}
	for _, v := range point {
		//index of the first divider larger than v
		j := sort.Search(len(D.dividers), func(i int) bool { return D.dividers[i] > v })
		if j == 0 || j == len(D.dividers) {
			continue
		}
		D.histo[j-1]++
		D.total++
	}
	//if it was normalized, we should return it to that state
	if norma {
		D.Normalize()
	}
}

//Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize normalizes the histogram
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize un-normalizes the histogram
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

//normalizes or un-normalizes the histogram depending
//on whether normalize is true
func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

//CopyDividers copies the dividers of the histogram
func (D *Data) CopyDividers(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.dividers), dest...)
	return floats.ScaleTo(d, 1, D.dividers)
}

//Copy copies the bins of the histogram
func (D *Data) Copy(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	return floats.ScaleTo(d, 1, D.histo)
}

//View returns the bins of the histogram, without copying them.
func (D *Data) View() []float64 {
	return D.histo
}

func checkDividers(a, b *Data, caller string) {
	if !floats.Equal(a.dividers, b.dividers) {
		panic("goRIG/histo.Data." + caller + ": Dividers must match in combined histograms")
	}
}

//Add adds the histograms a and b putting the result in the receiver.
func (D *Data) Add(a, b *Data) {
	checkDividers(a, b, "Add")
	D.dividers = a.CopyDividers(D.dividers)
	D.histo = getCopySlice(len(a.histo), D.histo)
	floats.AddTo(D.histo, a.histo, b.histo)
	D.total = a.total + b.total
	D.normalized = false
}

//Sub substract the histograms a and b puting the results in the receiver
//if abs is given and true (only the first element is considered)
//the absolute value of each difference is kept. The total of the result is
//a.Total()-b.Total() or, with abs, the sum of the absolute differences.
//a and b should not be normalized.
func (D *Data) Sub(a, b *Data, abs ...bool) {
	checkDividers(a, b, "Sub")
	D.dividers = a.CopyDividers(D.dividers)
	D.histo = getCopySlice(len(a.histo), D.histo)
	floats.SubTo(D.histo, a.histo, b.histo)
	if len(abs) > 0 && abs[0] {
		for i, v := range D.histo {
			D.histo[i] = math.Abs(v)
		}
	}
	D.total = a.total - b.total
	if len(abs) > 0 && abs[0] {
		D.total = int(math.Round(floats.Sum(D.histo)))
	}
	D.normalized = false
}

//Sum returns the sum of all the bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//ReHisto replaces the contents of the histogram with the histogram of rawdata over
//the given dividers. Values outside the dividers are left out, and not counted
//in the total. rawdata is not modified.
func (D *Data) ReHisto(dividers, rawdata []float64) {
	data := make([]float64, len(rawdata))
	copy(data, rawdata)
	sort.Float64s(data)
	//stat.Histograms just panics instead of omitting the values that are off limits
	//so we remove them here before the call.
	maxi := sort.SearchFloat64s(data, dividers[len(dividers)-1])
	mini := sort.SearchFloat64s(data, dividers[0])
	data = data[mini:maxi]
	if len(D.dividers) == 0 || &D.dividers[0] != &dividers[0] {
		D.dividers = make([]float64, len(dividers))
		copy(D.dividers, dividers)
	}
	D.total = len(data)
	D.normalized = false
	D.histo = stat.Histogram(nil, D.dividers, data, nil)
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= N {
		d = dest[0]
		if len(dest[0]) > N {
			d = dest[0][:N] //floats.ScaleTo wants both slices to _match_
		}
	} else {
		d = make([]float64, N)
	}
	return d
}
