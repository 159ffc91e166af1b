/*
 * detect.go, part of goRIG.
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

package rig

import (
	"fmt"
	"strings"

	"github.com/rmera/rig/grid"
	v3 "github.com/rmera/rig/v3"
)

//AtomPair is a pair of atom serials.
type AtomPair struct {
	I, J int
}

//checkCutoff returns an InvalidCutoffError if the cutoff is not positive
//or if it can't be represented in the grid.
func checkCutoff(cutoff float64) error {
	if cutoff <= 0 || grid.CellSize(cutoff) < 1 {
		return InvalidCutoffError{cutoff: cutoff}
	}
	return nil
}

//gridPairs returns the index pairs within cutoff for the i and j selections.
//j is ignored unless directed is true.
func gridPairs(i, j *Selection, cutoff float64, directed bool) grid.Pairs {
	var jc *v3.Matrix
	if directed {
		jc = j.Coords()
	}
	G := grid.New(i.Coords(), jc, cutoff)
	return G.Pairs(cutoff)
}

func checkSides(i, j *Selection, directed bool) error {
	if directed && j == nil {
		return CError{"goRIG: directed contacts need a j side selection", []string{"checkSides"}}
	}
	return nil
}

//AtomPairs returns all the atom pairs, within cutoff, with one atom in i and the other in j (if directed is true)
//or both in i (if directed is false, in which case j is ignored). The pairs are given as atom serials,
//mapped to their distances. For undirected searches each pair appears only once, with I<J in selection order.
func AtomPairs(i, j *Selection, cutoff float64, directed bool) (map[AtomPair]float64, error) {
	if err := checkCutoff(cutoff); err != nil {
		return nil, errDecorate(err, "AtomPairs")
	}
	if err := checkSides(i, j, directed); err != nil {
		return nil, errDecorate(err, "AtomPairs")
	}
	ret := make(map[AtomPair]float64)
	if i.Len() == 0 || (directed && j.Len() == 0) {
		return ret, nil
	}
	if !directed {
		j = i
	}
	for k, d := range gridPairs(i, j, cutoff, directed) {
		ret[AtomPair{i.Atom(k.I).Id, j.Atom(k.J).Id}] = d
	}
	return ret, nil
}

//BuildGraph returns the contact graph between the atoms of i and those of j, for the given cutoff. If directed is false
//j is ignored, and the contacts are those among the atoms of i. Nodes is a map from residue serial to residue type, sequence
//can be empty and ct is the name of the contact type, which must contain a "/" if, and only if, directed is true.
//Atom pairs within cutoff are turned into contacts between their residues. Pairs within the same residue are ignored.
//An error is returned if the cutoff is not valid or if directed doesn't agree with ct.
func BuildGraph(i, j *Selection, cutoff float64, directed bool, nodes map[int]string, sequence, ct string) (*Graph, error) {
	if err := checkCutoff(cutoff); err != nil {
		return nil, errDecorate(err, "BuildGraph")
	}
	if directed != IsDirected(ct) {
		return nil, CError{fmt.Sprintf("goRIG: contact type %s and directed=%t don't agree", ct, directed), []string{"BuildGraph"}}
	}
	if err := checkSides(i, j, directed); err != nil {
		return nil, errDecorate(err, "BuildGraph")
	}
	contacts := NewContactList(directed)
	n := make(map[int]string, len(nodes))
	for k, v := range nodes {
		n[k] = v
	}
	if i.Len() == 0 || (directed && j.Len() == 0) {
		return newGraphFromList(contacts, n, sequence, cutoff, ct), nil
	}
	if !directed {
		j = i
	}
	for k := range gridPairs(i, j, cutoff, directed) {
		ires := i.Atom(k.I).Molid
		jres := j.Atom(k.J).Molid
		if ires == jres {
			continue
		}
		contacts.Add(Contact{ires, jres})
	}
	return newGraphFromList(contacts, n, sequence, cutoff, ct), nil
}

//GraphFor builds the contact graph of mol, with coordinates coords, for the contact type and cutoff in the options o (DefaultOptions()
//is used if o is nil). tables gives, for each contact type, the atoms of each residue type that belong to it. For a directed contact
//type "X/Y", tables must contain the entries "X" and "Y". If nodes is nil, the residues with at least one atom in mol are used.
func GraphFor(mol Atomer, coords *v3.Matrix, nodes map[int]string, sequence string, tables map[string]AtomTable, o *Options) (*Graph, error) {
	if o == nil {
		o = DefaultOptions()
	}
	ct := o.ContactType()
	sides := strings.Split(ct, "/")
	if len(sides) > 2 {
		return nil, CError{fmt.Sprintf("goRIG: malformed contact type %s", ct), []string{"GraphFor"}}
	}
	sels := make([]*Selection, 2)
	for k, side := range sides {
		table, ok := tables[side]
		if !ok {
			return nil, CError{fmt.Sprintf("goRIG: unknown contact type %s", side), []string{"GraphFor"}}
		}
		var err error
		sels[k], err = selectAtoms(mol, coords, table, o.Verbose())
		if err != nil {
			return nil, errDecorate(err, "GraphFor")
		}
	}
	if nodes == nil {
		nodes = Residues(mol)
	}
	g, err := BuildGraph(sels[0], sels[1], o.Cutoff(), len(sides) == 2, nodes, sequence, ct)
	return g, errDecorate(err, "GraphFor")
}
