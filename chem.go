/*
 * chem.go, part of goRIG.
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

package rig

import (
	"fmt"
	"log"
	"sort"

	v3 "github.com/rmera/rig/v3"
)

//Atom contains the information of an atom that is relevant for contact detection.
//The coordinates are kept apart, in a v3.Matrix.
type Atom struct {
	Name    string //atom name, i.e. "CA"
	Id      int    //atom serial
	Molname string //residue three-letter code
	Molid   int    //residue serial
	Chain   byte
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	*Newat = *A
	return Newat
}

/*****Topology type***/

//Topology is a read-only list of atoms. It implements Atomer.
type Topology struct {
	Atoms []*Atom
}

//NewTopology returns a Topology with the given atoms.
func NewTopology(ats []*Atom) *Topology {
	return &Topology{Atoms: ats}
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Topology. Panics if
//out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() || i < 0 {
		panic("Topology: Requested Atom out of bounds")
	}
	return T.Atoms[i]
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

//Residues returns a map from residue serial to residue type
//for all the residues with at least one atom in mol.
func Residues(mol Atomer) map[int]string {
	ret := make(map[int]string)
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		ret[at.Molid] = at.Molname
	}
	return ret
}

//AtomTable gives, for each residue type, the names of the atoms
//that represent the residue in a given contact type.
type AtomTable map[string][]string

/*****Selection type***/

//Selection is a set of atoms, one side of a contact type, with their coordinates.
//It implements Coorder.
type Selection struct {
	atoms  []*Atom
	coords *v3.Matrix
}

//NewSelection returns a selection with the given atoms and coordinates.
//It returns an error if they don't have the same number of elements.
func NewSelection(atoms []*Atom, coords *v3.Matrix) (*Selection, error) {
	if coords == nil {
		coords = v3.Zeros(0)
	}
	if len(atoms) != coords.NVecs() {
		return nil, CError{fmt.Sprintf("goRIG: %d atoms but %d coordinates", len(atoms), coords.NVecs()), []string{"NewSelection"}}
	}
	return &Selection{atoms: atoms, coords: coords}, nil
}

//Atom returns the ith atom of the selection.
func (S *Selection) Atom(i int) *Atom {
	return S.atoms[i]
}

//Len returns the number of atoms in the selection. A nil selection
//has no atoms.
func (S *Selection) Len() int {
	if S == nil {
		return 0
	}
	return len(S.atoms)
}

//Coords returns the coordinates of the selection. They are not copied.
func (S *Selection) Coords() *v3.Matrix {
	if S == nil || S.coords == nil {
		return v3.Zeros(0)
	}
	return S.coords
}

//Select returns the atoms of mol (with coordinates coords) that belong, according to table, to a contact type.
//The atoms are ordered by serial. An atom that the table requests but is missing in mol is skipped
//with a message in the log. A missing "O" is replaced by the "OXT" of the same residue, if present.
//Residues with no entry in the table are skipped and logged.
func Select(mol Atomer, coords *v3.Matrix, table AtomTable) (*Selection, error) {
	s, err := selectAtoms(mol, coords, table, true)
	return s, errDecorate(err, "Select")
}

func selectAtoms(mol Atomer, coords *v3.Matrix, table AtomTable, verbose bool) (*Selection, error) {
	if mol.Len() != coords.NVecs() {
		return nil, CError{fmt.Sprintf("goRIG: %d atoms but %d coordinates", mol.Len(), coords.NVecs()), []string{"selectAtoms"}}
	}
	//residue serial -> atom name -> index in mol
	residues := make(map[int]map[string]int)
	restypes := make(map[int]string)
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		r, ok := residues[at.Molid]
		if !ok {
			r = make(map[string]int)
			residues[at.Molid] = r
			restypes[at.Molid] = at.Molname
		}
		if _, ok := r[at.Name]; !ok {
			r[at.Name] = i //alternative locations: keep the first one
		}
	}
	serials := make([]int, 0, len(residues))
	for k := range residues {
		serials = append(serials, k)
	}
	sort.Ints(serials)
	chosen := make(map[int]bool)
	indexes := make([]int, 0, len(serials))
	for _, resser := range serials {
		restype := restypes[resser]
		names, ok := table[restype]
		if !ok {
			if verbose {
				log.Printf("goRIG: residue %s %d has no atoms for this contact type, skipped", restype, resser)
			}
			continue
		}
		atoms := residues[resser]
		for _, name := range names {
			idx, ok := atoms[name]
			if !ok && name == "O" {
				idx, ok = atoms["OXT"]
			}
			if !ok {
				if verbose {
					log.Printf("goRIG: atom %s missing in residue %s %d", name, restype, resser)
				}
				continue
			}
			if chosen[idx] {
				continue
			}
			chosen[idx] = true
			indexes = append(indexes, idx)
		}
	}
	sort.Slice(indexes, func(a, b int) bool { return mol.Atom(indexes[a]).Id < mol.Atom(indexes[b]).Id })
	ats := make([]*Atom, len(indexes))
	for i, idx := range indexes {
		ats[i] = mol.Atom(idx)
	}
	c := v3.Zeros(len(indexes))
	if len(indexes) > 0 {
		c.SomeVecs(coords, indexes)
	}
	return &Selection{atoms: ats, coords: c}, nil
}
