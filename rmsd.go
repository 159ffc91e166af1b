/*
 * rmsd.go, part of goRIG.
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

package rig

import (
	"github.com/rmera/rig/align"
	v3 "github.com/rmera/rig/v3"
)

//resAtom identifies an atom across two structures of the same molecule.
type resAtom struct {
	molid int
	name  string
}

//commonAtoms selects the atoms of the contact type given by table from a and b, and returns
//both selections with the indexes, in each, of the atoms present in both. Atoms are matched by
//residue serial and atom name, and the indexes follow the order of sa.
func commonAtoms(a, b Coorder, table AtomTable) (sa, sb *Selection, aidx, bidx []int, err error) {
	sa, err = selectAtoms(a, a.Coords(), table, false)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	sb, err = selectAtoms(b, b.Coords(), table, false)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	inb := make(map[resAtom]int, sb.Len())
	for i := 0; i < sb.Len(); i++ {
		at := sb.Atom(i)
		inb[resAtom{at.Molid, at.Name}] = i
	}
	for i := 0; i < sa.Len(); i++ {
		at := sa.Atom(i)
		j, ok := inb[resAtom{at.Molid, at.Name}]
		if !ok {
			continue
		}
		aidx = append(aidx, i)
		bidx = append(bidx, j)
	}
	return sa, sb, aidx, bidx, nil
}

//RMSDFor superimposes b onto a using only the atoms of the contact type given by table
//that are present in both structures, matched by residue serial and atom name.
//Residues or atoms missing in either structure are ignored. An error is returned if the
//structures have no atoms in common.
func RMSDFor(a, b Coorder, table AtomTable) (*align.Result, error) {
	sa, sb, aidx, bidx, err := commonAtoms(a, b, table)
	if err != nil {
		return nil, errDecorate(err, "RMSDFor")
	}
	if len(aidx) == 0 {
		return nil, CError{"goRIG: the structures have no atoms in common", []string{"RMSDFor"}}
	}
	ca := v3.Zeros(len(aidx))
	ca.SomeVecs(sa.Coords(), aidx)
	cb := v3.Zeros(len(bidx))
	cb.SomeVecs(sb.Coords(), bidx)
	r, err := align.Kabsch(ca, cb)
	return r, errDecorate(err, "RMSDFor")
}
