/*
 * contacts.go, part of goRIG.
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
	"fmt"
	"sort"
)

//Contact is a pair of residue serials. For directed contact types I is
//the residue on the i side and J the one on the j side.
type Contact struct {
	I, J int
}

//Range returns the sequence separation of the two residues in the contact.
func (C Contact) Range() int {
	if C.I > C.J {
		return C.I - C.J
	}
	return C.J - C.I
}

//canonical returns the contact with I<J, unless directed is true,
//in which case C is returned unchanged.
func (C Contact) canonical(directed bool) Contact {
	if !directed && C.I > C.J {
		return Contact{C.J, C.I}
	}
	return C
}

func (C Contact) String() string {
	return fmt.Sprintf("(%d,%d)", C.I, C.J)
}

//ContactList is a set of contacts. For undirected lists (i,j) and (j,i) are the same contact.
//The zero value is not usable, use NewContactList.
type ContactList struct {
	set      map[Contact]struct{}
	directed bool
}

//NewContactList returns an empty list of contacts.
func NewContactList(directed bool) *ContactList {
	return &ContactList{set: make(map[Contact]struct{}), directed: directed}
}

//Directed returns true if the order of the residues in a contact matters.
func (L *ContactList) Directed() bool { return L.directed }

//Add adds c to the list. It returns false, and does nothing, if c is a
//self contact or if it is already present.
func (L *ContactList) Add(c Contact) bool {
	if c.I == c.J {
		return false
	}
	c = c.canonical(L.directed)
	if _, ok := L.set[c]; ok {
		return false
	}
	L.set[c] = struct{}{}
	return true
}

//Remove removes c from the list, and returns true if c was present.
func (L *ContactList) Remove(c Contact) bool {
	c = c.canonical(L.directed)
	if _, ok := L.set[c]; !ok {
		return false
	}
	delete(L.set, c)
	return true
}

//Has returns true if c is in the list.
func (L *ContactList) Has(c Contact) bool {
	_, ok := L.set[c.canonical(L.directed)]
	return ok
}

//Len returns the number of contacts in the list.
func (L *ContactList) Len() int {
	return len(L.set)
}

//Sorted returns the contacts in the list, ordered by I, then by J.
func (L *ContactList) Sorted() []Contact {
	ret := make([]Contact, 0, len(L.set))
	for c := range L.set {
		ret = append(ret, c)
	}
	sort.Slice(ret, func(a, b int) bool {
		if ret[a].I != ret[b].I {
			return ret[a].I < ret[b].I
		}
		return ret[a].J < ret[b].J
	})
	return ret
}

//Copy returns an independent copy of the list.
func (L *ContactList) Copy() *ContactList {
	ret := NewContactList(L.directed)
	for c := range L.set {
		ret.set[c] = struct{}{}
	}
	return ret
}

//MaxNode returns the largest residue serial in the list, or 0 for an empty list.
func (L *ContactList) MaxNode() int {
	max := 0
	for c := range L.set {
		if c.I > max {
			max = c.I
		}
		if c.J > max {
			max = c.J
		}
	}
	return max
}
