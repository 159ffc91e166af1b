/*
 * graph_test.go, part of goRIG.
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
	"reflect"
	"testing"
)

func testGraph(Te *testing.T) *Graph {
	nodes := map[int]string{1: "ALA", 2: "GLY", 3: "SER", 4: "LEU", 5: "LYS", 6: "ALA", 7: "VAL"}
	contacts := []Contact{{1, 2}, {2, 1}, {1, 3}, {1, 5}, {2, 5}, {3, 5}, {2, 7}, {4, 5}, {1, 7}}
	g, err := NewGraph(contacts, nodes, "AGSLKAV", 8.0, "Ca")
	if err != nil {
		Te.Fatal(err)
	}
	return g
}

func TestContactList(Te *testing.T) {
	l := NewContactList(false)
	if !l.Add(Contact{3, 1}) || l.Add(Contact{1, 3}) || l.Add(Contact{2, 2}) {
		Te.Errorf("an undirected list should take (3,1) once and reject self contacts")
	}
	if l.Sorted()[0] != (Contact{1, 3}) {
		Te.Errorf("contacts should be stored with I<J")
	}
	d := NewContactList(true)
	d.Add(Contact{3, 1})
	d.Add(Contact{1, 3})
	if d.Len() != 2 || d.MaxNode() != 3 {
		Te.Errorf("a directed list should keep both (3,1) and (1,3)")
	}
	if !d.Remove(Contact{3, 1}) || d.Has(Contact{3, 1}) || !d.Has(Contact{1, 3}) {
		Te.Errorf("wrong removal in directed list")
	}
	if (Contact{7, 2}).Range() != 5 {
		Te.Errorf("wrong range")
	}
}

func TestEdges(Te *testing.T) {
	g := testGraph(Te)
	if g.NumContacts() != 8 {
		Te.Fatalf("(1,2) and (2,1) are the same contact: expected 8 contacts, got %d", g.NumContacts())
	}
	if err := g.AddEdge(Contact{3, 3}); err == nil {
		Te.Errorf("self contacts should be rejected")
	}
	if g.Modified() {
		Te.Errorf("a rejected edge should not modify the graph")
	}
	g.AddEdge(Contact{6, 3})
	if g.NumContacts() != 9 || !g.Modified() || !g.HasContact(Contact{3, 6}) {
		Te.Errorf("AddEdge failed")
	}
	if g.DelEdge(Contact{6, 7}) {
		Te.Errorf("deleting a missing contact should return false")
	}
	if !g.DelEdge(Contact{6, 3}) || g.NumContacts() != 8 {
		Te.Errorf("DelEdge failed")
	}
	if _, err := NewGraph([]Contact{{1, 1}}, nil, "", 8, "Ca"); err == nil {
		Te.Errorf("NewGraph should reject self contacts")
	}
	if g.FullLength() != 7 || g.ObsLength() != 7 {
		Te.Errorf("wrong lengths %d %d", g.FullLength(), g.ObsLength())
	}
}

func TestRestrict(Te *testing.T) {
	for _, k := range []int{1, 2, 3, 5} {
		for _, maxfirst := range []bool{true, false} {
			g := testGraph(Te)
			orig := g.Copy()
			if maxfirst {
				g.RestrictToMaxRange(k)
				g.RestrictToMinRange(k)
			} else {
				g.RestrictToMinRange(k)
				g.RestrictToMaxRange(k)
			}
			first := g.Contacts()
			for _, c := range first {
				if !orig.HasContact(c) {
					Te.Errorf("restricted graph has a contact %v not in the original", c)
				}
				if c.Range() != k {
					Te.Errorf("contact %v survived restriction to range %d", c, k)
				}
			}
			g.RestrictToMaxRange(k)
			g.RestrictToMinRange(k)
			if !reflect.DeepEqual(first, g.Contacts()) {
				Te.Errorf("restriction is not idempotent for k=%d", k)
			}
			if g.NumContacts() != len(g.Contacts()) {
				Te.Errorf("NumContacts out of sync")
			}
		}
	}
	g := testGraph(Te)
	g.RestrictToMinRange(3)
	fmt.Println(g)
	if g.NumContacts() != 4 {
		Te.Errorf("expected 4 contacts with range >= 3, got %d", g.NumContacts())
	}
}

func TestCopy(Te *testing.T) {
	g := testGraph(Te)
	c := g.Copy()
	if !reflect.DeepEqual(g.Contacts(), c.Contacts()) || !reflect.DeepEqual(g.Nodes(), c.Nodes()) {
		Te.Fatalf("copy differs from the original")
	}
	c.DelEdge(Contact{1, 2})
	c.AddEdge(Contact{6, 7})
	c.RestrictToMaxRange(2)
	n := c.Nodes()
	n[1] = "TRP"
	if g.NumContacts() != 8 || !g.HasContact(Contact{1, 2}) || g.HasContact(Contact{6, 7}) || g.Modified() {
		Te.Errorf("changing the copy changed the original")
	}
	if r, _ := g.ResType(1); r != "ALA" {
		Te.Errorf("changing the nodes of the copy changed the original")
	}
}

func TestNeighborhoods(Te *testing.T) {
	g := testGraph(Te)
	n := g.NodeNeighborhood(5)
	if !reflect.DeepEqual(n.Serials(), []int{1, 2, 3, 4}) {
		Te.Errorf("wrong neighborhood of 5: %v", n.Serials())
	}
	if n[4] != "LEU" {
		Te.Errorf("wrong residue type in neighborhood")
	}
	e := g.EdgeNeighborhood(1, 2)
	if !reflect.DeepEqual(e.Serials(), []int{5, 7}) {
		Te.Errorf("wrong common neighborhood of 1 and 2: %v", e.Serials())
	}
	if len(g.EdgeNeighborhood(4, 7)) != 0 {
		Te.Errorf("4 and 7 have no common neighbors")
	}
}

func TestContactMap(Te *testing.T) {
	g := testGraph(Te)
	cm := g.ContactMap()
	r, c := cm.Dims()
	if r != 7 || c != 7 {
		Te.Fatalf("wrong contact map dimensions %d %d", r, c)
	}
	sum := 0.0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum += cm.At(i, j)
		}
	}
	if sum != 8 || cm.At(0, 1) != 1 || cm.At(1, 0) != 0 {
		Te.Errorf("wrong contact map")
	}
	e, _ := NewGraph(nil, nil, "", 8, "Ca")
	if !e.ContactMap().IsEmpty() {
		Te.Errorf("an empty graph should give an empty contact map")
	}
}
