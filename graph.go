/*
 * graph.go, part of goRIG.
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
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Graph is a residue interaction graph: a set of contacts between residues, plus
//information on the residues and on how the contacts were obtained.
//A Graph is not safe for concurrent modification.
type Graph struct {
	contacts *ContactList
	nodes    map[int]string //residue serial -> residue type
	sequence string
	cutoff   float64
	ct       string
	directed bool
	modified bool
}

//IsDirected returns true if the contact type ct has the "i/j" form, i.e. "BB/SC".
func IsDirected(ct string) bool {
	return strings.Contains(ct, "/")
}

//NewGraph returns a graph with the given contacts, nodes (a map from residue serial to residue type),
//sequence (which can be empty), cutoff and contact type. The contacts and the nodes are copied.
//It returns an error if one of the contacts joins a residue with itself.
func NewGraph(contacts []Contact, nodes map[int]string, sequence string, cutoff float64, ct string) (*Graph, error) {
	G := &Graph{
		contacts: NewContactList(IsDirected(ct)),
		nodes:    make(map[int]string, len(nodes)),
		sequence: sequence,
		cutoff:   cutoff,
		ct:       ct,
		directed: IsDirected(ct),
	}
	for k, v := range nodes {
		G.nodes[k] = v
	}
	for _, c := range contacts {
		if c.I == c.J {
			return nil, CError{fmt.Sprintf("goRIG: self contact %v", c), []string{"NewGraph"}}
		}
		G.contacts.Add(c)
	}
	return G, nil
}

//newGraphFromList builds a graph taking ownership of contacts and nodes.
func newGraphFromList(contacts *ContactList, nodes map[int]string, sequence string, cutoff float64, ct string) *Graph {
	return &Graph{
		contacts: contacts,
		nodes:    nodes,
		sequence: sequence,
		cutoff:   cutoff,
		ct:       ct,
		directed: contacts.Directed(),
	}
}

/**Accessors**/

//NumContacts returns the number of contacts in the graph.
func (G *Graph) NumContacts() int { return G.contacts.Len() }

//ObsLength returns the number of observed residues (nodes) in the graph.
func (G *Graph) ObsLength() int { return len(G.nodes) }

//FullLength returns the length of the sequence or, if the sequence is not known,
//the largest residue serial among nodes and contacts.
func (G *Graph) FullLength() int {
	if G.sequence != "" {
		return len(G.sequence)
	}
	max := G.contacts.MaxNode()
	for k := range G.nodes {
		if k > max {
			max = k
		}
	}
	return max
}

//Directed returns true if the contacts of the graph have a direction.
func (G *Graph) Directed() bool { return G.directed }

//Modified returns true if contacts were added or removed after the graph was built.
func (G *Graph) Modified() bool { return G.modified }

//Cutoff returns the distance cutoff used to build the graph, in A.
func (G *Graph) Cutoff() float64 { return G.cutoff }

//CT returns the contact type of the graph.
func (G *Graph) CT() string { return G.ct }

//Sequence returns the sequence of the graph. It can be empty.
func (G *Graph) Sequence() string { return G.sequence }

//ResType returns the residue type of the node with serial resser, and
//whether such node exists.
func (G *Graph) ResType(resser int) (string, bool) {
	r, ok := G.nodes[resser]
	return r, ok
}

//Contacts returns a copy of the contacts of the graph, sorted.
func (G *Graph) Contacts() []Contact {
	return G.contacts.Sorted()
}

//HasContact returns true if c is a contact in the graph.
func (G *Graph) HasContact(c Contact) bool {
	return G.contacts.Has(c)
}

//Nodes returns a copy of the map of residue serials to residue types.
func (G *Graph) Nodes() map[int]string {
	ret := make(map[int]string, len(G.nodes))
	for k, v := range G.nodes {
		ret[k] = v
	}
	return ret
}

//Serials returns the serials of the nodes, sorted.
func (G *Graph) Serials() []int {
	ret := make([]int, 0, len(G.nodes))
	for k := range G.nodes {
		ret = append(ret, k)
	}
	sort.Ints(ret)
	return ret
}

/**Mutators**/

//AddEdge adds the contact c to the graph. Self contacts are rejected with an error.
//Adding a contact that is already present does nothing.
func (G *Graph) AddEdge(c Contact) error {
	if c.I == c.J {
		return CError{fmt.Sprintf("goRIG: self contact %v", c), []string{"Graph.AddEdge"}}
	}
	if G.contacts.Add(c) {
		G.modified = true
	}
	return nil
}

//DelEdge removes the contact c from the graph and returns true if it was present.
func (G *Graph) DelEdge(c Contact) bool {
	if G.contacts.Remove(c) {
		G.modified = true
		return true
	}
	return false
}

//RestrictToMaxRange removes all contacts between residues more than k
//positions apart in the sequence.
func (G *Graph) RestrictToMaxRange(k int) {
	G.restrict(func(c Contact) bool { return c.Range() > k })
}

//RestrictToMinRange removes all contacts between residues less than k
//positions apart in the sequence.
func (G *Graph) RestrictToMinRange(k int) {
	G.restrict(func(c Contact) bool { return c.Range() < k })
}

//restrict deletes the contacts for which del returns true. The contacts are collected first,
//and removed in a second pass.
func (G *Graph) restrict(del func(Contact) bool) {
	todel := make([]Contact, 0)
	for c := range G.contacts.set {
		if del(c) {
			todel = append(todel, c)
		}
	}
	for _, c := range todel {
		G.DelEdge(c)
	}
}

//Copy returns a deep copy of the graph. Changes to the copy don't affect the original.
func (G *Graph) Copy() *Graph {
	ret := newGraphFromList(G.contacts.Copy(), G.Nodes(), G.sequence, G.cutoff, G.ct)
	ret.modified = G.modified
	return ret
}

/**Neighborhoods**/

//Neighborhood is a set of residues, given as a map from residue serial to residue type.
type Neighborhood map[int]string

//Has returns true if the residue with serial resser is in the neighborhood.
func (N Neighborhood) Has(resser int) bool {
	_, ok := N[resser]
	return ok
}

//Serials returns the serials of the residues in the neighborhood, sorted.
func (N Neighborhood) Serials() []int {
	ret := make([]int, 0, len(N))
	for k := range N {
		ret = append(ret, k)
	}
	sort.Ints(ret)
	return ret
}

//NodeNeighborhood returns the residues in contact with the residue of serial resser,
//in any direction.
func (G *Graph) NodeNeighborhood(resser int) Neighborhood {
	nbh := make(Neighborhood)
	for c := range G.contacts.set {
		if c.I == resser {
			nbh[c.J] = G.nodes[c.J]
		}
		if c.J == resser {
			nbh[c.I] = G.nodes[c.I]
		}
	}
	return nbh
}

//EdgeNeighborhood returns the common neighbors of the residues iresser and jresser.
func (G *Graph) EdgeNeighborhood(iresser, jresser int) Neighborhood {
	inbh := G.NodeNeighborhood(iresser)
	jnbh := G.NodeNeighborhood(jresser)
	//iterate over the smallest one
	if len(jnbh) < len(inbh) {
		inbh, jnbh = jnbh, inbh
	}
	nbh := make(Neighborhood)
	for k, v := range inbh {
		if jnbh.Has(k) {
			nbh[k] = v
		}
	}
	return nbh
}

//ContactMap returns a FullLength x FullLength matrix with 1 in the element (i-1,j-1)
//for each contact (i,j), and 0 elsewhere. For undirected graphs only the upper
//triangle is filled. Contacts involving serials outside 1..FullLength are not included.
//The returned matrix is empty if FullLength is 0.
func (G *Graph) ContactMap() *mat.Dense {
	n := G.FullLength()
	if n <= 0 {
		return new(mat.Dense)
	}
	cm := mat.NewDense(n, n, nil)
	for c := range G.contacts.set {
		if c.I < 1 || c.J < 1 || c.I > n || c.J > n {
			continue
		}
		cm.Set(c.I-1, c.J-1, 1)
	}
	return cm
}

//String returns a description of the graph followed by one contact per line.
func (G *Graph) String() string {
	ret := make([]string, 0, G.NumContacts()+1)
	ret = append(ret, fmt.Sprintf("#CT: %s #CUTOFF: %g #NODES: %d #CONTACTS: %d #DIRECTED: %t", G.ct, G.cutoff, G.ObsLength(), G.NumContacts(), G.directed))
	for _, c := range G.Contacts() {
		ret = append(ret, fmt.Sprintf("%d\t%d", c.I, c.J))
	}
	return strings.Join(ret, "\n")
}
