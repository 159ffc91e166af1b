/*
 * graph.go, part of goRIG.
 *
 * Copyright 2023 Raul Mera <rmera{at}usachDOTcl>
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

//Package chemgraph exposes residue interaction graphs as gonum graphs, so the
//gonum graph algorithms (shortest paths, components, etc.) can be used on them.
package chemgraph

import (
	"math"
	"sort"

	rig "github.com/rmera/rig"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/topo"
)

//Residue is a node of the network. It implements graph.Node
type Residue struct {
	Serial int
	Type   string
}

func (R *Residue) ID() int64 {
	return int64(R.Serial)
}

//Edge is a contact between two residues. It implements graph.WeightedEdge
type Edge struct {
	Res1, Res2 *Residue
	Weightfunc func(*Edge) float64
}

//Weight returns the weight of the edge. If no Weightfunc is set, all
//edges weigh 1.
func (E *Edge) Weight() float64 {
	if E.Weightfunc == nil {
		return 1
	}
	return E.Weightfunc(E)
}

//Range returns the sequence separation between the two residues.
func (E *Edge) Range() int {
	return rig.Contact{I: E.Res1.Serial, J: E.Res2.Serial}.Range()
}

func (E *Edge) From() graph.Node {
	return E.Res1
}

func (E *Edge) To() graph.Node {
	return E.Res2
}

//ReversedEdge returns a new edge with the residues swapped.
func (E *Edge) ReversedEdge() graph.Edge {
	return &Edge{Res1: E.Res2, Res2: E.Res1, Weightfunc: E.Weightfunc}
}

//Network implements gonum's graph.Graph, graph.Weighted, graph.Undirected and graph.Directed
//interfaces for a residue interaction graph. For networks built from undirected graphs,
//the methods that take a direction ignore it.
type Network struct {
	residues map[int64]*Residue
	out      map[int64]map[int64]*Edge
	in       map[int64]map[int64]*Edge
	directed bool
}

//FromGraph returns a network with the residues of g as nodes and its contacts as edges.
//weightfunc gives the weight of each edge. If nil, all edges weigh 1.
//Residues that appear in contacts but not among the nodes of g are added with an empty Type.
func FromGraph(g *rig.Graph, weightfunc func(*Edge) float64) *Network {
	N := &Network{
		residues: make(map[int64]*Residue),
		out:      make(map[int64]map[int64]*Edge),
		in:       make(map[int64]map[int64]*Edge),
		directed: g.Directed(),
	}
	for k, v := range g.Nodes() {
		N.residues[int64(k)] = &Residue{Serial: k, Type: v}
	}
	for _, c := range g.Contacts() {
		e := &Edge{Res1: N.residue(c.I), Res2: N.residue(c.J), Weightfunc: weightfunc}
		N.add(N.out, e.Res1.ID(), e.Res2.ID(), e)
		N.add(N.in, e.Res2.ID(), e.Res1.ID(), e)
	}
	return N
}

func (N *Network) residue(serial int) *Residue {
	r, ok := N.residues[int64(serial)]
	if !ok {
		r = &Residue{Serial: serial}
		N.residues[int64(serial)] = r
	}
	return r
}

func (N *Network) add(m map[int64]map[int64]*Edge, a, b int64, e *Edge) {
	if m[a] == nil {
		m[a] = make(map[int64]*Edge)
	}
	m[a][b] = e
}

//Directed returns true if the network comes from a directed graph.
func (N *Network) Directed() bool { return N.directed }

//Node returns the residue with the given ID, or nil if there is none.
func (N *Network) Node(id int64) graph.Node {
	r, ok := N.residues[id]
	if !ok {
		return nil
	}
	return r
}

//Residue returns the residue with the given serial, or nil.
func (N *Network) Residue(serial int) *Residue {
	return N.residues[int64(serial)]
}

func sortedNodes(ids map[int64]*Residue) graph.Nodes {
	if len(ids) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, 0, len(ids))
	for _, r := range ids {
		nodes = append(nodes, r)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	return iterator.NewOrderedNodes(nodes)
}

//Nodes returns all the residues in the network, ordered by serial.
func (N *Network) Nodes() graph.Nodes {
	return sortedNodes(N.residues)
}

func (N *Network) neighbors(id int64, maps ...map[int64]map[int64]*Edge) map[int64]*Residue {
	ret := make(map[int64]*Residue)
	for _, m := range maps {
		for k := range m[id] {
			ret[k] = N.residues[k]
		}
	}
	return ret
}

//From returns the residues reachable from the one with the given id through one edge.
func (N *Network) From(id int64) graph.Nodes {
	if N.directed {
		return sortedNodes(N.neighbors(id, N.out))
	}
	return sortedNodes(N.neighbors(id, N.out, N.in))
}

//To returns the residues from which the one with the given id can be reached through one edge.
func (N *Network) To(id int64) graph.Nodes {
	if N.directed {
		return sortedNodes(N.neighbors(id, N.in))
	}
	return N.From(id)
}

//HasEdgeBetween returns true if there is an edge between xid and yid, in any direction.
func (N *Network) HasEdgeBetween(xid, yid int64) bool {
	return N.EdgeBetween(xid, yid) != nil
}

//HasEdgeFromTo returns whether an edge exists from uid to vid. The direction
//is ignored for undirected networks.
func (N *Network) HasEdgeFromTo(uid, vid int64) bool {
	return N.Edge(uid, vid) != nil
}

func (N *Network) edge(uid, vid int64) *Edge {
	if e, ok := N.out[uid][vid]; ok {
		return e
	}
	if N.directed {
		return nil
	}
	if e, ok := N.out[vid][uid]; ok {
		return e.ReversedEdge().(*Edge)
	}
	return nil
}

//Edge returns the edge from uid to vid, or nil. The direction
//is ignored for undirected networks.
func (N *Network) Edge(uid, vid int64) graph.Edge {
	if e := N.edge(uid, vid); e != nil {
		return e
	}
	return nil
}

//WeightedEdge is like Edge, but it returns a graph.WeightedEdge
func (N *Network) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	if e := N.edge(uid, vid); e != nil {
		return e
	}
	return nil
}

//EdgeBetween returns the edge between xid and yid, in any direction, or nil.
func (N *Network) EdgeBetween(xid, yid int64) graph.Edge {
	if e, ok := N.out[xid][yid]; ok {
		return e
	}
	if e, ok := N.out[yid][xid]; ok {
		return e
	}
	return nil
}

//Weight returns the weight of the edge from xid to yid. It returns 0 and true for xid==yid,
//and +Inf and false if there is no such edge.
func (N *Network) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid {
		return 0, true
	}
	e := N.edge(xid, yid)
	if e == nil {
		return math.Inf(1), false
	}
	return e.Weight(), true
}

//undirectedView presents a network as undirected regardless of its contacts' direction.
type undirectedView struct {
	*Network
}

func (U undirectedView) From(id int64) graph.Nodes {
	return sortedNodes(U.neighbors(id, U.out, U.in))
}

func (U undirectedView) Edge(uid, vid int64) graph.Edge {
	return U.EdgeBetween(uid, vid)
}

//ShortestPath returns the serials of the residues in the lightest path between residues from and to,
//and the weight of the path. It returns nil and +Inf if there is no such path.
func (N *Network) ShortestPath(from, to int) ([]int, float64) {
	ori := N.Node(int64(from))
	if ori == nil {
		return nil, math.Inf(1)
	}
	paths := path.DijkstraFrom(ori, N)
	nodes, w := paths.To(int64(to))
	if len(nodes) == 0 {
		return nil, math.Inf(1)
	}
	ret := make([]int, len(nodes))
	for i, v := range nodes {
		ret[i] = int(v.ID())
	}
	return ret, w
}

//Components returns the connected components of the network, ignoring the direction of
//the edges, as lists of residue serials. Each list is sorted, and the lists are ordered by their first element.
func (N *Network) Components() [][]int {
	comps := topo.ConnectedComponents(undirectedView{N})
	ret := make([][]int, 0, len(comps))
	for _, c := range comps {
		s := make([]int, len(c))
		for i, v := range c {
			s[i] = int(v.ID())
		}
		sort.Ints(s)
		ret = append(ret, s)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

//Degrees returns, for each residue, the number of different residues it is in contact with,
//in any direction.
func (N *Network) Degrees() map[int]int {
	ret := make(map[int]int, len(N.residues))
	for id, r := range N.residues {
		ret[r.Serial] = len(N.neighbors(id, N.out, N.in))
	}
	return ret
}
