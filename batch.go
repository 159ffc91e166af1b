/*
 * batch.go, part of goRIG.
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

import v3 "github.com/rmera/rig/v3"

//Structure is a molecule with its coordinates, and optionally its sequence, for which a graph is to be built.
type Structure struct {
	Mol      Atomer
	Coords   *v3.Matrix
	Nodes    map[int]string //can be nil
	Sequence string
}

type graphanderr struct {
	index int
	g     *Graph
	err   error
}

func concgraph(jobs chan int, structs []*Structure, tables map[string]AtomTable, o *Options, r chan *graphanderr) {
	for i := range jobs {
		s := structs[i]
		g, err := GraphFor(s.Mol, s.Coords, s.Nodes, s.Sequence, tables, o)
		r <- &graphanderr{index: i, g: g, err: err}
	}
}

//GraphsFor builds the graphs for several structures, using o.CPUs() gorutines. The structures are independent,
//and each one is processed as in GraphFor. The graphs and errors are returned in the order of structs.
func GraphsFor(structs []*Structure, tables map[string]AtomTable, o *Options) ([]*Graph, []error) {
	if o == nil {
		o = DefaultOptions()
	}
	graphs := make([]*Graph, len(structs))
	errs := make([]error, len(structs))
	if len(structs) == 0 {
		return graphs, errs
	}
	cpus := o.CPUs()
	if cpus > len(structs) {
		cpus = len(structs)
	}
	if cpus < 1 {
		cpus = 1
	}
	jobs := make(chan int, len(structs))
	results := make(chan *graphanderr)
	for i := 0; i < cpus; i++ {
		go concgraph(jobs, structs, tables, o, results)
	}
	for i := range structs {
		jobs <- i
	}
	close(jobs)
	for range structs {
		res := <-results
		graphs[res.index] = res.g
		errs[res.index] = res.err
	}
	return graphs, errs
}
