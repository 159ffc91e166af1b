/*
 * options.go, part of goRIG.
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

import "runtime"

//Options contains the options for the GraphFor and GraphsFor functions.
type Options struct {
	cutoff  float64
	ct      string
	verbose bool //log missing atoms and residues
	cpus    int  //only used by GraphsFor
}

//DefaultOptions return reasonable options: C-alpha contacts with a cutoff of 8 A,
//logging missing atoms, with all logical CPUs.
func DefaultOptions() *Options {
	r := new(Options)
	r.cutoff = 8.0
	r.ct = "Ca"
	r.verbose = true
	r.cpus = runtime.NumCPU()
	return r
}

//Cutoff returns the contact cutoff, in A,
//and sets it to a new value, if given.
func (O *Options) Cutoff(c ...float64) float64 {
	if len(c) > 0 {
		O.cutoff = c[0]
	}
	return O.cutoff
}

//ContactType returns the contact type, and sets it to a new value, if given.
//A contact type with the "i/j" form, i.e. "BB/SC", gives directed graphs.
func (O *Options) ContactType(ct ...string) string {
	if len(ct) > 0 && ct[0] != "" {
		O.ct = ct[0]
	}
	return O.ct
}

//Verbose returns whether missing atoms are logged,
//and sets it to a new value, if given.
func (O *Options) Verbose(v ...bool) bool {
	if len(v) > 0 {
		O.verbose = v[0]
	}
	return O.verbose
}

//CPUs returns the number of gorutines to be used by GraphsFor,
//and sets it to a new value, if a positive one is given.
func (O *Options) CPUs(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.cpus = n[0]
	}
	return O.cpus
}
