/*
 * doc.go, part of goRIG.
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

/*Package rig is the main package of the goRIG library. It builds residue interaction
graphs (RIGs) from the coordinates of a biomolecule: two residues are in contact if
atoms representing them are closer than a cutoff.


	**goRIG Capabilities**


    Selects, for each residue, the atoms of a contact type (say, only the C-alpha,
	or the backbone) from a table supplied by the user.

    Finds all atom pairs within a cutoff using a uniform grid (see the grid package),
	without evaluating all N^2 distances.

    Contact graphs can be undirected (the same atoms on both sides) or directed
	(contact types like "BB/SC", where the i side and the j side are different
	subsets of atoms).

    Contact graphs can be edited, filtered by sequence separation, copied, and queried for
	neighborhoods. They can also be exposed as gonum graphs (package chemgraph),
	histogrammed (package histo) and plotted as contact maps (package chemplot).

    Superimposes sets of coordinates and obtains the RMSD with the Kabsch
	algorithm (package align).


The coordinates are kept in v3.Matrix objects (one atom per row), apart from the
atomic information, which is obtained through the Atomer interface.

goRIG does not read or write files.

*/
package rig
