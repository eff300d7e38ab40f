/*
 * doc.go, part of gomol.
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
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
 * goMol is developed at the Universidad de Santiago de Chile (USACH)
 *
 */

/*Package mol provides the per-atom data model of a macromolecular structure.


	**goMol Capabilities**


    The Atom object stores the atom name (both with and without padding spaces),
	coordinates, B factor, occupancy and alternative location specifier of an
	atom in a structural model or, in the case of data coming from PQR files,
	the per-atom charge and radius that replace the B factor and occupancy.

    Atomic masses are assigned from a data-driven periodic table covering the
	standard elements, keyed by upper-case element symbol. Unrecognized symbols
	yield an explicit "unknown" result, never a silent guess.

    The Residue object owns an ordered collection of atoms. Each atom added to
	a residue gets a non-owning back-reference to it, established exactly once
	on addition and cleared on removal.

    The Residue object implements the sort.Interface interface, so atoms can
	easily be sorted with the protein backbone (N, CA, C, O) first.

    Coordinates are handled by the gomol/vec package, which wraps a gonum
	matrix, so the gonum facilities remain available for them.

    Per-atom scalars (B factors, occupancies, PQR charges and radii) can be
	plotted against serial numbers with the gomol/molplot package.

Note: fundamental accessors here panic instead of returning errors. If an
out-of-range atom is requested, the program is way-most likely wrong and should
crash. Constructors, on the other hand, return errors.
*/
package mol
