/*
 * residue.go, part of gomol.
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

package mol

import "fmt"

//Residue is a named, numbered group of atoms. It owns an ordered collection
//of atoms; each atom it owns holds a non-owning back-reference to it, which
//is established exactly once, when the atom is added, and cleared only when
//the atom is removed. An atom can thus belong to at most one residue at a
//time.
type Residue struct {
	Name  string //residue name, e.g. "ALA"
	ID    int    //residue number in the chain
	atoms []*Atom
}

// NewResidue returns an empty residue with the given name and number.
func NewResidue(name string, id int) *Residue {
	R := new(Residue)
	R.Name = name
	R.ID = id
	return R
}

/*Residue methods*/

//Len returns the number of atoms in the residue.
func (R *Residue) Len() int {
	return len(R.atoms)
}

//Atom returns the Atom corresponding to the index i
//of the atom collection in the residue. Panics if
//out of range.
func (R *Residue) Atom(i int) *Atom {
	if i >= R.Len() {
		panic("Residue: Requested Atom out of bounds")
	}
	return R.atoms[i]
}

// AddAtom appends an atom at the end of the residue and sets the atom's
// back-reference to it. It returns an error if the atom is nil or already
// belongs to a residue, this one included.
func (R *Residue) AddAtom(at *Atom) error {
	if at == nil {
		return CError{"gomol: attempted to add a nil atom to a residue", []string{"Residue.AddAtom"}}
	}
	if at.parent != nil {
		return CError{fmt.Sprintf("gomol: atom %s (serial %d) already belongs to residue %s %d", at.Name, at.Serial, at.parent.Name, at.parent.ID), []string{"Residue.AddAtom"}}
	}
	at.parent = R
	R.atoms = append(R.atoms, at)
	return nil
}

// PopAtom removes the ith atom from the residue and returns it, clearing
// its back-reference, so the atom can be added to another residue. It
// returns an error if i is out of range.
func (R *Residue) PopAtom(i int) (*Atom, error) {
	if i < 0 || i >= R.Len() {
		return nil, CError{fmt.Sprintf("gomol: atom index %d out of range for residue %s %d", i, R.Name, R.ID), []string{"Residue.PopAtom"}}
	}
	at := R.atoms[i]
	if i == R.Len()-1 {
		R.atoms = R.atoms[:i]
	} else {
		R.atoms = append(R.atoms[:i], R.atoms[i+1:]...)
	}
	at.parent = nil
	return at, nil
}

//Masses returns a slice with the masses of all atoms in the residue, and an
//error if any of them has not been obtained.
func (R *Residue) Masses() ([]float64, error) {
	mass := make([]float64, R.Len())
	for i := 0; i < R.Len(); i++ {
		thisatom := R.Atom(i)
		if thisatom.Mass == 0 {
			return nil, CError{fmt.Sprintf("Not all the masses have been obtained: %d %v", i, thisatom), []string{"Residue.Masses"}}
		}
		mass[i] = thisatom.Mass
	}
	return mass, nil
}

func (R *Residue) String() string {
	return fmt.Sprintf("Residue %s %d (%d atoms)", R.Name, R.ID, R.Len())
}

//Implementation of the sort.Interface

//Swap function, as demanded by sort.Interface. It swaps atoms of the residue.
func (R *Residue) Swap(i, j int) {
	R.atoms[i], R.atoms[j] = R.atoms[j], R.atoms[i]
}

//Less: Should the atom i be sorted before atom j? Protein backbone atoms
//(N, CA, C, O, in that order) go before any other atom; ties break by
//serial number.
func (R *Residue) Less(i, j int) bool {
	a, b := R.atoms[i], R.atoms[j]
	if a.SortKey() != b.SortKey() {
		return a.SortKey() < b.SortKey()
	}
	return a.Serial < b.Serial
}

//Len is defined above

//End sort.Interface
