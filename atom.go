/*
 * atom.go, part of gomol.
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

import (
	"fmt"
	"strings"

	vec "github.com/rmera/gomol/vec"
)

//Atom contains the per-atom data of a structural model: the atom name with
//and without padding spaces, the coordinates, the isotropic B factor, the
//occupancy and the alternative location specifier for disordered atoms.
//For data coming from PQR files, the per-atom charge and radius take the
//place of the B factor and occupancy. Both sets of fields can coexist in
//one Atom; no mutual-exclusivity check is made.
//The zero value of a numeric field means "not set", as does an empty Symbol
//and a nil Coord. Note that nothing here validates occupancies against the
//0.0-1.0 range, or coordinates, which are stored as given.
type Atom struct {
	Name       string   //atom name, without padding spaces, e.g. "CA"
	FullName   string   //atom name as found in the record, e.g. " CA "
	Coord      *vec.Vec //cartesian coordinates, in A
	Bfactor    float64  //isotropic B factor
	Occupancy  float64  //occupancy of the modeled site (0.0-1.0 by convention)
	AltLoc     byte     //alternative location specifier, ' ' if none
	Serial     int      //serial number in the structure
	Symbol     string   //upper-case element symbol, empty if unknown
	Mass       float64  //atomic mass, derived from Symbol, 0 if not assignable
	PQRCharge  float64  //per-atom charge, from PQR data
	PQRRadius  float64  //per-atom radius, from PQR data, in A
	Anisou     []float64
	SigAtm     []float64 //standard deviations of the positions
	SigUij     []float64 //standard deviations of the anisotropic B factor
	Disordered bool
	Xtra       map[string]interface{} //any additional per-atom properties
	parent     *Residue               //set by Residue.AddAtom, nil otherwise
}

// AssignElement checks that a non-empty element symbol is already fully
// upper-case and returns it unchanged. It does not canonicalize the symbol
// against the periodic table, so unknown, well-cased symbols pass through.
func AssignElement(element string) (string, error) {
	if element != "" && element != strings.ToUpper(element) {
		return "", CError{fmt.Sprintf("gomol: element symbol %q is not upper-case", element), []string{"AssignElement"}}
	}
	return element, nil
}

func newAtom(name, fullname string, coord *vec.Vec, altloc byte, serial int, element string) (*Atom, error) {
	symbol, err := AssignElement(element)
	if err != nil {
		return nil, err
	}
	A := new(Atom)
	A.Name = name
	A.FullName = fullname
	A.Coord = coord
	A.AltLoc = altloc
	A.Serial = serial
	A.Symbol = symbol
	A.AssignMass()
	return A, nil
}

// NewAtom builds an Atom from PDB-style data, in one step. The only check
// made is that a non-empty element symbol must already be upper-case;
// violating it fails the construction. Everything else, including an
// occupancy outside 0.0-1.0, is stored as given. The atom's mass is derived
// from the element symbol, and left at 0 if the symbol is empty or not in
// the periodic table.
func NewAtom(name, fullname string, coord *vec.Vec, bfactor, occupancy float64, altloc byte, serial int, element string) (*Atom, error) {
	A, err := newAtom(name, fullname, coord, altloc, serial, element)
	if err != nil {
		return nil, errDecorate(err, "NewAtom")
	}
	A.Bfactor = bfactor
	A.Occupancy = occupancy
	return A, nil
}

// NewPQRAtom builds an Atom from PQR-style data, where the per-atom charge
// and radius take the place of the B factor and occupancy. The same single
// element-case check of NewAtom applies.
func NewPQRAtom(name, fullname string, coord *vec.Vec, charge, radius float64, altloc byte, serial int, element string) (*Atom, error) {
	A, err := newAtom(name, fullname, coord, altloc, serial, element)
	if err != nil {
		return nil, errDecorate(err, "NewPQRAtom")
	}
	A.PQRCharge = charge
	A.PQRRadius = radius
	return A, nil
}

//Atom methods

// AssignMass derives the atom's mass from its element symbol, using the
// periodic table. If the symbol is empty or unknown, the mass is set to 0.
func (A *Atom) AssignMass() {
	A.Mass, _ = MassOf(A.Symbol)
}

// Parent returns the residue owning this atom, or nil if the atom has not
// been added to any residue.
func (A *Atom) Parent() *Residue {
	return A.parent
}

//Copy returns a copy of the Atom object. The copy does not keep the parent
//residue of the original, as it is not owned by it; it must be added to a
//residue on its own right. Slices and the extra-properties table are
//deep-copied.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.Name = A.Name
	Newat.FullName = A.FullName
	if A.Coord != nil {
		Newat.Coord = A.Coord.Clone()
	}
	Newat.Bfactor = A.Bfactor
	Newat.Occupancy = A.Occupancy
	Newat.AltLoc = A.AltLoc
	Newat.Serial = A.Serial
	Newat.Symbol = A.Symbol
	Newat.Mass = A.Mass
	Newat.PQRCharge = A.PQRCharge
	Newat.PQRRadius = A.PQRRadius
	if A.Anisou != nil {
		Newat.Anisou = append([]float64{}, A.Anisou...)
	}
	if A.SigAtm != nil {
		Newat.SigAtm = append([]float64{}, A.SigAtm...)
	}
	if A.SigUij != nil {
		Newat.SigUij = append([]float64{}, A.SigUij...)
	}
	Newat.Disordered = A.Disordered
	if A.Xtra != nil {
		Newat.Xtra = make(map[string]interface{}, len(A.Xtra))
		for k, v := range A.Xtra {
			Newat.Xtra[k] = v
		}
	}
	return Newat
}

// SetXtra stores an additional key/value property in the atom's side table,
// allocating the table on first use.
func (A *Atom) SetXtra(key string, value interface{}) {
	if A.Xtra == nil {
		A.Xtra = make(map[string]interface{})
	}
	A.Xtra[key] = value
}

//For atom sorting, protein backbone atoms go first, in N, CA, C, O order.
var sortingKeys = map[string]int{"N": 0, "CA": 1, "C": 2, "O": 3}

// SortKey returns the ordering key used when sorting the atoms of a residue:
// the protein backbone atoms N, CA, C and O compare, in that order, before
// any other atom name.
func (A *Atom) SortKey() int {
	if k, ok := sortingKeys[A.Name]; ok {
		return k
	}
	return len(sortingKeys)
}

// String returns a one-line, human-readable description of the atom. It is
// meant for display only, and is not a stable serialization format.
func (A *Atom) String() string {
	return fmt.Sprintf("Atom %s: fullname %q coord %v bfactor %.3f occupancy %.3f altloc %q serial %d element %q mass %.3f pqrcharge %.3f pqrradius %.3f",
		A.Name, A.FullName, A.Coord, A.Bfactor, A.Occupancy, string(A.AltLoc), A.Serial, A.Symbol, A.Mass, A.PQRCharge, A.PQRRadius)
}
