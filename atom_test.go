/*
 * atom_test.go, part of gomol.
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
	"testing"

	vec "github.com/rmera/gomol/vec"
)

//TestAtomMass tests that masses are assigned from the element symbol at
//construction, and that unrecognized symbols get an explicit unknown result
//instead of a guess.
func TestAtomMass(Te *testing.T) {
	wanted := map[string]float64{"C": 12.011, "O": 15.999, "N": 14.007, "H": 1.008, "HG": 200.59}
	serial := 1
	for symbol, want := range wanted {
		at, err := NewAtom("X", " X  ", vec.Zero(), 10.0, 1.0, ' ', serial, symbol)
		if err != nil {
			Te.Error(err)
		}
		if at.Mass != want {
			Te.Errorf("Mass for %s: got %v, want %v", symbol, at.Mass, want)
		}
		serial++
	}
	//A well-cased symbol that is not in the periodic table passes
	//construction, but gets no mass.
	at, err := NewAtom("XX", " XX ", vec.Zero(), 10.0, 1.0, ' ', serial, "XX")
	if err != nil {
		Te.Error(err)
	}
	if at.Mass != 0 {
		Te.Errorf("Mass for unknown element: got %v, want 0", at.Mass)
	}
	if KnownElement("XX") {
		Te.Error("XX should not be a known element")
	}
	if m, ok := MassOf("XX"); ok || m != 0 {
		Te.Errorf("MassOf for unknown element: got %v, %v", m, ok)
	}
	fmt.Println("Masses assigned!")
}

//TestElementCase tests that a lower-case element symbol fails the
//construction, on both construction paths.
func TestElementCase(Te *testing.T) {
	if _, err := NewAtom("CA", " CA ", vec.Zero(), 35.7, 1.0, ' ', 25, "c"); err == nil {
		Te.Error("NewAtom accepted a lower-case element symbol")
	}
	if _, err := NewPQRAtom("H1", " H1 ", vec.Zero(), 0.25, 1.2, ' ', 1, "h"); err == nil {
		Te.Error("NewPQRAtom accepted a lower-case element symbol")
	}
	if _, err := AssignElement("Hg"); err == nil {
		Te.Error("AssignElement accepted a mixed-case element symbol")
	}
	//An empty symbol is fine, it just means the element is unknown.
	at, err := NewAtom("UNK", " UNK", vec.Zero(), 0, 0, ' ', 1, "")
	if err != nil {
		Te.Error(err)
	}
	if at.Symbol != "" || at.Mass != 0 {
		Te.Errorf("Atom with no element: got symbol %q, mass %v", at.Symbol, at.Mass)
	}
}

//TestAssignElement tests that well-cased symbols pass through unchanged,
//with no canonicalization against the periodic table.
func TestAssignElement(Te *testing.T) {
	for _, symbol := range []string{"C", "HG", "XX", ""} {
		got, err := AssignElement(symbol)
		if err != nil {
			Te.Error(err)
		}
		if got != symbol {
			Te.Errorf("AssignElement(%q): got %q", symbol, got)
		}
	}
}

//TestFieldRoundTrip tests that everything given to the constructor is
//stored unchanged and readable back.
func TestFieldRoundTrip(Te *testing.T) {
	coord := vec.New(15.234, 12.567, 8.901)
	at, err := NewAtom("CA", " CA ", coord, 35.7, 1.0, ' ', 25, "C")
	if err != nil {
		Te.Error(err)
	}
	if at.Name != "CA" || at.FullName != " CA " {
		Te.Errorf("names: got %q, %q", at.Name, at.FullName)
	}
	if at.Coord.X() != 15.234 || at.Coord.Y() != 12.567 || at.Coord.Z() != 8.901 {
		Te.Errorf("coord: got %v", at.Coord)
	}
	if at.Bfactor != 35.7 || at.Occupancy != 1.0 {
		Te.Errorf("bfactor/occupancy: got %v, %v", at.Bfactor, at.Occupancy)
	}
	if at.AltLoc != ' ' || at.Serial != 25 || at.Symbol != "C" {
		Te.Errorf("altloc/serial/symbol: got %q, %v, %q", string(at.AltLoc), at.Serial, at.Symbol)
	}
	pqr, err := NewPQRAtom("H1", " H1 ", vec.New(10, 10, 10), 0.25, 1.2, ' ', 1, "H")
	if err != nil {
		Te.Error(err)
	}
	if pqr.PQRCharge != 0.25 || pqr.PQRRadius != 1.2 {
		Te.Errorf("pqr fields: got %v, %v", pqr.PQRCharge, pqr.PQRRadius)
	}
	//A negative occupancy is stored as given. Nothing range-checks it.
	weird, err := NewAtom("O", " O  ", vec.Zero(), 45.1, -0.5, 'B', 26, "O")
	if err != nil {
		Te.Error(err)
	}
	if weird.Occupancy != -0.5 {
		Te.Errorf("occupancy not stored as given: %v", weird.Occupancy)
	}
}

//TestPDBPQRCoexistence documents that nothing guards against an atom
//carrying both the PDB-style and the PQR-style per-atom scalars at once.
func TestPDBPQRCoexistence(Te *testing.T) {
	at, err := NewAtom("CA", " CA ", vec.Zero(), 35.7, 1.0, ' ', 25, "C")
	if err != nil {
		Te.Error(err)
	}
	at.PQRCharge = 0.25
	at.PQRRadius = 1.7
	if at.Bfactor != 35.7 || at.Occupancy != 1.0 || at.PQRCharge != 0.25 || at.PQRRadius != 1.7 {
		Te.Error("an atom should be able to carry both PDB-style and PQR-style fields")
	}
}

//TestAtomCopy tests that copies are deep and do not keep the parent residue
//of the original.
func TestAtomCopy(Te *testing.T) {
	at, err := NewAtom("CA", " CA ", vec.New(1, 2, 3), 35.7, 1.0, ' ', 25, "C")
	if err != nil {
		Te.Error(err)
	}
	at.SetXtra("note", "original")
	res := NewResidue("ALA", 7)
	if err := res.AddAtom(at); err != nil {
		Te.Error(err)
	}
	clone := at.Copy()
	if clone.Parent() != nil {
		Te.Error("a copied atom should not inherit the parent residue")
	}
	clone.Coord.SetX(99)
	if at.Coord.X() != 1 {
		Te.Error("copied coordinates are shared with the original")
	}
	clone.Xtra["note"] = "copy"
	if at.Xtra["note"] != "original" {
		Te.Error("copied extra-properties table is shared with the original")
	}
	if clone.Name != at.Name || clone.Mass != at.Mass || clone.Serial != at.Serial {
		Te.Error("copied fields don't match the original")
	}
}

//TestSortKey tests the backbone-first ordering key.
func TestSortKey(Te *testing.T) {
	order := []string{"N", "CA", "C", "O"}
	for i, name := range order {
		at, _ := NewAtom(name, " "+name+" ", vec.Zero(), 0, 1, ' ', i+1, "")
		if at.SortKey() != i {
			Te.Errorf("SortKey for %s: got %d, want %d", name, at.SortKey(), i)
		}
	}
	cb, _ := NewAtom("CB", " CB ", vec.Zero(), 0, 1, ' ', 5, "C")
	if cb.SortKey() <= 3 {
		Te.Error("a side-chain atom should sort after the backbone")
	}
}
