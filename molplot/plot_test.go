/*
 * plot_test.go, part of gomol.
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

/*This provides some tests for the plotting functions, in the form of little
 * functions that have practical applications*/

package molplot

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	mol "github.com/rmera/gomol"
	vec "github.com/rmera/gomol/vec"
)

//TestProfile plots the B factors of a small backbone stretch against the
//serial numbers, and checks that the plot file is produced.
func TestProfile(Te *testing.T) {
	names := []string{"N", "CA", "C", "O"}
	elements := []string{"N", "C", "C", "O"}
	bfactors := []float64{32.1, 35.7, 36.2, 45.1}
	atoms := make([]*mol.Atom, 0, len(names))
	for i, name := range names {
		at, err := mol.NewAtom(name, fmt.Sprintf(" %-3s", name), vec.New(float64(i), 0, 0), bfactors[i], 1.0, ' ', i+25, elements[i])
		if err != nil {
			Te.Error(err)
		}
		atoms = append(atoms, at)
	}
	plotname := filepath.Join(Te.TempDir(), "bfactors")
	err := Profile(atoms, Bfactor, "Test B factor profile", plotname)
	if err != nil {
		Te.Error(err)
	}
	if _, err := os.Stat(plotname + ".png"); err != nil {
		Te.Error(err)
	}
	fmt.Println("plot written to", plotname+".png")
}

//TestProfileFields tests the remaining per-atom scalars and the nil-atoms
//error.
func TestProfileFields(Te *testing.T) {
	at, err := mol.NewPQRAtom("H1", " H1 ", vec.New(10, 10, 10), 0.25, 1.2, ' ', 1, "H")
	if err != nil {
		Te.Error(err)
	}
	atoms := []*mol.Atom{at}
	dir := Te.TempDir()
	for _, field := range []Field{Occupancy, PQRCharge, PQRRadius} {
		plotname := filepath.Join(dir, field.String())
		if err := Profile(atoms, field, field.String(), plotname); err != nil {
			Te.Error(err)
		}
	}
	if err := Profile(nil, Bfactor, "nothing", filepath.Join(dir, "nothing")); err == nil {
		Te.Error("a nil atom slice should be rejected")
	}
}
