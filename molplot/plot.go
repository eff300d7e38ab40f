/*
 * plot.go, part of gomol.
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

/*Package molplot draws plots of per-atom scalars (B factors, occupancies,
PQR charges and radii) against serial numbers, using the gonum plotting
library. The plots are meant for quick visual inspection of a model, not
for publication-quality figures.*/
package molplot

import (
	"fmt"
	"image/color"

	mol "github.com/rmera/gomol"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Field selects which per-atom scalar a profile plots.
type Field int

const (
	Bfactor Field = iota
	Occupancy
	PQRCharge
	PQRRadius
)

func (f Field) String() string {
	switch f {
	case Bfactor:
		return "B factor"
	case Occupancy:
		return "Occupancy"
	case PQRCharge:
		return "PQR charge"
	case PQRRadius:
		return "PQR radius"
	}
	return "Unknown field"
}

func (f Field) value(at *mol.Atom) float64 {
	switch f {
	case Bfactor:
		return at.Bfactor
	case Occupancy:
		return at.Occupancy
	case PQRCharge:
		return at.PQRCharge
	case PQRRadius:
		return at.PQRRadius
	}
	return 0
}

func basicProfilePlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Serial number"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

// Profile plots the selected per-atom scalar of each given atom against its
// serial number, and saves the scatter plot as plotname.png. Atoms are
// taken as given; no sorting or filtering by alternative location is done.
func Profile(atoms []*mol.Atom, field Field, title, plotname string) error {
	if atoms == nil {
		return Error{"Given nil atoms", []string{"Profile"}, true}
	}
	p := basicProfilePlot(title, field.String())
	pts := make(plotter.XYs, len(atoms))
	for i, at := range atoms {
		pts[i].X = float64(at.Serial)
		pts[i].Y = field.value(at)
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return Error{err.Error(), []string{"Profile"}, true}
	}
	s.GlyphStyle.Color = color.RGBA{R: 178, B: 47, G: 34, A: 255}
	p.Add(s)
	filename := fmt.Sprintf("%s.png", plotname)
	if err := p.Save(10*vg.Centimeter, 10*vg.Centimeter, filename); err != nil {
		return Error{err.Error(), []string{"Profile"}, true}
	}
	return nil
}

//Errors

//Error is the concrete error type for the molplot package. It implements mol.Error.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored.
func (err Error) Critical() bool { return err.critical }
