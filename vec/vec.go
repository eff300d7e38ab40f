/*
 * vec.go, part of gomol.
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

package vec

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//Vec is a row vector in 3D space, i.e. the cartesian coordinates of a point.
//It wraps a 1x3 gonum Dense matrix, so it can be handed to any gonum
//function taking a mat.Matrix.
type Vec struct {
	*mat.Dense
}

// New returns a Vec with the given cartesian components.
func New(x, y, z float64) *Vec {
	return &Vec{mat.NewDense(1, 3, []float64{x, y, z})}
}

// NewSlice builds a Vec from data, which must have exactly 3 elements. The
// data slice is used directly, not copied.
func NewSlice(data []float64) (*Vec, error) {
	if len(data) != 3 {
		return nil, Error{fmt.Sprintf("Input slice length %d, must be 3", len(data)), []string{"NewSlice"}, true}
	}
	return &Vec{mat.NewDense(1, 3, data)}, nil
}

// Zero returns a Vec at the origin.
func Zero() *Vec {
	return New(0, 0, 0)
}

// Vec2Dense returns the gonum Dense matrix underlying v.
func Vec2Dense(v *Vec) *mat.Dense {
	return v.Dense
}

// Dense2Vec wraps a gonum Dense matrix in a Vec. It panics if the matrix is
// not 1x3.
func Dense2Vec(d *mat.Dense) *Vec {
	r, c := d.Dims()
	if r != 1 || c != 3 {
		panic(ErrNot1x3Matrix)
	}
	return &Vec{d}
}

//X returns the first cartesian component of the vector.
func (v *Vec) X() float64 { return v.At(0, 0) }

//Y returns the second cartesian component of the vector.
func (v *Vec) Y() float64 { return v.At(0, 1) }

//Z returns the third cartesian component of the vector.
func (v *Vec) Z() float64 { return v.At(0, 2) }

// SetX sets the first cartesian component of the vector.
func (v *Vec) SetX(x float64) { v.Set(0, 0, x) }

// SetY sets the second cartesian component of the vector.
func (v *Vec) SetY(y float64) { v.Set(0, 1, y) }

// SetZ sets the third cartesian component of the vector.
func (v *Vec) SetZ(z float64) { v.Set(0, 2, z) }

// Clone returns an independent copy of the vector.
func (v *Vec) Clone() *Vec {
	if v == nil {
		panic("Attempted to clone a nil vector")
	}
	return New(v.X(), v.Y(), v.Z())
}

// EqualWithin returns true if each component of v is within absolute
// tolerance tol of the corresponding component of w.
func (v *Vec) EqualWithin(w *Vec, tol float64) bool {
	return floats.EqualApprox(v.RawRowView(0), w.RawRowView(0), tol)
}

func (v *Vec) String() string {
	return fmt.Sprintf("[%g %g %g]", v.X(), v.Y(), v.Z())
}

//Errors

//Error is the concrete error type for the vec package. It implements
//mol.Error (defined in the parent package, not imported here to avoid a
//circular dependency).
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

//PanicMsg is a message used for panics, even though it does satisfy the
//error interface. For errors, use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNot1x3Matrix = PanicMsg("goMol/vec: A Vec must be a 1x3 matrix")
)
