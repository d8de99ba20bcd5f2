/*
 * geometric.go, part of angstrom
 *
 * Copyright 2024 The angstrom authors
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
*/

package angstrom

import (
	"fmt"
	"math"

	v3 "github.com/angstromgo/angstrom/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//CenterOfMass returns the center of mass of the atoms represented by the
//coordinates in geometry and the masses in masses, as a 1x3 matrix, and an
//error. If masses is nil, it calculates the geometric center.
func CenterOfMass(geometry *v3.Matrix, masses []float64) (*v3.Matrix, error) {
	if geometry == nil {
		return nil, CError{"nil matrix to get the center of mass", []string{"CenterOfMass"}}
	}
	gr := geometry.NVecs()
	if gr == 0 {
		return nil, CError{"empty matrix to get the center of mass", []string{"CenterOfMass"}}
	}
	if masses == nil { //just obtain the geometric center
		masses = make([]float64, gr)
		for i := range masses {
			masses[i] = 1.0
		}
	} else if len(masses) != gr {
		return nil, CError{fmt.Sprintf("Inconsistent coordinates (%d) and masses (%d)", gr, len(masses)), []string{"CenterOfMass"}}
	}
	mass := mat.NewDense(gr, 1, masses)
	scaled := v3.Zeros(gr)
	scaled.ScaleByCol(geometry, mass)
	ones := make([]float64, gr)
	for i := range ones {
		ones[i] = 1.0
	}
	onesvector := mat.NewDense(1, gr, ones)
	center := v3.Zeros(1)
	center.Mul(onesvector, scaled.Dense)
	center.Scale(1.0/floats.Sum(masses), center.Dense)
	return center, nil
}

//RotatorAroundZ returns an operator that will rotate a set of
//coordinates by gamma radians around the z axis.
func RotatorAroundZ(gamma float64) (*v3.Matrix, error) {
	singamma := math.Sin(gamma)
	cosgamma := math.Cos(gamma)
	operator := []float64{cosgamma, singamma, 0,
		-singamma, cosgamma, 0,
		0, 0, 1}
	return v3.NewMatrix(operator)
}

//RotatorToNewZ takes a row vector (newz).
//It returns a linear operator such that, when applied to a matrix mol (with the
//operator on the right side) it will rotate mol such that the z axis is aligned
//with newz.
func RotatorToNewZ(newz *v3.Matrix) *v3.Matrix {
	r, c := newz.Dims()
	if c != 3 || r != 1 {
		panic("Wrong newz vector")
	}
	normxy := math.Sqrt(math.Pow(newz.At(0, 0), 2) + math.Pow(newz.At(0, 1), 2))
	theta := math.Atan2(normxy, newz.At(0, 2))      //Around the new y
	phi := math.Atan2(newz.At(0, 1), newz.At(0, 0)) //First around z
	psi := 0.000000000000                           //second around z
	sinphi := math.Sin(phi)
	cosphi := math.Cos(phi)
	sintheta := math.Sin(theta)
	costheta := math.Cos(theta)
	sinpsi := math.Sin(psi)
	cospsi := math.Cos(psi)
	operator := []float64{cosphi*costheta*cospsi - sinphi*sinpsi, -sinphi*cospsi - cosphi*costheta*sinpsi, cosphi * sintheta,
		sinphi*costheta*cospsi + cosphi*sinpsi, -sinphi*costheta*sinpsi + cosphi*cospsi, sintheta * sinphi,
		-sintheta * cospsi, sintheta * sinpsi, costheta}
	finalop, _ := v3.NewMatrix(operator) //operator is hardcoded so it must have the right dimensions.
	return finalop
}
