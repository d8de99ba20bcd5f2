/*
 * rotate.go, part of angstrom.
 *
 * Copyright 2024 The angstrom authors
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

package angstrom

import (
	"fmt"
	"math"

	v3 "github.com/angstromgo/angstrom/v3"
	"gonum.org/v1/gonum/mat"
)

//Interpolation schemes for RotationTraj.
const (
	InterLinear = "linear"
	InterSine   = "sine"
)

//RotateAbout rotates the coordinates in coordsorig by angle radians around
//the axis given by the vector between ax1 and ax2. It returns the rotated
//coordinates; the original is not affected. It uses Euler angles: the axis
//is aligned with z, the rotation applied around z, and the alignment undone.
func RotateAbout(coordsorig, ax1, ax2 *v3.Matrix, angle float64) (*v3.Matrix, error) {
	coords := coordsorig.Clone()
	axis := ax2.Clone()
	axis.Sub(axis.Dense, ax1.Dense) //now it became the rotation axis
	coords.SubVec(coords, ax1)
	Zswitch := RotatorToNewZ(axis)
	Zrot, err := RotatorAroundZ(angle)
	if err != nil {
		return nil, errDecorate(err, "RotateAbout")
	}
	var RevZ mat.Dense
	if err := RevZ.Inverse(Zswitch.Dense); err != nil {
		return nil, CError{"Can't invert the axis-switch operator: " + err.Error(), []string{"RotateAbout"}}
	}
	n := coords.NVecs()
	rotated := v3.Zeros(n)
	rotated.Mul(coords.Dense, Zswitch.Dense)
	rotated2 := v3.Zeros(n)
	rotated2.Mul(rotated.Dense, Zrot.Dense)
	final := v3.Zeros(n)
	final.Mul(rotated2.Dense, &RevZ)
	final.AddVec(final, ax1)
	return final, nil
}

//rotationAngles returns the cumulative rotation angle for each of the frames,
//in radians, totalling angle degrees over the whole animation.
func rotationAngles(frames int, angle float64, interpolation string) ([]float64, error) {
	rad := angle * math.Pi / 180.0
	angles := make([]float64, frames)
	switch interpolation {
	case InterLinear:
		step := rad / float64(frames)
		for i := range angles {
			angles[i] = step * float64(i+1)
		}
	case InterSine:
		a := rad / math.Pi
		for i := range angles {
			x := -math.Pi/2 + math.Pi*float64(i)/float64(frames)
			angles[i] = a*math.Pi/2*math.Sin(x) + math.Pi/2*a
		}
	default:
		return nil, CError{fmt.Sprintf("Unknown interpolation %q", interpolation), []string{"rotationAngles"}}
	}
	return angles, nil
}

//RotationTraj builds a trajectory of frames copies of mol, each rotated a
//bit further around the axis from the origin to axis, totalling angle
//degrees. The atom labels are repeated in every frame. interpolation is
//either InterLinear (constant angular step) or InterSine (slow-in/slow-out).
func RotationTraj(mol *Molecule, frames int, angle float64, axis *v3.Matrix, interpolation string) (*Trajectory, error) {
	if mol == nil || frames <= 0 {
		return nil, CError{"Need a molecule and a positive number of frames", []string{"RotationTraj"}}
	}
	angles, err := rotationAngles(frames, angle, interpolation)
	if err != nil {
		return nil, errDecorate(err, "RotationTraj")
	}
	origin := v3.Zeros(1)
	atoms := make([][]string, frames)
	coords := make([]*v3.Matrix, frames)
	for f, theta := range angles {
		rotated, err := RotateAbout(mol.Coords, origin, axis, theta)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("RotationTraj: frame %d", f))
		}
		frameAtoms := make([]string, len(mol.Atoms))
		copy(frameAtoms, mol.Atoms)
		atoms[f] = frameAtoms
		coords[f] = rotated
	}
	traj, err := NewTrajectory(atoms, coords)
	if err != nil {
		return nil, errDecorate(err, "RotationTraj")
	}
	return traj, nil
}
