/*
 * bonds.go, part of angstrom.
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

import "math"

//bondTolerance scales the sum of covalent radii when deciding whether two
//atoms are bonded.
const bondTolerance = 1.15

//Bonds returns the bonded atom pairs of the molecule, with i<j for each
//pair. Two atoms are considered bonded when their distance is under the sum
//of their covalent radii scaled by a small tolerance. Atoms whose element
//symbol is absent from the radii table form no bonds. This is a geometric
//guess meant for rendering sticks, not a connectivity perception.
func (M *Molecule) Bonds() [][2]int {
	var bonds [][2]int
	n := M.Len()
	for i := 0; i < n; i++ {
		ri, ok := symbolCovrad[M.Atoms[i]]
		if !ok {
			continue
		}
		for j := i + 1; j < n; j++ {
			rj, ok := symbolCovrad[M.Atoms[j]]
			if !ok {
				continue
			}
			dx := M.Coords.At(i, 0) - M.Coords.At(j, 0)
			dy := M.Coords.At(i, 1) - M.Coords.At(j, 1)
			dz := M.Coords.At(i, 2) - M.Coords.At(j, 2)
			dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
			if dist < (ri+rj)*bondTolerance && dist > 0 {
				bonds = append(bonds, [2]int{i, j})
			}
		}
	}
	return bonds
}
