/*
 * molecule.go, part of angstrom.
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

	"github.com/angstromgo/angstrom/traj/xyz"
	v3 "github.com/angstromgo/angstrom/v3"
)

//Molecule is a single structure snapshot: the element symbols of its atoms
//and their cartesian coordinates. The i-th vector of Coords corresponds to
//the i-th element of Atoms, so len(Atoms) always equals Coords.NVecs().
type Molecule struct {
	Atoms  []string
	Coords *v3.Matrix
}

//NewMolecule makes a Molecule with the given atoms and coordinates, and
//returns it. It returns an error if either slice is nil or if their
//lengths don't match.
func NewMolecule(atoms []string, coords *v3.Matrix) (*Molecule, error) {
	if atoms == nil || coords == nil {
		return nil, CError{"Supplied nil atoms or coordinates", []string{"NewMolecule"}}
	}
	if len(atoms) != coords.NVecs() {
		return nil, CError{fmt.Sprintf("Inconsistent atoms (%d) and coordinates (%d)", len(atoms), coords.NVecs()), []string{"NewMolecule"}}
	}
	return &Molecule{Atoms: atoms, Coords: coords}, nil
}

//XYZFileRead reads the first frame of the xyz file name into a Molecule.
func XYZFileRead(name string) (*Molecule, error) {
	atoms, coords, _, err := xyz.ReadAll(name)
	if err != nil {
		return nil, errDecorate(err, "XYZFileRead")
	}
	if len(atoms) == 0 {
		return nil, CError{fmt.Sprintf("No frames in %s", name), []string{"XYZFileRead"}}
	}
	return &Molecule{Atoms: atoms[0], Coords: coords[0]}, nil
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//String returns basic molecule info.
func (M *Molecule) String() string {
	return fmt.Sprintf("<Molecule | atoms: %d>", M.Len())
}

//Copy returns a deep copy of the molecule. The copy shares no data with
//the original, so mutating one never affects the other.
func (M *Molecule) Copy() *Molecule {
	atoms := make([]string, len(M.Atoms))
	copy(atoms, M.Atoms)
	return &Molecule{Atoms: atoms, Coords: M.Coords.Clone()}
}

//Masses returns a slice with the mass of each atom in the molecule, looked
//up by element symbol. An element absent from the mass table is an error
//(no silent unit-mass fallback), so a mass-weighted result can never be
//silently skewed by an unknown label.
func (M *Molecule) Masses() ([]float64, error) {
	masses := make([]float64, len(M.Atoms))
	for i, symbol := range M.Atoms {
		m, ok := symbolMass[symbol]
		if !ok {
			return nil, CError{fmt.Sprintf("Unknown element %q for atom %d", symbol, i), []string{"Molecule.Masses"}}
		}
		masses[i] = m
	}
	return masses, nil
}

//Center returns the center of the molecule as a 1x3 matrix. If mass is
//true it is the center of mass, otherwise the geometric center. An
//unknown element is an error only in the mass-weighted case.
func (M *Molecule) Center(mass bool) (*v3.Matrix, error) {
	var masses []float64
	if mass {
		var err error
		masses, err = M.Masses()
		if err != nil {
			return nil, errDecorate(err, "Molecule.Center")
		}
	}
	center, err := CenterOfMass(M.Coords, masses)
	if err != nil {
		return nil, errDecorate(err, "Molecule.Center")
	}
	return center, nil
}

//XYZWrite writes the molecule as a single-frame xyz file with the given
//header line. An empty header gets the codec's synthesized default.
//The file is written atomically and overwritten if it exists.
func (M *Molecule) XYZWrite(name, header string) error {
	var headers []string
	if header != "" {
		headers = []string{header}
	}
	err := xyz.WriteAll(name, [][]string{M.Atoms}, []*v3.Matrix{M.Coords}, headers)
	if err != nil {
		return errDecorate(err, "Molecule.XYZWrite")
	}
	return nil
}
