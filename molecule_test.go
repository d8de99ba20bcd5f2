/*
 * molecule_test.go, part of angstrom.
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
	"path/filepath"
	"testing"

	v3 "github.com/angstromgo/angstrom/v3"
)

func TestNewMolecule(Te *testing.T) {
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 1.09, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := NewMolecule([]string{"C", "H"}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 2 {
		Te.Errorf("expected 2 atoms, got %d", mol.Len())
	}
	if mol.String() != "<Molecule | atoms: 2>" {
		Te.Errorf("got summary %q", mol.String())
	}
	fmt.Println(mol)
	if _, err := NewMolecule([]string{"C"}, coords); err == nil {
		Te.Error("expected an error for mismatched atoms and coordinates")
	}
	if _, err := NewMolecule(nil, coords); err == nil {
		Te.Error("expected an error for nil atoms")
	}
}

func TestMoleculeCenter(Te *testing.T) {
	//an O at the origin flanked by two H at +-1 along x: the geometric and
	//mass-weighted centers both sit at the origin by symmetry
	coords, err := v3.NewMatrix([]float64{-1, 0, 0, 0, 0, 0, 1, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := NewMolecule([]string{"H", "O", "H"}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	for _, mass := range []bool{false, true} {
		c, err := mol.Center(mass)
		if err != nil {
			Te.Fatal(err)
		}
		for k := 0; k < 3; k++ {
			if math.Abs(c.At(0, k)) > 1e-12 {
				Te.Errorf("mass=%v center axis %d: got %g, want 0", mass, k, c.At(0, k))
			}
		}
	}
	//break the symmetry: the heavy atom pulls the mass-weighted center
	mol.Atoms[0] = "C"
	g, err := mol.Center(false)
	if err != nil {
		Te.Fatal(err)
	}
	m, err := mol.Center(true)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(g.At(0, 0)) > 1e-12 {
		Te.Error("geometric center must ignore the masses")
	}
	if m.At(0, 0) >= 0 {
		Te.Errorf("mass-weighted x center %f not pulled toward C", m.At(0, 0))
	}
}

func TestUnknownElement(Te *testing.T) {
	coords, err := v3.NewMatrix([]float64{0, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := NewMolecule([]string{"Zz"}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	if _, err := mol.Masses(); err == nil {
		Te.Error("expected an error for an unknown element")
	}
	if _, err := mol.Center(true); err == nil {
		Te.Error("expected an error for a mass-weighted center with an unknown element")
	}
	//the geometric center needs no masses, so it still works
	if _, err := mol.Center(false); err != nil {
		Te.Error(err)
	}
}

func TestMoleculeCopy(Te *testing.T) {
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 1, 1, 1})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := NewMolecule([]string{"C", "O"}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	dup := mol.Copy()
	dup.Atoms[0] = "N"
	dup.Coords.Set(0, 0, 5)
	if mol.Atoms[0] != "C" || mol.Coords.At(0, 0) != 0 {
		Te.Error("mutating a copy leaked into the original")
	}
}

func TestMoleculeXYZ(Te *testing.T) {
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 1.09, 0, 0})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := NewMolecule([]string{"C", "H"}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "ch.xyz")
	if err := mol.XYZWrite(name, "a C-H pair"); err != nil {
		Te.Fatal(err)
	}
	back, err := XYZFileRead(name)
	if err != nil {
		Te.Fatal(err)
	}
	if back.Len() != 2 || back.Atoms[1] != "H" {
		Te.Errorf("round trip changed the molecule: %v", back.Atoms)
	}
	if math.Abs(back.Coords.At(1, 0)-1.09) > 1e-6 {
		Te.Errorf("round trip drifted: %f", back.Coords.At(1, 0))
	}
}

func TestBonds(Te *testing.T) {
	//ethane-like C-C with an H on the first C; the far O is bonded to nothing
	coords, err := v3.NewMatrix([]float64{
		0, 0, 0,
		1.5, 0, 0,
		-1.09, 0, 0,
		8, 0, 0,
	})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := NewMolecule([]string{"C", "C", "H", "O"}, coords)
	if err != nil {
		Te.Fatal(err)
	}
	bonds := mol.Bonds()
	if len(bonds) != 2 {
		Te.Fatalf("expected 2 bonds, got %d: %v", len(bonds), bonds)
	}
	want := [][2]int{{0, 1}, {0, 2}}
	for i, b := range want {
		if bonds[i] != b {
			Te.Errorf("bond %d: got %v, want %v", i, bonds[i], b)
		}
	}
	//unknown symbols simply form no bonds
	mol.Atoms[1] = "Zz"
	bonds = mol.Bonds()
	if len(bonds) != 1 || bonds[0] != [2]int{0, 2} {
		Te.Errorf("unknown element still forms bonds: %v", bonds)
	}
}
