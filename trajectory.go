/*
 * trajectory.go, part of angstrom.
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
	"gonum.org/v1/gonum/stat"
)

//Trajectory is a frame-indexed container of molecular snapshots. Each frame
//has its own atom labels and coordinates, so frames with different atom
//counts can coexist in one trajectory (writing and analysis assume a uniform
//count in practice). The trajectory owns its data exclusively: molecules
//produced by Frame are independent copies.
type Trajectory struct {
	frames  [][]string
	coords  []*v3.Matrix
	headers []string //nil when the source had no headers to preserve
}

//NewTrajectory makes a trajectory from explicit per-frame atoms and
//coordinates. Passing nil for both gives an empty trajectory; passing only
//one of them is an error, as are mismatched frame counts or a frame whose
//label and coordinate counts disagree. The given slices become owned by the
//trajectory and must not be modified by the caller afterwards.
func NewTrajectory(atoms [][]string, coords []*v3.Matrix) (*Trajectory, error) {
	if atoms == nil && coords == nil {
		return &Trajectory{frames: [][]string{}, coords: []*v3.Matrix{}}, nil
	}
	if atoms == nil || coords == nil {
		return nil, CError{"Need both atoms and coordinates, or neither", []string{"NewTrajectory"}}
	}
	if len(atoms) != len(coords) {
		return nil, CError{fmt.Sprintf("Mismatched frame counts: %d atom frames, %d coordinate frames", len(atoms), len(coords)), []string{"NewTrajectory"}}
	}
	for f := range atoms {
		if coords[f] == nil || len(atoms[f]) != coords[f].NVecs() {
			return nil, CError{fmt.Sprintf("Frame %d: inconsistent atoms and coordinates", f), []string{"NewTrajectory"}}
		}
	}
	return &Trajectory{frames: atoms, coords: coords}, nil
}

//XYZTrajRead reads a multi-frame xyz trajectory file, keeping the per-frame
//header lines for round-trip fidelity on write.
func XYZTrajRead(name string) (*Trajectory, error) {
	atoms, coords, headers, err := xyz.ReadAll(name)
	if err != nil {
		return nil, errDecorate(err, "XYZTrajRead")
	}
	traj, err := NewTrajectory(atoms, coords)
	if err != nil {
		return nil, errDecorate(err, "XYZTrajRead")
	}
	traj.headers = headers
	return traj, nil
}

//Len returns the number of frames.
func (T *Trajectory) Len() int {
	return len(T.frames)
}

//NAtoms returns the number of atoms in the first frame, or 0 for an empty
//trajectory.
func (T *Trajectory) NAtoms() int {
	if len(T.frames) == 0 {
		return 0
	}
	return len(T.frames[0])
}

//String returns basic trajectory info: frame count, atom count of the first
//frame and coordinate dimensionality. Meant for diagnostics only.
func (T *Trajectory) String() string {
	return fmt.Sprintf("<Trajectory | frames: %d | atoms: %d | dimensions: 3>", T.Len(), T.NAtoms())
}

//Headers returns the per-frame header lines read from the source file, or
//nil if the trajectory was not built from a file with headers.
func (T *Trajectory) Headers() []string {
	return T.headers
}

//SetHeaders sets the per-frame header lines. The length must equal the
//frame count; nil clears the headers.
func (T *Trajectory) SetHeaders(headers []string) error {
	if headers != nil && len(headers) != T.Len() {
		return CError{fmt.Sprintf("Got %d headers for %d frames", len(headers), T.Len()), []string{"Trajectory.SetHeaders"}}
	}
	T.headers = headers
	return nil
}

//Frame returns the ith frame of the trajectory as a Molecule. The molecule
//is an independent copy: mutating it never affects the trajectory, and
//vice-versa. i outside [0, Len()) is an error.
func (T *Trajectory) Frame(i int) (*Molecule, error) {
	if i < 0 || i >= T.Len() {
		return nil, CError{fmt.Sprintf("Frame index %d out of range [0, %d)", i, T.Len()), []string{"Trajectory.Frame"}}
	}
	atoms := make([]string, len(T.frames[i]))
	copy(atoms, T.frames[i])
	return &Molecule{Atoms: atoms, Coords: T.coords[i].Clone()}, nil
}

//Cat returns a new trajectory with the frames of T followed by the frames
//of B. Neither operand is modified and the result shares no data with them.
//The per-frame atom counts of T and B don't have to match: frames are
//independent. Headers are not propagated to the result, since they are
//optional metadata; callers needing them must re-derive them.
func (T *Trajectory) Cat(B *Trajectory) *Trajectory {
	frames := make([][]string, 0, T.Len()+B.Len())
	coords := make([]*v3.Matrix, 0, T.Len()+B.Len())
	for _, src := range []*Trajectory{T, B} {
		for f := range src.frames {
			atoms := make([]string, len(src.frames[f]))
			copy(atoms, src.frames[f])
			frames = append(frames, atoms)
			coords = append(coords, src.coords[f].Clone())
		}
	}
	return &Trajectory{frames: frames, coords: coords}
}

//XYZWrite writes the trajectory as a multi-frame xyz file, using the stored
//headers when present, and letting the codec synthesize per-frame defaults
//otherwise. The file is written atomically and overwritten if it exists.
func (T *Trajectory) XYZWrite(name string) error {
	err := xyz.WriteAll(name, T.frames, T.coords, T.headers)
	if err != nil {
		return errDecorate(err, "Trajectory.XYZWrite")
	}
	return nil
}

//Centers returns the center of each frame as the rows of a Len()x3 matrix.
//If mass is true the centers are mass-weighted, otherwise geometric. Each
//frame is processed independently with the Molecule-level algorithm.
func (T *Trajectory) Centers(mass bool) (*v3.Matrix, error) {
	centers := v3.Zeros(T.Len())
	for f := range T.frames {
		var masses []float64
		if mass {
			mol := Molecule{Atoms: T.frames[f], Coords: T.coords[f]}
			var err error
			masses, err = mol.Masses()
			if err != nil {
				return nil, errDecorate(err, fmt.Sprintf("Trajectory.Centers: frame %d", f))
			}
		}
		c, err := CenterOfMass(T.coords[f], masses)
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("Trajectory.Centers: frame %d", f))
		}
		centers.Set(f, 0, c.At(0, 0))
		centers.Set(f, 1, c.At(0, 1))
		centers.Set(f, 2, c.At(0, 2))
	}
	return centers, nil
}

//Coordinate extracts one scalar coordinate component across all frames: the
//axis component (0=x, 1=y, 2=z) of the given atom, as a slice of Len()
//values. It is the usual way to prepare input for MSD.
func (T *Trajectory) Coordinate(atom, axis int) ([]float64, error) {
	if axis < 0 || axis > 2 {
		return nil, CError{fmt.Sprintf("Axis %d out of range [0, 3)", axis), []string{"Trajectory.Coordinate"}}
	}
	ret := make([]float64, T.Len())
	for f, frame := range T.coords {
		if atom < 0 || atom >= frame.NVecs() {
			return nil, CError{fmt.Sprintf("Atom %d out of range for frame %d (%d atoms)", atom, f, frame.NVecs()), []string{"Trajectory.Coordinate"}}
		}
		ret[f] = frame.At(atom, axis)
	}
	return ret, nil
}

//MSD returns the mean squared displacement of the given per-frame scalar
//coordinate against the value at the reference frame: the average over all
//frames of (coords[f]-coords[reference])^2. Note that this is displacement
//against a single fixed reference sample, not a cumulative or ensemble MSD;
//that is the contract of this function. An empty input or a reference
//outside [0, len(coords)) is an error.
func (T *Trajectory) MSD(coords []float64, reference int) (float64, error) {
	if len(coords) == 0 {
		return 0, CError{"Empty coordinate input", []string{"Trajectory.MSD"}}
	}
	if reference < 0 || reference >= len(coords) {
		return 0, CError{fmt.Sprintf("Reference frame %d out of range [0, %d)", reference, len(coords)), []string{"Trajectory.MSD"}}
	}
	ref := coords[reference]
	sq := make([]float64, len(coords))
	for i, v := range coords {
		d := v - ref
		sq[i] = d * d
	}
	return stat.Mean(sq, nil), nil
}

//Iter returns a cursor over the frames of the trajectory, in frame order.
//The cursor does not consume the trajectory: a fresh Iter (or Reset) always
//restarts from frame 0 and yields the same sequence.
func (T *Trajectory) Iter() *FrameIter {
	return &FrameIter{traj: T}
}

//FrameIter iterates over the frames of a Trajectory, yielding one Molecule
//per frame.
type FrameIter struct {
	traj    *Trajectory
	current int
}

//Next returns the next frame as a Molecule. When the frames are exhausted
//it returns an error implementing LastFrameError, which signals normal
//termination rather than failure.
func (it *FrameIter) Next() (*Molecule, error) {
	if it.current >= it.traj.Len() {
		return nil, lastFrameError{}
	}
	mol, err := it.traj.Frame(it.current)
	if err != nil {
		return nil, errDecorate(err, "FrameIter.Next")
	}
	it.current++
	return mol, nil
}

//Reset rewinds the cursor to the first frame.
func (it *FrameIter) Reset() {
	it.current = 0
}

//lastFrameError implements LastFrameError for in-memory trajectories.
type lastFrameError struct {
	deco []string
}

func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return "" }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "in-memory" }

func (E lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}
