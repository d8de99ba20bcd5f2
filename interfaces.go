/*
 * interfaces.go, part of angstrom.
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

import v3 "github.com/angstromgo/angstrom/v3"

// Traj is an interface for any trajectory source that can be read frame by
// frame, such as the streaming readers in the traj subpackages.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//Next reads the next frame into output, or discards it if output is nil.
	Next(output *v3.Matrix) error

	//Returns the number of atoms per frame.
	Len() int
}

// Masser can return a slice with the masses of each atom in the reference.
type Masser interface {

	//Returns a slice with the masses of all atoms.
	Masses() ([]float64, error)
}

//Errors

// Error is the interface for errors that all packages in this library implement.
// The Decorate method allows to add and retrieve info from the error, without
// changing its type or wrapping it around something else. Each Decorate call
// returns the current decoration slice; if passed the empty string it just
// returns the current value without adding to it. The decoration slice should
// contain the functions in the calling stack, each optionally followed by
// relevant information, as in "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

// TrajError is the interface for errors in trajectory files.
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors
// (i.e. last frame) so they can be filtered in a typeswitch that looks for
// this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
