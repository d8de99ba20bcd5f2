/*
 * doc.go, part of angstrom.
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

/*Package angstrom is the main package of the angstrom library. It provides molecule and
trajectory structures for xyz-formatted molecular trajectory files, and functions for
their analysis and manipulation.


	**Capabilities**

    Reads/writes multi-frame XYZ trajectory files, plain or compressed
	(gzip, zstd), both whole-file and streaming.

    Frame-indexes a trajectory into single-molecule snapshots.

    Computes mass-weighted and geometric centers, per frame or per molecule.

    Computes the mean squared displacement of a coordinate component against
	a fixed reference frame.

    Builds rotation-animation trajectories from a single molecule.

    Hands molecules and trajectories to an external renderer (Blender) for
	image and video generation (render subpackage), and plots per-frame
	analysis results (trajplot subpackage).

The angstrom package itself contains the Molecule and Trajectory types, the
element data tables and the geometric operations. The coordinates of a set of
atoms are always kept in a v3.Matrix (an Nx3 matrix, see the v3 subpackage).
The traj/xyz subpackage implements the file format.
*/
package angstrom
