/*
 * gonum.go, part of angstrom.
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

//All the *Vec functions will operate/produce column or row vectors depending on whether the matrix underlying Dense
//is row or column major.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is the main container, a set of vectors in 3D space. Within the
//package it is understood that a "vector" is a row vector, i.e. the
//cartesian coordinates of a point in 3D space. The name of some functions
//in the library reflect this.
type Matrix struct {
	*mat.Dense
}

func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

func Dense2Matrix(A *mat.Dense) *Matrix {
	r, c := A.Dims()
	if c != 3 {
		panic(Error{fmt.Sprintf("Dense matrix with %d columns (%d rows) cannot be a Matrix", c, r), []string{"Dense2Matrix"}, true})
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d: %d", l, cols, l%cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 columns.
func Zeros(vecs int) *Matrix {
	f := make([]float64, 3*vecs)
	return &Matrix{mat.NewDense(vecs, 3, f)}
}

//NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//VecView returns a view of the ith vector of the matrix in the receiver.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//View returns a view of F starting from i,j and spanning r rows and
//c columns. Changes in the view are reflected in F and vice-versa.
//Notice that very little memory allocation happens, only a couple of
//ints and pointers.
func (F *Matrix) View(i, j, r, c int) *Matrix {
	ret := F.Dense.Slice(i, i+r, j, j+c).(*mat.Dense)
	return &Matrix{ret}
}

//Copy copies the matrix A into the receiver, which must have enough space.
func (F *Matrix) Copy(A *Matrix) {
	F.Dense.Copy(A.Dense)
}

//Clone returns a newly allocated copy of the receiver.
func (F *Matrix) Clone() *Matrix {
	ret := Zeros(F.NVecs())
	ret.Dense.Copy(F.Dense)
	return ret
}

//Mul wraps mat.Mul to take care of the case when one of the
//arguments is also the receiver. Since the receiver is a Matrix,
//the mat function could check A (mat.Dense) vs F (Matrix) and
//it would not know that internally F.Dense==A, hence the need for this function.
func (F *Matrix) Mul(A, B mat.Matrix) {
	if F == A {
		A := A.(*Matrix)
		F.Dense.Mul(A.Dense, B)
	} else if F == B {
		B := B.(*Matrix)
		F.Dense.Mul(A, B.Dense)
	} else {
		F.Dense.Mul(A, B)
	}
}

//AddVec adds the 1x3 vector vec to each vector of A, putting the result
//in the receiver. Panics if the shapes do not match.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != 3 || rc != 3 || rr != 1 || ar != fr || fc != 3 {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		F.Set(i, 0, A.At(i, 0)+vec.At(0, 0))
		F.Set(i, 1, A.At(i, 1)+vec.At(0, 1))
		F.Set(i, 2, A.At(i, 2)+vec.At(0, 2))
	}
}

//SubVec subtracts the 1x3 vector vec from each vector of A, putting the
//result in the receiver. Panics if the shapes do not match.
func (F *Matrix) SubVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	rr, rc := vec.Dims()
	fr, fc := F.Dims()
	if ac != 3 || rc != 3 || rr != 1 || ar != fr || fc != 3 {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		F.Set(i, 0, A.At(i, 0)-vec.At(0, 0))
		F.Set(i, 1, A.At(i, 1)-vec.At(0, 1))
		F.Set(i, 2, A.At(i, 2)-vec.At(0, 2))
	}
}

//ScaleByCol scales each vector of A by the corresponding element of the
//column vector Col, putting the result in the receiver.
func (F *Matrix) ScaleByCol(A *Matrix, Col mat.Matrix) {
	ar, ac := A.Dims()
	cr, cc := Col.Dims()
	fr, fc := F.Dims()
	if ac != 3 || cc != 1 || cr != ar || ar != fr || fc != 3 {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		w := Col.At(i, 0)
		F.Set(i, 0, A.At(i, 0)*w)
		F.Set(i, 1, A.At(i, 1)*w)
		F.Set(i, 2, A.At(i, 2)*w)
	}
}

//String returns a neat textual representation of the matrix.
func (F *Matrix) String() string {
	r := F.NVecs()
	v := make([]string, r+2)
	v[0] = "\n["
	v[len(v)-1] = " ]"
	row := make([]float64, 3)
	for i := 0; i < r; i++ {
		mat.Row(row, i, F.Dense)
		if i == 0 {
			v[i+1] = fmt.Sprintf("%6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
			continue
		} else if i == r-1 {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2])
			continue
		} else {
			v[i+1] = fmt.Sprintf(" %6.2f %6.2f %6.2f\n", row[0], row[1], row[2])
		}
	}
	g := ""
	for _, i := range v {
		g += i
	}
	return g
}

//Errors

//Error implements the error architecture of the angstrom packages for v3.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return err.message
}

//Decorate adds new information to the error and returns the current
//decoration slice. If deco is empty, nothing is added.
func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	ErrNotXx3Matrix = "v3: Not an Nx3 matrix"
	ErrShape        = "v3: Wrong shape for Matrix or Matrices"
)
