package xyz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	v3 "github.com/angstromgo/angstrom/v3"
)

//XyzR is a streaming reader for xyz trajectory files. It reads one frame
//per Next call, discarding the atom labels and headers; use ReadAll when
//those are needed. It implements the Traj interface of the root package.
type XyzR struct {
	f        *os.File
	closer   io.Closer //the decompressor, nil for plain files
	h        *bufio.Reader
	natoms   int
	pending  bool //the first count line is consumed by New
	filename string
	readable bool
}

//New opens the trajectory file name for streaming and reads the first
//frame's atom count, which all frames are expected to share.
func New(name string) (*XyzR, error) {
	X := new(XyzR)
	X.filename = name
	var err error
	X.f, err = os.Open(name)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), name, []string{"New"}, true}
	}
	raw, closer, err := newReader(name, X.f)
	if err != nil {
		X.f.Close()
		return nil, Error{"Can't read compressed file: " + err.Error(), name, []string{"New"}, true}
	}
	X.closer = closer
	X.h = bufio.NewReader(raw)
	countline, err := X.h.ReadString('\n')
	if err != nil && !(err == io.EOF && strings.TrimSpace(countline) != "") {
		X.Close()
		return nil, Error{"Can't read the first atom count: " + err.Error(), name, []string{"New"}, true}
	}
	X.natoms, err = parseCount(countline)
	if err != nil {
		X.Close()
		return nil, Error{err.Error(), name, []string{"New"}, true}
	}
	X.pending = true
	X.readable = true
	return X, nil
}

//Readable returns true if the handle is ready for Next.
func (X *XyzR) Readable() bool {
	return X.readable
}

//Len returns the number of atoms per frame.
func (X *XyzR) Len() int {
	return X.natoms
}

//Next reads the next frame of the trajectory into keep, or reads and
//discards it if keep is nil. At the end of the trajectory it closes the
//handle and returns an error implementing the LastFrameError interface of
//the root package, which signals normal termination.
func (X *XyzR) Next(keep *v3.Matrix) error {
	if !X.readable {
		return Error{TrajUnIni, X.filename, []string{"Next"}, true}
	}
	//refuse a too-small destination before consuming anything, so the
	//caller can retry with a proper matrix and still get this frame.
	if keep != nil && keep.NVecs() < X.natoms {
		return Error{NotEnoughSpace, X.filename, []string{"Next"}, true}
	}
	if X.pending {
		X.pending = false
	} else {
		countline, err := X.h.ReadString('\n')
		if err != nil && strings.TrimSpace(countline) == "" {
			X.Close()
			return newlastFrameError(X.filename, "Next")
		}
		natoms, cerr := parseCount(countline)
		if cerr != nil {
			return Error{cerr.Error(), X.filename, []string{"Next"}, true}
		}
		if natoms != X.natoms {
			return Error{fmt.Sprintf("frame with %d atoms in a stream of %d-atom frames", natoms, X.natoms), X.filename, []string{"Next"}, true}
		}
	}
	if _, err := X.h.ReadString('\n'); err != nil && err != io.EOF {
		return Error{err.Error(), X.filename, []string{"Next"}, true}
	}
	for i := 0; i < X.natoms; i++ {
		atomline, err := X.h.ReadString('\n')
		if err != nil && !(err == io.EOF && strings.TrimSpace(atomline) != "") {
			return Error{fmt.Sprintf("frame ends after %d of %d coordinate lines", i, X.natoms), X.filename, []string{"Next"}, true}
		}
		_, c, aerr := parseAtomLine(atomline)
		if aerr != nil {
			return Error{aerr.Error(), X.filename, []string{"Next"}, true}
		}
		if keep == nil {
			continue //we ignore this whole frame, reading the content but not saving it.
		}
		keep.Set(i, 0, c[0])
		keep.Set(i, 1, c[1])
		keep.Set(i, 2, c[2])
	}
	return nil
}

//Close closes the handle and marks it as unreadable.
func (X *XyzR) Close() {
	if X.f == nil {
		return
	}
	if X.closer != nil {
		X.closer.Close()
	}
	X.f.Close()
	X.f = nil
	X.readable = false
}
