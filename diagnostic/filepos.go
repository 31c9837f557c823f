// Package diagnostic provides the error and severity types shared by the
// boundary packages (config, schemastore, cmd/tombi, lspserver) — the
// places where a problem has to be reported to a human or an editor,
// rather than recorded inline on a syntax tree (see synerr for that).
package diagnostic

import "fmt"

// ErrFilePos extends the error interface with the file position an error
// occurred at, grounded on robfig-soy/errortypes/filepos.go's interface
// of the same name.
type ErrFilePos interface {
	error
	File() string
	Line() int
	Col() int
}

// NewErrFilePosf creates an error conforming to the ErrFilePos interface.
func NewErrFilePosf(file string, line, col int, format string, args ...interface{}) error {
	return &errFilePos{
		error: fmt.Errorf(format, args...),
		file:  file,
		line:  line,
		col:   col,
	}
}

// IsErrFilePos reports whether err, or an error reached by following its
// Cause() chain, implements ErrFilePos.
func IsErrFilePos(err error) bool {
	if err == nil {
		return false
	}
	_, ok := rootCause(err).(ErrFilePos)
	return ok
}

// ToErrFilePos converts err to an ErrFilePos if possible, or nil if not.
// If IsErrFilePos(err) is true this never returns nil.
func ToErrFilePos(err error) ErrFilePos {
	if err == nil {
		return nil
	}
	if out, ok := rootCause(err).(ErrFilePos); ok {
		return out
	}
	return nil
}

// rootCause follows err's Cause() chain and returns the first error in
// it that implements ErrFilePos, or the last error of the chain if none
// does. It stops at an ErrFilePos even though errFilePos itself has a
// Cause() method, so the position is not unwrapped away.
func rootCause(err error) error {
	type causer interface {
		Cause() error
	}
	for {
		if _, ok := err.(ErrFilePos); ok {
			return err
		}
		if e, ok := err.(causer); ok {
			err = e.Cause()
			continue
		}
		return err
	}
}

var _ ErrFilePos = &errFilePos{}

type errFilePos struct {
	error
	file string
	line int
	col  int
}

func (e *errFilePos) File() string { return e.file }
func (e *errFilePos) Line() int    { return e.line }
func (e *errFilePos) Col() int     { return e.col }

// Unwrap lets errors.Is/errors.As see through an ErrFilePos to the
// error it wraps.
func (e *errFilePos) Unwrap() error { return e.error }

// Cause exposes the wrapped error through the causer interface; rootCause
// does not follow it, since it stops at the first ErrFilePos.
func (e *errFilePos) Cause() error { return e.error }
