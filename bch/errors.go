package bch

import "golang.org/x/xerrors"

// errInvalidf wraps a formatted message with ErrInvalidArgument, the
// convention used throughout this package for caller-facing argument
// errors (size mismatches, bad dimensions, malformed primitive
// polynomials).
func errInvalidf(format string, args ...interface{}) error {
	return xerrors.Errorf("bch: "+format+": %w", append(args, ErrInvalidArgument)...)
}
