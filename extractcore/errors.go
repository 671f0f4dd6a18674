/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package extractcore

import (
	"errors"

	"golang.org/x/xerrors"
)

// The §7 error taxonomy, as sentinel errors. Every non-sentinel error a
// stage produces is wrapped with one of these via xerrors.Errorf("%w")
// so errors.Is keeps working across wrapping, the same pattern the
// teacher's extractor package uses for its own xerrors.Is checks.
var (
	ErrInput       = errors.New("input error")
	ErrRender      = errors.New("render error")
	ErrAcceptance  = errors.New("acceptance reject")
	ErrUncertain   = errors.New("uncertain caption")
	ErrNaming      = errors.New("naming collision")
	ErrIndexWrite  = errors.New("index write error")
	ErrLayoutModel = errors.New("layout model unavailable")
)

func wrapInput(detail string, err error) error {
	return xerrors.Errorf("%s: %w", detail, join(err, ErrInput))
}

func wrapRender(detail string, err error) error {
	return xerrors.Errorf("%s: %w", detail, join(err, ErrRender))
}

func wrapIndexWrite(detail string, err error) error {
	return xerrors.Errorf("%s: %w", detail, join(err, ErrIndexWrite))
}

// join folds a stage's concrete error together with its taxonomy sentinel
// so errors.Is(result, ErrX) holds regardless of which concrete error
// caused it.
func join(errs ...error) error {
	return errors.Join(errs...)
}
