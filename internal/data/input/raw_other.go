//go:build !linux && !darwin

package input

import "errors"

func (r *Reader) enableRawMode() error {
	return errors.New("raw terminal mode is not supported on this platform")
}

func (r *Reader) disableRawMode() error {
	return nil
}
