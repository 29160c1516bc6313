//go:build darwin

package input

import "golang.org/x/sys/unix"

// enableRawMode disables echo and line buffering on Darwin/macOS. ISIG stays enabled
// so Ctrl+C still interrupts the process.
func (r *Reader) enableRawMode() error {
	fd := int(r.in.Fd())

	oldState, err := unix.IoctlGetTermios(fd, unix.TIOCGETA)
	if err != nil {
		return err
	}
	r.oldState = oldState

	newState := *oldState
	newState.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN
	newState.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	newState.Cflag |= unix.CS8
	newState.Cc[unix.VMIN] = 1
	newState.Cc[unix.VTIME] = 0

	return unix.IoctlSetTermios(fd, unix.TIOCSETA, &newState)
}

// disableRawMode restores the terminal state saved by enableRawMode
func (r *Reader) disableRawMode() error {
	if r.oldState == nil {
		return nil
	}
	return unix.IoctlSetTermios(int(r.in.Fd()), unix.TIOCSETA, r.oldState)
}
