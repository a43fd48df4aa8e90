//go:build linux || darwin || freebsd || netbsd || openbsd

package hostfacts

import "golang.org/x/sys/unix"

// unameRelease returns the kernel release via uname(2).
func unameRelease() (string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(u.Release[:]), nil
}
