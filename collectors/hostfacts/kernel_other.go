//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package hostfacts

import "errors"

// unameRelease is unavailable on platforms without uname(2).
func unameRelease() (string, error) {
	return "", errors.New("uname not supported on this platform")
}
