//go:build !windows

package host

func discover(class string) (Address, error) {
	return Address{}, ErrNotAvailable
}
