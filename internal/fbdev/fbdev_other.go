//go:build !linux

package fbdev

// Open is only implemented on Linux.
func Open(path string) (*Device, error) {
	return nil, ErrUnsupported
}
