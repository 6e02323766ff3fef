//go:build !linux

package framebuffer

func Open(_ string) (Framebuffer, error) {
	return nil, ErrNotSupported
}
