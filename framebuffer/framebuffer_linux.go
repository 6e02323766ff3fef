package framebuffer

import (
	"image"
	"os"
	"syscall"

	"github.com/BeatGlow/pixelsort/internal/ioctl"
	"github.com/BeatGlow/pixelsort/pixel"
)

// From <linux/fb.h>
var (
	fbioGetVScreenInfo = ioctl.Encode(ioctl.None, 0, 0x4600)
	fbioGetFScreenInfo = ioctl.Encode(ioctl.None, 0, 0x4602)
)

type linuxFramebuffer struct {
	pixel.Image
	f   *os.File
	pix []byte
}

// Open a Linux FrameBuffer device (fbdev) by name, typically /dev/fb[0..x].
func Open(name string) (Framebuffer, error) {
	f, err := os.OpenFile(name, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, err
	}

	var (
		info       fixScreenInfo
		screenInfo varScreenInfo
	)
	if err = ioctl.Do(f.Fd(), fbioGetFScreenInfo, &info); err != nil {
		_ = f.Close()
		return nil, err
	}

	// Request virtual screen info.
	if err = ioctl.Do(f.Fd(), fbioGetVScreenInfo, &screenInfo); err != nil {
		_ = f.Close()
		return nil, err
	}

	// Map pixel buffer.
	pix, err := syscall.Mmap(int(f.Fd()), 0, int(info.SmemLen), syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	buf := pixel.Buffer{
		Rect:   image.Rect(0, 0, int(screenInfo.Xres), int(screenInfo.Yres)),
		Pix:    pix[int(screenInfo.Yoffset)*int(info.LineLength)+int(screenInfo.Xoffset*screenInfo.BitsPerPixel/8):],
		Stride: int(info.LineLength),
	}
	img, err := newImage(buf, &screenInfo)
	if err != nil {
		_ = syscall.Munmap(pix)
		_ = f.Close()
		return nil, err
	}

	return &linuxFramebuffer{
		Image: img,
		f:     f,
		pix:   pix,
	}, nil
}

// Close the framebuffer device
func (fb *linuxFramebuffer) Close() error {
	if err := syscall.Munmap(fb.pix); err != nil {
		return err
	}
	return fb.f.Close()
}
