package framebuffer

import (
	"testing"

	"github.com/BeatGlow/pixelsort/internal/ioctl"
)

func TestScreenInfoCommands(t *testing.T) {
	tests := []struct {
		c    ioctl.Command
		want ioctl.Command
	}{
		{fbioGetVScreenInfo, 0x4600},
		{fbioGetFScreenInfo, 0x4602},
	}
	for _, test := range tests {
		if test.c != test.want {
			t.Errorf("expected %s, got %s", test.want, test.c)
		}
	}
}

func TestOpenMissingDevice(t *testing.T) {
	if _, err := Open("/nonexistent/fb0"); err == nil {
		t.Error("expected error opening a missing device")
	}
}
