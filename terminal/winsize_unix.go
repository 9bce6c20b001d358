//go:build unix

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// cellPixels reads the pixel size of one cell from TIOCGWINSZ
// Many terminals leave ws_xpixel/ws_ypixel at zero
func cellPixels() (int, int, bool) {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, false
	}
	if ws.Col == 0 || ws.Row == 0 || ws.Xpixel == 0 || ws.Ypixel == 0 {
		return 0, 0, false
	}
	return int(ws.Xpixel) / int(ws.Col), int(ws.Ypixel) / int(ws.Row), true
}
