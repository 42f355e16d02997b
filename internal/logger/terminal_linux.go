//go:build linux

package logger

import (
	"os"

	"golang.org/x/sys/unix"
)

func init() {
	getTerminalInfo = func(file *os.File) TerminalInfo {
		fd := int(file.Fd())
		if _, err := unix.IoctlGetTermios(fd, unix.TCGETS); err != nil {
			return TerminalInfo{}
		}
		info := TerminalInfo{IsTTY: true}
		if w, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ); err == nil {
			info.Width = int(w.Col)
		}
		return info
	}
}
