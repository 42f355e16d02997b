//go:build windows

package logger

import (
	"os"
	"syscall"
	"unsafe"
)

var kernel32 = syscall.NewLazyDLL("kernel32.dll")
var getConsoleMode = kernel32.NewProc("GetConsoleMode")
var getConsoleScreenBufferInfo = kernel32.NewProc("GetConsoleScreenBufferInfo")

type consoleScreenBufferInfo struct {
	dwSizeX              int16
	dwSizeY              int16
	dwCursorPositionX    int16
	dwCursorPositionY    int16
	wAttributes          uint16
	srWindowLeft         int16
	srWindowTop          int16
	srWindowRight        int16
	srWindowBottom       int16
	dwMaximumWindowSizeX int16
	dwMaximumWindowSizeY int16
}

func init() {
	getTerminalInfo = func(file *os.File) TerminalInfo {
		fd := file.Fd()
		var unused uint32
		isTTY, _, _ := getConsoleMode.Call(fd, uintptr(unsafe.Pointer(&unused)))
		if isTTY == 0 {
			return TerminalInfo{}
		}
		info := TerminalInfo{IsTTY: true}
		var bufferInfo consoleScreenBufferInfo
		ok, _, _ := getConsoleScreenBufferInfo.Call(fd, uintptr(unsafe.Pointer(&bufferInfo)))
		if ok != 0 {
			info.Width = int(bufferInfo.srWindowRight - bufferInfo.srWindowLeft + 1)
		}
		return info
	}
}
