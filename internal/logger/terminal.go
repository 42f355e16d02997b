package logger

import "os"

// TerminalInfo describes an output device (whether it is a terminal and,
// if so, its width in columns), the same split esbuild's logger keeps between a piped build log and an
// interactive terminal.
type TerminalInfo struct {
	IsTTY bool
	Width int
}

// GetTerminalInfo is implemented per-OS in terminal_*.go, mirroring
// esbuild's logger_darwin.go / logger_windows.go / logger_other.go split.
var getTerminalInfo = func(*os.File) TerminalInfo { return TerminalInfo{} }

// GetTerminalInfo reports whether file is a terminal and, if so, its width.
func GetTerminalInfo(file *os.File) TerminalInfo {
	return getTerminalInfo(file)
}
