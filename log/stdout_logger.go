package log

import (
	"fmt"
	"io"
	"os"
	"time"
)

// StdoutLogger is the standard output logger for printing all logs into the commandline, applications embedding the
// library install it with 'SetLogger'.
//
// The zero value writes to 'os.Stdout'.
type StdoutLogger struct {
	// Out overrides the destination of the log lines, used by tests.
	Out io.Writer
}

// Log method for the StdoutLogger which adds prefix dependant on the level and prints message inputted to terminal.
func (s StdoutLogger) Log(level Level, msg string, args ...any) {
	out := s.Out
	if out == nil {
		out = os.Stdout
	}

	fmt.Fprintln(out, time.Now().Format(time.RFC3339Nano)+" "+level.prefix()+": "+fmt.Sprintf(msg, args...))
}

// prefix returns the four letter tag printed before each log line.
func (l Level) prefix() string {
	switch l {
	case LevelTrace:
		return "TRAC"
	case LevelError:
		return "ERRO"
	}

	return "UNKN"
}
