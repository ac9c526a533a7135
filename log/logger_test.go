package log

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lock  sync.Mutex
	lines []string
}

func (r *recordingLogger) Log(level Level, format string, args ...any) {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.lines = append(r.lines, level.prefix()+" "+fmt.Sprintf(format, args...))
}

func TestLogfNoLogger(t *testing.T) {
	require.NotPanics(t, func() { Errorf("(Test) %d", 42) })

	SetLogger(nil)
	require.NotPanics(t, func() { Tracef("(Test) %d", 42) })
}

func TestLevelHelpers(t *testing.T) {
	recorder := &recordingLogger{}

	SetLogger(recorder)
	defer SetLogger(nil)

	Tracef("(Test) %s", "trace")
	Errorf("(Test) %s", "error")

	require.Equal(t, []string{"TRAC (Test) trace", "ERRO (Test) error"}, recorder.lines)
}

func TestSetLoggerConcurrentWithLogging(t *testing.T) {
	defer SetLogger(nil)

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()
			SetLogger(&recordingLogger{})
		}()

		go func(i int) {
			defer wg.Done()
			Tracef("(Test) %d", i)
		}(i)
	}

	wg.Wait()
}

func TestStdoutLogger(t *testing.T) {
	var buf bytes.Buffer

	StdoutLogger{Out: &buf}.Log(LevelError, "(Test) value %d", 7)

	line := strings.TrimSuffix(buf.String(), "\n")
	fields := strings.SplitN(line, " ", 2)
	require.Len(t, fields, 2)
	require.Equal(t, "ERRO: (Test) value 7", fields[1])

	_, err := time.Parse(time.RFC3339Nano, fields[0])
	require.NoError(t, err)
}

func TestLevelPrefixUnknown(t *testing.T) {
	require.Equal(t, "UNKN", Level(200).prefix())
}
