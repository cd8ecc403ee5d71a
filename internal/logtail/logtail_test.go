package logtail

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "playpen.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}
	require.NoError(t, os.WriteFile(logPath, []byte(content.String()), 0o644))

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "read all (0)", maxLines: 0, expected: expectedAll},
		{name: "read all (negative)", maxLines: -1, expected: expectedAll},
		{name: "read partial (5)", maxLines: 5, expected: expectedAll[5:]},
		{name: "read partial wraps (3)", maxLines: 3, expected: expectedAll[7:]},
		{name: "read exactly all (10)", maxLines: 10, expected: expectedAll},
		{name: "read more than exists (20)", maxLines: 20, expected: expectedAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	lines, err := Read(filepath.Join(t.TempDir(), "missing.log"), 10)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestParse(t *testing.T) {
	stamp := time.Date(2026, 10, 18, 21, 1, 5, 0, time.Local)

	tests := []struct {
		name     string
		input    string
		time     time.Time
		message  string
		severity Severity
	}{
		{
			name:    "empty line",
			input:   "",
			message: "",
		},
		{
			name:    "continuation line",
			input:   "    at Main.elm:12",
			message: "    at Main.elm:12",
		},
		{
			name:    "info line",
			input:   "2026/10/18 21:01:05 path changed to /new",
			time:    stamp,
			message: "path changed to /new",
		},
		{
			name:    "untagged failure wording stays info",
			input:   "2026/10/18 21:01:05 retrying after failure",
			time:    stamp,
			message: "retrying after failure",
		},
		{
			name:     "error line",
			input:    "2026/10/18 21:01:05 ERROR compile: dial compile socket: connection refused",
			time:     stamp,
			message:  "compile: dial compile socket: connection refused",
			severity: SeverityError,
		},
		{
			name:     "success line",
			input:    "2026/10/18 21:01:05 OK saved revision r1",
			time:     stamp,
			message:  "saved revision r1",
			severity: SeveritySuccess,
		},
		{
			name:    "bad timestamp stays in message",
			input:   "2026/13/45 99:99:99 ERROR Could Not Save Theme: denied",
			message: "2026/13/45 99:99:99 ERROR Could Not Save Theme: denied",
		},
		{
			name:     "tag without timestamp",
			input:    "ERROR read log: permission denied",
			message:  "read log: permission denied",
			severity: SeverityError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Parse(tt.input)
			assert.True(t, tt.time.Equal(e.Time), "time = %v, want %v", e.Time, tt.time)
			assert.Equal(t, tt.message, e.Message)
			assert.Equal(t, tt.severity, e.Severity)
		})
	}
}

func TestParseAll(t *testing.T) {
	entries := ParseAll([]string{
		"2026/10/18 21:01:05 OK saved revision r1",
		"plain",
	})
	require.Len(t, entries, 2)
	assert.Equal(t, SeveritySuccess, entries[0].Severity)
	assert.Equal(t, "plain", entries[1].Message)
	assert.True(t, entries[1].Time.IsZero())
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	out, flags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(log.LstdFlags)
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
	return &buf
}

func TestLevelHelpers_RoundTripThroughParse(t *testing.T) {
	buf := captureLog(t)

	Errorf("compile: %v", "dial compile socket: connection refused")
	Successf("saved revision %s", "r1")
	log.Printf("path changed to %s", "/new")

	entries := ParseAll(strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"))
	require.Len(t, entries, 3)

	assert.Equal(t, SeverityError, entries[0].Severity)
	assert.Equal(t, "compile: dial compile socket: connection refused", entries[0].Message)
	assert.False(t, entries[0].Time.IsZero())

	assert.Equal(t, SeveritySuccess, entries[1].Severity)
	assert.Equal(t, "saved revision r1", entries[1].Message)

	assert.Equal(t, SeverityInfo, entries[2].Severity)
	assert.Equal(t, "path changed to /new", entries[2].Message)
}
