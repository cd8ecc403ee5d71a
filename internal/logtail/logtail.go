package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

// timeLayout is the prefix the standard logger writes with LstdFlags.
const timeLayout = "2006/01/02 15:04:05"

// Level tags written after the timestamp. Untagged lines are info.
const (
	errorTag   = "ERROR "
	successTag = "OK "
)

// Errorf logs an error-level line through the standard logger.
func Errorf(format string, args ...any) {
	_ = log.Output(2, errorTag+fmt.Sprintf(format, args...))
}

// Successf logs a success-level line through the standard logger.
func Successf(format string, args ...any) {
	_ = log.Output(2, successTag+fmt.Sprintf(format, args...))
}

// Read returns the last maxLines lines of the file at path, or every line
// when maxLines is not positive. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count, next := 0, 0
	for scanner.Scan() {
		ring[next] = scanner.Text()
		next = (next + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if count < maxLines {
		return ring[:count:count], nil
	}
	lines := make([]string, 0, count)
	lines = append(lines, ring[next:]...)
	return append(lines, ring[:next]...), nil
}

// Severity classifies a log line for display.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

// Entry is a parsed log line.
type Entry struct {
	Time     time.Time // zero for continuation lines
	Message  string
	Severity Severity
}

// Parse splits the timestamp and level tag off a line written by the
// standard logger.
func Parse(line string) Entry {
	var e Entry
	msg := line
	if len(line) >= len(timeLayout) {
		if ts, err := time.ParseInLocation(timeLayout, line[:len(timeLayout)], time.Local); err == nil {
			e.Time = ts
			msg = strings.TrimPrefix(line[len(timeLayout):], " ")
		}
	}

	switch {
	case strings.HasPrefix(msg, errorTag):
		e.Severity = SeverityError
		msg = strings.TrimPrefix(msg, errorTag)
	case strings.HasPrefix(msg, successTag):
		e.Severity = SeveritySuccess
		msg = strings.TrimPrefix(msg, successTag)
	}
	e.Message = msg
	return e
}

// ParseAll parses every line.
func ParseAll(lines []string) []Entry {
	entries := make([]Entry, len(lines))
	for i, line := range lines {
		entries[i] = Parse(line)
	}
	return entries
}
