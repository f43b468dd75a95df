package dataset

import "strings"

// TimePrefix marks a column holding the time axis of a signal.
const TimePrefix = "Time - "

// headerSeparator splits a column header into prefix and signal name.
const headerSeparator = " - "

// ParseHeader splits a column header of the form "<prefix> - <name>" and
// returns the prefix and the trimmed signal name. ok is false when the
// separator is absent or the name is empty after trimming.
func ParseHeader(header string) (prefix, name string, ok bool) {
	idx := strings.Index(header, headerSeparator)
	if idx < 0 {
		return "", "", false
	}

	prefix = header[:idx]
	name = strings.TrimSpace(header[idx+len(headerSeparator):])
	if name == "" {
		return "", "", false
	}

	return prefix, name, true
}

// isTimeHeader reports whether the header is a time column and returns the
// trimmed signal name.
func isTimeHeader(header string) (string, bool) {
	if !strings.HasPrefix(header, TimePrefix) {
		return "", false
	}

	name := strings.TrimSpace(header[len(TimePrefix):])
	if name == "" {
		return "", false
	}

	return name, true
}
