package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrTaskIDRequired indicates no task ID was entered.
var ErrTaskIDRequired = errors.New("task ID required")

// ParseTaskID parses a task ID typed by the user.
//
// Parsing rules:
// 1. Surrounding whitespace is ignored
// 2. The ID may be written as shown in listings, e.g. "[3]"
// 3. Empty input → ErrTaskIDRequired
// 4. Anything but ASCII digits → error: invalid task ID: <input>
func ParseTaskID(input string) (int, error) {
	s := strings.TrimSpace(input)
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if s == "" {
		return 0, ErrTaskIDRequired
	}
	if !isAllDigits(s) {
		return 0, fmt.Errorf("invalid task ID: %s", strings.TrimSpace(input))
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID: %s", strings.TrimSpace(input))
	}
	return id, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
