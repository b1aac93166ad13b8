//go:build linux

package sysinfo

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ProcessMemory returns the resident set size of the current process in
// bytes, read from /proc/self/statm.
func ProcessMemory() (int64, error) {
	raw, err := os.ReadFile("/proc/self/statm")
	if err != nil {
		return 0, fmt.Errorf("failed to read statm: %w", err)
	}
	return residentBytes(string(raw), int64(os.Getpagesize()))
}

// residentBytes parses statm content: whitespace-separated page counts,
// resident set in the second field.
func residentBytes(statm string, pageSize int64) (int64, error) {
	fields := strings.Fields(statm)
	if len(fields) < 2 {
		return 0, fmt.Errorf("malformed statm content %q", statm)
	}
	pages, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed resident field %q: %w", fields[1], err)
	}
	return pages * pageSize, nil
}
