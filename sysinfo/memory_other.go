//go:build !linux && !windows

package sysinfo

// ProcessMemory is not implemented on this platform and reports 0.
func ProcessMemory() (int64, error) {
	return 0, nil
}
