//go:build windows

package sysinfo

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// ProcessMemory returns the working set size of the current process in
// bytes.
func ProcessMemory() (int64, error) {
	var pmc windows.PROCESS_MEMORY_COUNTERS
	err := windows.GetProcessMemoryInfo(windows.CurrentProcess(), &pmc, uint32(unsafe.Sizeof(pmc)))
	if err != nil {
		return 0, fmt.Errorf("GetProcessMemoryInfo: %w", err)
	}
	return int64(pmc.WorkingSetSize), nil
}
