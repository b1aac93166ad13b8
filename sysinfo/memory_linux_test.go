//go:build linux

package sysinfo

import "testing"

func TestResidentBytes(t *testing.T) {
	cases := []struct {
		name     string
		statm    string
		pageSize int64
		want     int64
		wantErr  bool
	}{
		{"typical", "12345 678 90 1 0 200 0\n", 4096, 678 * 4096, false},
		{"two fields", "10 5", 4096, 5 * 4096, false},
		{"empty", "", 4096, 0, true},
		{"one field", "12345", 4096, 0, true},
		{"garbage resident", "10 abc 3", 4096, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := residentBytes(tc.statm, tc.pageSize)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("residentBytes: %v", err)
			}
			if got != tc.want {
				t.Errorf("residentBytes = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestProcessMemory(t *testing.T) {
	got, err := ProcessMemory()
	if err != nil {
		t.Fatalf("ProcessMemory: %v", err)
	}
	if got <= 0 {
		t.Errorf("resident set = %d, want > 0", got)
	}
}
