package sysinfo

import (
	"strings"
	"testing"
)

func TestLogicalCPUs_Positive(t *testing.T) {
	if n := LogicalCPUs(); n <= 0 {
		t.Errorf("LogicalCPUs = %d", n)
	}
}

func TestHost_String(t *testing.T) {
	s := Host{Logical: 8, ClockGHz: 3.2, TotalRAMGB: 16}.String()
	if !strings.Contains(s, "unknown CPU") || !strings.Contains(s, "8 threads") {
		t.Errorf("String = %q", s)
	}
}
