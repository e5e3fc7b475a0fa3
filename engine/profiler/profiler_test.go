package profiler

import "testing"

func TestScopesAreSafeWithoutInit(t *testing.T) {
	end := Start("frame")
	if end == nil {
		t.Fatal("Start returned nil")
	}
	end()
}

func TestRuntimeStats(t *testing.T) {
	if MemoryUsage() == 0 || MemoryAllocs() == 0 {
		t.Error("memory stats are zero")
	}
	if NumGoroutine() < 1 || NumCPU() < 1 {
		t.Error("runtime counts below one")
	}
}
