package sysinfo

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// Host is a short description of the machine running the render.
type Host struct {
	CPUModel   string
	Logical    int
	ClockGHz   float64
	TotalRAMGB float64
}

// Probe collects CPU and memory information.
func Probe() (Host, error) {
	h := Host{Logical: LogicalCPUs()}

	info, err := cpu.Info()
	if err != nil {
		return h, fmt.Errorf("sysinfo: cpu: %w", err)
	}
	if len(info) > 0 {
		h.CPUModel = info[0].ModelName
		h.ClockGHz = info[0].Mhz / 1000
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		return h, fmt.Errorf("sysinfo: memory: %w", err)
	}
	h.TotalRAMGB = float64(vm.Total) / (1024 * 1024 * 1024)
	return h, nil
}

// LogicalCPUs is the default worker count. Falls back to runtime.NumCPU
// when the OS query fails.
func LogicalCPUs() int {
	n, err := cpu.Counts(true)
	if err != nil || n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

func (h Host) String() string {
	model := h.CPUModel
	if model == "" {
		model = "unknown CPU"
	}
	return fmt.Sprintf("%s, %d threads @ %.2f GHz, %.1f GB RAM", model, h.Logical, h.ClockGHz, h.TotalRAMGB)
}
