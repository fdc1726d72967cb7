package metrics

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"syscall"
)

// probeCPU reads the one-minute load average from /proc/loadavg and
// normalizes it against the CPU count.
func probeCPU() (float64, error) {
	data, err := os.ReadFile("/proc/loadavg")
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, fmt.Errorf("metrics: malformed /proc/loadavg")
	}
	load, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, err
	}
	return clamp(load / float64(runtime.NumCPU())), nil
}

// probeMemory reads /proc/meminfo and returns the used fraction.
func probeMemory() (float64, error) {
	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return 0, err
	}
	var total, available float64
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		value, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		switch fields[0] {
		case "MemTotal:":
			total = value
		case "MemAvailable:":
			available = value
		}
	}
	if total == 0 {
		return 0, fmt.Errorf("metrics: MemTotal missing from /proc/meminfo")
	}
	return clamp((total - available) / total), nil
}

// probeTemperature reads the first thermal zone, millidegrees Celsius,
// normalized against 100°C.
func probeTemperature() (float64, error) {
	data, err := os.ReadFile("/sys/class/thermal/thermal_zone0/temp")
	if err != nil {
		return 0, err
	}
	milli, err := strconv.ParseFloat(strings.TrimSpace(string(data)), 64)
	if err != nil {
		return 0, err
	}
	return clamp(milli / 100000), nil
}

// probeDisk returns the used fraction of the root filesystem.
func probeDisk() (float64, error) {
	var fs syscall.Statfs_t
	if err := syscall.Statfs("/", &fs); err != nil {
		return 0, err
	}
	total := float64(fs.Blocks) * float64(fs.Bsize)
	if total == 0 {
		return 0, fmt.Errorf("metrics: zero-size root filesystem")
	}
	free := float64(fs.Bavail) * float64(fs.Bsize)
	return clamp((total - free) / total), nil
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
