// Package util contains small helpers that don't belong to any other package
package util

import (
	"os"
	"strings"
)

// IsRunningInDocker looks for the marker file docker creates and falls back to
// the cgroup of the init process.
func IsRunningInDocker() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}

	data, err := os.ReadFile("/proc/1/cgroup")
	if err != nil {
		return false
	}

	return strings.Contains(string(data), "docker")
}
