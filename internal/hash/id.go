// Package hash derives stable 64-bit identifiers for metric series.
package hash

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of data.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// MetricID computes the identifier of a metric name. Names are matched case-insensitively
// and surrounding whitespace is ignored, so "CPU_Transistors " and "cpu_transistors" share an ID.
func MetricID(name string) uint64 {
	return ID(strings.ToLower(strings.TrimSpace(name)))
}
