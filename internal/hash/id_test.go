package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestMetricID(t *testing.T) {
	want := ID("cpu_transistors")

	assert.Equal(t, want, MetricID("cpu_transistors"))
	assert.Equal(t, want, MetricID("CPU_Transistors"))
	assert.Equal(t, want, MetricID("  cpu_transistors\t"))
	assert.NotEqual(t, want, MetricID("cpu_clock_mhz"))
}

func BenchmarkMetricID(b *testing.B) {
	for b.Loop() {
		MetricID("performance_mips")
	}
}
