package config

import (
	"log/slog"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"false": slog.LevelInfo,
		"0":     slog.LevelInfo,
		"1":     slog.LevelDebug,
		"true":  slog.LevelDebug,
		"2":     slog.Level(-8),
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("BORN_DEBUG", k)
			assert.Equal(t, v, LogLevel())
		})
	}
}

func TestBool(t *testing.T) {
	cases := map[string]bool{
		"":      false,
		"true":  true,
		"false": false,
		"1":     true,
		"0":     false,
		"yes":   true, // unparseable values enable the flag
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			t.Setenv("BORN_TEST_FLAG", k)
			assert.Equal(t, v, Bool("BORN_TEST_FLAG")())
		})
	}
}

func TestBFloat16(t *testing.T) {
	tests := []struct {
		value       string
		enabled, ok bool
	}{
		{"", false, false},
		{"1", true, true},
		{"false", false, true},
		{"maybe", false, false},
		{"'true'", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("BORN_BFLOAT16", tt.value)
			enabled, ok := BFloat16()
			assert.Equal(t, tt.enabled, enabled)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestThreads(t *testing.T) {
	t.Setenv("BORN_NUM_THREADS", "")
	assert.Equal(t, runtime.NumCPU(), Threads())

	t.Setenv("BORN_NUM_THREADS", "3")
	assert.Equal(t, 3, Threads())

	t.Setenv("BORN_NUM_THREADS", "lots")
	assert.Equal(t, runtime.NumCPU(), Threads())
}

func TestParallelMin(t *testing.T) {
	t.Setenv("BORN_PARALLEL_MIN", "")
	assert.Equal(t, uint(4096), ParallelMin())

	t.Setenv("BORN_PARALLEL_MIN", "16")
	assert.Equal(t, uint(16), ParallelMin())
}

func TestAsMap(t *testing.T) {
	t.Setenv("BORN_BFLOAT16", "")
	vars := AsMap()
	assert.Contains(t, vars, "BORN_DEBUG")
	assert.Equal(t, "auto", vars["BORN_BFLOAT16"].Value)
	assert.Equal(t, "auto", Values()["BORN_BFLOAT16"])
}
