// Package config reads Born runtime settings from BORN_* environment variables.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Var returns the trimmed value of an environment variable, without quotes.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// BoolWithDefault returns a getter for a boolean variable. Unparseable values
// count as true so that BORN_X=yes enables X.
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool returns a getter for a boolean variable that defaults to false.
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// Uint returns a getter for an unsigned variable.
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// LogLevel returns the log level selected by BORN_DEBUG.
// BORN_DEBUG=1 enables debug logs; BORN_DEBUG=2 goes one level further.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("BORN_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}
	return level
}

// BFloat16 reports a forced BFloat16 capability from BORN_BFLOAT16.
// ok is false when the variable is unset or not a boolean, in which case
// the capability is detected from the platform.
func BFloat16() (enabled, ok bool) {
	s := Var("BORN_BFLOAT16")
	if s == "" {
		return false, false
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		slog.Warn("invalid environment variable, detecting capability", "key", "BORN_BFLOAT16", "value", s)
		return false, false
	}
	return b, true
}

var (
	// NumThreads bounds kernel worker goroutines. Zero means one per CPU.
	NumThreads = Uint("BORN_NUM_THREADS", 0)
	// ParallelMin is the element count below which kernels run sequentially.
	ParallelMin = Uint("BORN_PARALLEL_MIN", 4096)
	// Sequential disables parallel kernels.
	Sequential = Bool("BORN_SEQUENTIAL")
)

// Threads returns the effective worker count.
func Threads() int {
	if n := NumThreads(); n > 0 {
		return int(n)
	}
	return runtime.NumCPU()
}

// EnvVar documents one configuration variable.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every variable with its current value.
func AsMap() map[string]EnvVar {
	bf16 := "auto"
	if v, ok := BFloat16(); ok {
		bf16 = strconv.FormatBool(v)
	}
	return map[string]EnvVar{
		"BORN_DEBUG":        {"BORN_DEBUG", LogLevel(), "Show additional debug information (e.g. BORN_DEBUG=1)"},
		"BORN_BFLOAT16":     {"BORN_BFLOAT16", bf16, "Force BFloat16 kernels on or off instead of detecting support"},
		"BORN_NUM_THREADS":  {"BORN_NUM_THREADS", Threads(), "Maximum worker goroutines per kernel (default: number of CPUs)"},
		"BORN_PARALLEL_MIN": {"BORN_PARALLEL_MIN", ParallelMin(), "Element count below which kernels run sequentially"},
		"BORN_SEQUENTIAL":   {"BORN_SEQUENTIAL", Sequential(), "Run every kernel on the calling goroutine"},
	}
}

// Values returns every variable's current value as a string.
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
