package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Scan bool
	Runs bool
	LSP  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("SPLITQ_DEBUG_SCAN")
	d.Runs = boolEnv("SPLITQ_DEBUG_RUNS")
	d.LSP = boolEnv("SPLITQ_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Runs() bool {
	return d.Runs
}
func LSP() bool {
	return d.LSP
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
