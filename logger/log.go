// Package logger prints leveled messages through the standard log output.
// The RPC server and the command line log here, the fraction type never does.
package logger

import (
	"fmt"
	"log"
	"regexp"
	"sync/atomic"

	"github.com/cornelk/hashmap"
)

// Levels, a message is printed when its level is at most the current one.
const (
	ERROR   = 1
	INFO    = 2
	VERBOSE = 3
	DEBUG   = 7
)

// Process wide state, Configure is expected once at startup.
var (
	level   int
	limiter int
	filter  *regexp.Regexp
	counter *hashmap.HashMap
)

func init() {
	level = INFO
	counter = &hashmap.HashMap{}
}

// Configure applies the level, the RE2 filter and the per message limiter
// in one call, an empty pattern keeps every message.
func Configure(l int, pattern string, limit int) error {
	err := SetFilter(pattern)
	if err != nil {
		return err
	}
	SetLevel(l)
	SetLimiter(limit)
	return nil
}

// SetLevel sets the highest level printed, 0 silences everything.
func SetLevel(l int) {
	level = l
}

func Level() int {
	return level
}

// SetLimiter caps how many times an identical formatted message is printed,
// 0 removes the cap. Counters restart on every call.
func SetLimiter(l int) {
	limiter = l
	counter = &hashmap.HashMap{}
}

// SetFilter keeps only formatted messages matching the RE2 pattern. An
// invalid pattern is returned and the previous filter stays.
func SetFilter(pattern string) error {
	if pattern == "" {
		filter = nil
		return nil
	}
	// https://github.com/google/re2/wiki/Syntax
	reg, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	filter = reg
	return nil
}

// Errorf logs failures a caller cannot recover from, such as a panic in an
// RPC handler.
func Errorf(format string, v ...interface{}) {
	printfAtLevel(ERROR, format, v...)
}

// Println ignores the filter and the limiter.
func Println(v ...interface{}) {
	if level >= INFO {
		log.Println(v...)
	}
}

func Printf(format string, v ...interface{}) {
	printfAtLevel(INFO, format, v...)
}

// Verbosef traces requests, e.g. every RPC call with its params.
func Verbosef(format string, v ...interface{}) {
	printfAtLevel(VERBOSE, format, v...)
}

func Debugf(format string, v ...interface{}) {
	printfAtLevel(DEBUG, format, v...)
}

func printfAtLevel(l int, format string, v ...interface{}) {
	if level < l {
		return
	}
	out := filterOutput(format, v...)
	if out == "" {
		return
	}
	if !limiterAvailable(out) {
		return
	}
	log.Print(out)
}

// limiterAvailable counts out and reports whether it is still under the cap.
func limiterAvailable(out string) bool {
	if limiter == 0 {
		return true
	}
	var i int64
	val, _ := counter.GetOrInsert(out, &i)
	actual := (val).(*int64)
	count := atomic.AddInt64(actual, 1)
	return count <= int64(limiter)
}

// filterOutput formats the message, "" means the filter dropped it.
func filterOutput(format string, v ...interface{}) string {
	out := fmt.Sprintf(format, v...)
	if filter == nil || filter.MatchString(out) {
		return out
	}
	return ""
}
