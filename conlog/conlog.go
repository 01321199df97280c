// Package conlog routes user facing messages. The decoding packages never
// log; commands install their output here.
package conlog

import (
	"log"
)

var (
	p     = log.Printf
	debug bool
)

func SetPrintf(f func(string, ...interface{})) {
	p = f
}

// SetDebug enables DPrintf output.
func SetDebug(d bool) {
	debug = d
}

func Printf(format string, v ...interface{}) {
	p(format, v...)
}

// DPrintf prints only if debugging is enabled.
func DPrintf(format string, v ...interface{}) {
	if debug {
		p(format, v...)
	}
}
