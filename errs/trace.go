package errs

import (
	"fmt"
	"runtime"
)

type Frame struct {
	Function string
	File     string
	Line     int
}

func (f Frame) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line)
}

const maxTraceDepth = 32

// Trace returns the call stack above the caller, skipping skip frames.
func Trace(skip int) []Frame {
	pcs := make([]uintptr, maxTraceDepth)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	result := make([]Frame, 0, n)
	for {
		frame, more := frames.Next()
		result = append(result, Frame{Function: frame.Function, File: frame.File, Line: frame.Line})
		if !more {
			break
		}
	}
	return result
}
