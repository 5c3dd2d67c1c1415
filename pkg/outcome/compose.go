package outcome

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// FailurePrefix marks strings already produced by a composer. A compose call
// that receives such a message with no extra context or cause returns it
// verbatim, so failures travelling through combinators are never
// double-wrapped.
const FailurePrefix = "Error: "

// ComposeFunc renders a failure message, an optional context label and an
// optional native error into one display string.
type ComposeFunc func(message, context string, cause error) string

var (
	composeFn      ComposeFunc = DefaultCompose
	stackTraceFlag bool
)

// SetComposer replaces the process-wide failure composer. Passing nil
// restores DefaultCompose. Call during startup; mutating the composer while
// results are being constructed is out of contract.
func SetComposer(fn ComposeFunc) {
	if fn == nil {
		composeFn = DefaultCompose
		return
	}
	composeFn = fn
}

// IncludeStackTrace toggles appending a stack trace to composed failures
// that carry a native error. Same configuration contract as SetComposer.
func IncludeStackTrace(on bool) {
	stackTraceFlag = on
}

func compose(message, context string, cause error) string {
	return composeFn(message, context, cause)
}

// DefaultCompose merges whichever of message, context and cause are non-empty
// into a multi-line display string. An already-composed message with no extra
// parts passes through unchanged. An empty context is derived from the first
// call-stack frame outside this module.
func DefaultCompose(message, context string, cause error) string {
	if strings.HasPrefix(message, FailurePrefix) && context == "" && cause == nil {
		return message
	}

	if context == "" {
		context = callerContext()
	}

	var b strings.Builder
	if message != "" {
		b.WriteString(FailurePrefix)
		b.WriteString(message)
	}
	if context != "" {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("Context: ")
		b.WriteString(context)
	}
	if cause != nil {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("Cause: ")
		b.WriteString(cause.Error())
		if stackTraceFlag {
			b.WriteString("\nTrace:\n")
			b.Write(debug.Stack())
		}
	}
	if b.Len() == 0 {
		return FailurePrefix + "unspecified failure"
	}
	return b.String()
}

const modulePrefix = "github.com/ib-77/outcome/"

// callerContext returns the qualified name of the nearest call-stack frame
// outside this module, skipping compiler-generated closure frames.
func callerContext() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		name := frame.Function
		switch {
		case name == "":
		case strings.HasPrefix(name, modulePrefix):
		case strings.Contains(name[strings.LastIndex(name, "/")+1:], ".func"):
		default:
			return fmt.Sprintf("%s (%s:%d)", name, shortFile(frame.File), frame.Line)
		}
		if !more {
			return ""
		}
	}
}

func shortFile(file string) string {
	if i := strings.LastIndex(file, "/"); i >= 0 {
		return file[i+1:]
	}
	return file
}
