package errors

import (
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler is the global error handler.
	// It defaults to a LogHandler writing to stderr, configured from the
	// COMPONENT_LOG_* environment variables.
	DefaultHandler ErrorHandler = NewLogHandler(os.Stderr, LogConfigFromEnv())

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = NewLogHandler(os.Stderr, LogConfigFromEnv())
	} else {
		DefaultHandler = h
	}
}

func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *ComponentError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic sends a panic error to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// Recover is a helper for deferred panic recovery.
// Usage: defer errors.Recover("component.Render")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, "", r)
	}
}

// RecoverWithCallback is like Recover but also hands the reported error to
// callback. component names the component being run; it fills in a recovered
// ComponentError that does not name one.
func RecoverWithCallback(op, component string, callback func(err error)) {
	if r := recover(); r != nil {
		err := reportRecovered(op, component, r)
		if callback != nil {
			callback(err)
		}
	}
}

// reportRecovered reports a panic value and returns the reported error.
// A recovered *ComponentError is annotated on a copy; the panicked value
// is never written.
func reportRecovered(op, component string, r any) error {
	if ce, ok := r.(*ComponentError); ok && ce != nil {
		annotated := *ce
		if annotated.Component == "" {
			annotated.Component = component
		}
		annotated.StackTrace = CaptureStack()
		Report(&annotated)
		return &annotated
	}
	pe := &PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
	ReportPanic(pe)
	return pe
}

// CaptureStack returns the current call stack as a string,
// excluding CaptureStack and its caller.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
