package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives everything reported through this package.
	// It defaults to a LogHandler on slog.Default.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler replaces the global handler. Nil restores a LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

func handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends err to the global handler, stamping it if needed.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := handler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic sends err to the global handler, stamping it if needed.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := handler(); h != nil {
		h.HandlePanic(err)
	}
}

// RecoverControl recovers a panic raised by a host callback that control
// invoked during op, and reports it as a KindCallback panic.
//
//	defer errors.RecoverControl("stepper.notify", c.control)
func RecoverControl(op, control string) {
	if r := recover(); r != nil {
		reportRecovered(r, op, control, KindCallback)
	}
}

// RecoverTick recovers a panic raised inside a repeating timer tick of
// control. The panic is reported as KindScheduler and stop is then called
// so a failing tick does not fire again.
//
//	defer errors.RecoverTick("stepper.autorepeat", a.control, a.halt)
func RecoverTick(op, control string, stop func()) {
	if r := recover(); r != nil {
		reportRecovered(r, op, control, KindScheduler)
		if stop != nil {
			stop()
		}
	}
}

func reportRecovered(r any, op, control string, kind ErrorKind) {
	ReportPanic(&PanicError{
		Op:         op,
		Kind:       kind,
		Control:    control,
		Value:      r,
		StackTrace: panicStack(),
		Timestamp:  time.Now(),
	})
}

// panicStack formats the stack of the recovering goroutine from the frame
// that panicked. Runtime frames are left out.
func panicStack() string {
	var pcs [48]uintptr
	// Skip Callers, panicStack, reportRecovered and the Recover helper.
	n := runtime.Callers(4, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		f, more := frames.Next()
		if !strings.HasPrefix(f.Function, "runtime.") {
			sb.WriteString(f.Function)
			sb.WriteString("\n\t")
			sb.WriteString(f.File)
			sb.WriteByte(':')
			sb.WriteString(strconv.Itoa(f.Line))
			sb.WriteByte('\n')
		}
		if !more {
			break
		}
	}
	return sb.String()
}
