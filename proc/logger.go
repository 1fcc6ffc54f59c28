package proc

import (
	"log"
	"os"
	"sync"
)

type ILogger interface {
	Println(v ...any)
	Printf(format string, v ...any)
}

// Logger receives runtime diagnostics. Replace it to integrate with an
// application's own logging.
var Logger ILogger = log.New(os.Stdout, "wasp", log.Ldate|log.Ltime|log.Lmicroseconds)

var (
	debugLog      = false
	debugLogMutex sync.RWMutex
)

func DebugLogEnabled() bool {
	defer debugLogMutex.RUnlock()
	debugLogMutex.RLock()
	return debugLog
}

// SetDebugLog toggles per-signal and termination logging in the driver loop.
func SetDebugLog(v bool) {
	defer debugLogMutex.Unlock()
	debugLogMutex.Lock()

	debugLog = v
}

func DebugPrintf(format string, v ...any) {
	if DebugLogEnabled() {
		Logger.Printf(format, v...)
	}
}
