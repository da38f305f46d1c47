package gemmcost

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var debugOnce sync.Once
var debugEnabled bool

// debugCached reads ANALYTICAL_GEMM_DEBUG once per process and caches the
// result (§6, §9: "Reads of ANALYTICAL_GEMM_DEBUG should be cached at first
// call"). When set, the logrus level is raised to Debug and warnings emitted
// by the model (hit-rate anomalies, instruction-table misses) are logged at
// Debug level in addition to their normal Warn level, mirroring the way the
// teacher gates verbose stderr output behind a single parsed log level.
func debugCached() bool {
	debugOnce.Do(func() {
		debugEnabled = os.Getenv("ANALYTICAL_GEMM_DEBUG") == "1"
		if debugEnabled {
			logrus.SetLevel(logrus.DebugLevel)
		}
	})
	return debugEnabled
}

// warnf emits a stderr warning via logrus, and additionally logs the same
// message at Debug level when debug mode is enabled. Used for all
// recoverable-anomaly paths (§7): hit-rate > 1, instruction-not-found.
func warnf(format string, args ...any) {
	logrus.Warnf(format, args...)
	if debugCached() {
		logrus.Debugf(format, args...)
	}
}
