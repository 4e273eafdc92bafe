package logger_test

import (
	"fmt"
	"os"

	"github.com/BROOSWAJNE/terrier/ansi"
	"github.com/BROOSWAJNE/terrier/handler"
	"github.com/BROOSWAJNE/terrier/logger"
)

func stamp() string { return "12:00:00 " }

// Use the package-level default logger for quick, no-setup logging.
func Example() {
	logger.Print("Application started")
	logger.Warn("disk usage at", 91, "percent")
}

// Create a custom Logger with the Builder pattern.
func ExampleNewBuilder() {
	log := logger.NewBuilder().
		WithSink(handler.AddSync(os.Stdout)).
		WithTimestamp(stamp).
		WithColor(ansi.Never).
		WithLevel(logger.DebugLevel).
		Build()

	log.Trace("hidden")
	log.Debug("config loaded", map[string]int{"workers": 4})
	log.Info("ready on port", 8080)
	// Output:
	// 12:00:00 DBG config loaded map[workers:4]
	// 12:00:00 INF ready on port 8080
}

// Use Child to tag every line with persistent context labels.
func ExampleLogger_Child() {
	log := logger.NewBuilder().
		WithSink(handler.AddSync(os.Stdout)).
		WithTimestamp(stamp).
		WithColor(ansi.Never).
		WithSeparator("").
		Build()

	dbLog := log.Child("[db] ")
	poolLog := dbLog.Child("[pool] ")

	dbLog.Info("connected")
	poolLog.Warn("exhausted, waiting")
	// Output:
	// 12:00:00 INF [db] connected
	// 12:00:00 WRN [db] [pool] exhausted, waiting
}

// Restrict a logger to the reduced Debug..Error profile.
func ExampleLogger_Enabled() {
	log := logger.NewBuilder().
		WithLevels(logger.ReducedLevels).
		WithSink(handler.AddSync(os.Stdout)).
		Build()

	fmt.Println(log.Enabled(logger.TraceLevel))
	fmt.Println(log.Enabled(logger.DebugLevel))
	fmt.Println(log.Enabled(logger.FatalLevel))
	// Output:
	// false
	// true
	// false
}
