// Package logger is the public API of terrier. Most users only need to
// import this package.
//
// A Logger is immutable after construction: its resolved configuration
// and its context labels are set once and never modified. This makes
// Logger safe for concurrent use without any locking on the logging
// path.
//
// Every log call that passes the level filter renders one line and
// performs exactly one write to the sink chosen for its level:
//
//	<timestamp> <prefix> <context labels joined by separator><args joined by " ">\n
//
// With the defaults the timestamp is dimmed, the prefix is a colored
// three letter tag (TRC, DBG, INF, WRN, ERR, FTL), Error and Fatal go
// to stderr and everything else to stdout.
//
// The package initializes a default Logger in init() from TERRIER_*
// environment variables. The package-level functions Info, Warn,
// Child, etc. delegate to it:
//
//	logger.Info("ready on port", 8080)
//
// For custom configuration, pass a Config to New or use the Builder:
//
//	log := logger.NewBuilder().
//	    WithLevels(logger.ReducedLevels).
//	    WithLevel(logger.WarnLevel).
//	    WithSeparator(" > ").
//	    Build()
//
// Child loggers with extra context labels are created via Child, which
// returns a new Logger sharing the same configuration:
//
//	dbLog := log.Child("[db]", "[pool]")
//
// Level checks happen before any formatting, so filtered calls cost a
// comparison and a table lookup. Arguments are still evaluated by the
// caller; guard expensive ones with Enabled.
package logger
