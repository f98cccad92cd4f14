// Package logger is the public API of lazylog. Most users only need to
// import this package.
//
// Messages are templates with "{}" placeholders plus positional
// arguments:
//
//	log := logger.GetLogger("store.cache")
//	log.Info("evicted {} entries in {}", logger.Int(n), logger.Duration(d))
//
// The point of the template split is laziness: arguments are rendered
// only when the call's severity passes the logger's threshold, so an
// expensive value costs nothing on a filtered-out call. Pass the value
// itself (via Stringer, Lazy, or Any), never its pre-built string:
//
//	log.Trace("state: {}", logger.Stringer(bigSnapshot)) // free when trace is off
//	log.Trace("state: {}", logger.String(bigSnapshot.String())) // renders regardless
//
// Building the whole line by concatenation before the call gives the
// guarantee away entirely, since the concatenation runs no matter what
// the threshold says.
//
// An error in the final argument position is detached from placeholder
// substitution and rendered separately by the sink:
//
//	log.Error("fetch {} failed", logger.String(url), logger.Err(err))
//
// A Logger is immutable: its name, threshold, and sink are fixed at
// construction, which makes it safe for concurrent use without locking
// on the read path. Loggers come from a Factory that resolves each
// name's threshold against a severity registry once. The package
// initializes a default factory (async, InfoLevel, text to stdout) in
// init(); the package-level functions Info, Error, etc. and GetLogger
// delegate to it, so simple programs can log without any setup. For
// explicit configuration, build a factory via FromConfig or the
// Builder and install it with SetDefaultFactory.
//
// Severity checks happen before any rendering, so filtered-out
// messages cost only a single integer comparison. When extra work is
// needed to assemble arguments, gate it the same way the thresholds
// are checked internally:
//
//	if log.DebugEnabled() {
//	    log.Debug("dump: {}", logger.String(expensiveReport()))
//	}
package logger
