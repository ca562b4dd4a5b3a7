// Package logger provides slog attribute helpers for consistent structured
// logging across the signal bus and subscriber packages.
//
// All helpers follow the empty Attr pattern: passing a nil error, empty ID,
// or nil panic value yields an attribute slog silently drops, so call sites
// never need nil checks:
//
//	log.Error("handler failed",
//	    logger.SignalType("Profile"),
//	    logger.Subscription(subID),
//	    logger.Error(err), // safe even when err is nil
//	)
package logger
