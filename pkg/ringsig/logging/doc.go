// Package logging provides a minimal logging facade for the ring signature
// module.
//
// The Logger interface wraps a subset of the standard library's log/slog so
// applications can substitute their own implementation. The facade exists
// mostly to enforce one rule: key material never reaches a log line. Use
// Redacted to mark attributes whose value was intentionally removed:
//
//	logger := logging.New(nil)
//	logger.Info(ctx, "key pair generated", logging.Redacted("secret"))
//
// Ring contents, key images, and signatures are public values and may be
// logged; secret scalars and signing nonces may not.
package logging
