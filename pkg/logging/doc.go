// Package logging provides the logging facade used by package ecc.
//
// Logger is a small context-aware subset of log/slog so applications can
// plug in their own implementation for tests or redaction policies:
//
//	logger := logging.New(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
//	ctx, err := ecc.NewContext(params, ecc.WithLogger(logger))
//
// Private scalars, nonces and shared secrets are never passed to a Logger.
// Where such a value is involved the attribute is replaced by Redacted:
//
//	logger.Debug(ctx, "private key generated", logging.Redacted("scalar"))
//	// scalar="[redacted]"
//
// WithCurve scopes a Logger to one curve, attaching the KeyCurve and KeyBits
// attributes to every record. Discard returns a Logger that drops every
// record.
package logging
