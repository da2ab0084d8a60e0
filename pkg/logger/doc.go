// Package logger builds slog loggers whose handlers pull request-scoped
// attributes (tenant ID, request ID) out of the context on every log call.
// Components register extractors once at startup and then log through the
// standard slog API without threading identifiers by hand.
package logger
