// Package server holds the HTTP server configuration.
//
// The application entry point starts the Fiber server; this package only defines
// the settings it reads.
//
// # Configuration
//
// The Config struct defines the HTTP port, the optional API key, the upload size
// limit and where the upload template lives (a public URL or an object in the
// storage bucket).
package server
