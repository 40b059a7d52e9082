// Package server holds the HTTP server configuration.
//
// The start command serves the audit and integrity features over HTTP.
// This package only defines the listen port and the API key guarding it;
// an empty key leaves the API open, which is intended for local use.
package server
