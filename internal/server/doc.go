// Package server runs the HTTP transport and stops it gracefully on
// SIGTERM, SIGINT or SIGQUIT.
package server
