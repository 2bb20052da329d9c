// Package config loads, merges and validates configuration.
//
// The server configuration is assembled from, in order of precedence:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// A field takes the value of the first source that sets it; defaults fill
// whatever is still empty. The entry points are [GetStructuredConfig] for
// the server and [GetClientConfig] for the command line client.
package config
