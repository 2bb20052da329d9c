// Package http implements the REST surface of the messages API.
//
// Handlers decode requests and delegate to the service layer, where message
// text is encrypted before it reaches the database and decrypted on the way
// back. Request tracing, access logging and response compression are applied
// as middleware.
package http
