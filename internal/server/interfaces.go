package server

// Server is the lifecycle of a transport server.
type Server interface {
	// RunServer serves requests until a stop signal arrives.
	RunServer()
	// Shutdown gracefully stops the server.
	Shutdown()
}
