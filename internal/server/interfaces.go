package server

// Server defines the lifecycle of the backend's transport servers.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives or
	// a listener fails, then shuts every transport down.
	RunServer()

	// Shutdown gracefully stops all transports.
	Shutdown()
}
