// Package server runs the transports of the remote changelog server.
//
// It owns the HTTP and gRPC listeners, starts them side by side, and shuts
// both down gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
