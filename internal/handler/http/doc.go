// Package http implements the REST transport of the remote changelog server.
//
// It exposes the changelog push and pull routes, the liveness and version
// endpoints, and the middleware chain in front of them: panic recovery,
// per-request trace ids, access logging, gzip transfer encoding and JWT
// bearer authentication. Business rules live in the service layer; this
// package only decodes requests, maps errors to status codes and encodes
// responses.
package http
