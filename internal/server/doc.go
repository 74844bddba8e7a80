// Package server wires and runs the application's transport servers.
//
// It provides orchestration for the HTTPS API server and the plain HTTP
// server that redirects to it, including startup, signal handling, and
// graceful shutdown of all enabled listeners. Without TLS material the API
// is served over plain HTTP.
package server
