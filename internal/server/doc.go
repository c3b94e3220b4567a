// Package server runs the local gateway: startup, signal handling and
// graceful shutdown of the HTTP listener.
package server
