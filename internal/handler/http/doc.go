// Package http implements the local JSON gateway of the journal keeper.
//
// It exposes the session holder to a local UI: session and sign-in routes,
// profile and picture routes, journal entry routes and a websocket stream of
// session snapshots. Every JSON body has the shape {success, data, error}.
// Tracing, access logging, panic recovery and CORS are handled here before a
// request reaches the holder.
package http
