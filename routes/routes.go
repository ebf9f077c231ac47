package routes

import (
	"thekedaar-server/state"
	ws "thekedaar-server/websocket"
)

// Package-level handles set once at startup.
var (
	app *state.App
	hub *ws.Hub
)

// Setup binds the handlers to the application state and the event hub.
// Must be called before any route registration.
func Setup(a *state.App, h *ws.Hub) {
	app = a
	hub = h
}

// publish forwards an entity-change event when a hub is attached. Tests
// run without one.
func publish(eventType, entity string, data interface{}) {
	if hub != nil {
		hub.Publish(eventType, entity, data)
	}
}
