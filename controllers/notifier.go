package controllers

import "github.com/FEBRIAN80/managmnt-food/ws"

// Notifier is what controllers need from the websocket hub; tests substitute
// a recording fake.
type Notifier interface {
	Notify(cashierID uint, note ws.Notification)
}
