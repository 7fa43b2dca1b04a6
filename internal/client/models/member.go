// Package models holds client-side views of server data.
package models

// Member is a member as returned by the server.
type Member struct {
	ID    int64
	Name  string
	Email string
}
