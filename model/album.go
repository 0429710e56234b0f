package model

import "time"

// Album is a named collection of tracks sharing one cover image.
// The catalog lives only in memory; albums do not survive a restart.
type Album struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Cover      string    `json:"cover"` // stored filename under the covers directory
	Tracks     []Track   `json:"tracks"`
	UploadDate time.Time `json:"uploadDate"`
}
