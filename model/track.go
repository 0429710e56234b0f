package model

// Track is a single playable audio item belonging to an Album.
type Track struct {
	Name         string `json:"name"`         // original filename with the extension stripped
	File         string `json:"file"`         // stored filename under the tracks directory
	OriginalName string `json:"originalName"` // filename as submitted by the uploader
}
