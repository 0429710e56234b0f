package client

import (
	"fmt"
	"io"

	"yebox/model"
)

// TerminalDisplay renders now-playing state as plain lines of text.
type TerminalDisplay struct {
	w io.Writer
}

// NewTerminalDisplay creates a display writing to w.
func NewTerminalDisplay(w io.Writer) *TerminalDisplay {
	return &TerminalDisplay{w: w}
}

// ShowNowPlaying prints the selected track and album.
func (d *TerminalDisplay) ShowNowPlaying(album *model.Album, track model.Track) {
	fmt.Fprintf(d.w, "Now playing: %s (%s)\n", track.Name, album.Name)
}

// SetPlaying prints pause/resume transitions.
func (d *TerminalDisplay) SetPlaying(playing bool) {
	if playing {
		fmt.Fprintln(d.w, "▶ playing")
	} else {
		fmt.Fprintln(d.w, "⏸ paused")
	}
}

// UpdateProgress prints the playback progress percentage.
func (d *TerminalDisplay) UpdateProgress(percent float64) {
	fmt.Fprintf(d.w, "progress: %.0f%%\n", percent)
}
