package player

import (
	"yebox/model"
)

// AudioElement is the native playback primitive the controller drives: the
// browser's <audio> element, or an external player process on the console.
type AudioElement interface {
	SetSource(url string)
	Play()
	Pause()
	CurrentTime() float64 // seconds
	Duration() float64    // seconds; 0 when not yet known
	Seek(seconds float64)
}

// Display receives now-playing and progress updates.
type Display interface {
	ShowNowPlaying(album *model.Album, track model.Track)
	SetPlaying(playing bool)
	UpdateProgress(percent float64)
}

// Controller sequences tracks within one album and drives an AudioElement.
// All transitions are synchronous functions of (current state, event).
type Controller struct {
	audio   AudioElement
	display Display
	baseURL string

	albums     []*model.Album
	current    *model.Album
	trackIndex int
	playing    bool
}

// NewController creates a controller with no album selected.
func NewController(audio AudioElement, display Display, baseURL string) *Controller {
	return &Controller{
		audio:   audio,
		display: display,
		baseURL: baseURL,
	}
}

// SetCatalog replaces the controller's local copy of the catalog.
func (c *Controller) SetCatalog(albums []*model.Album) {
	c.albums = albums
}

// PlayTrack starts playback of the given track. An unknown album id or an
// out-of-range index is silently ignored.
func (c *Controller) PlayTrack(albumID string, index int) {
	album := c.findAlbum(albumID)
	if album == nil || index < 0 || index >= len(album.Tracks) {
		return
	}

	c.current = album
	c.trackIndex = index
	track := album.Tracks[index]

	c.audio.SetSource(c.baseURL + "/uploads/tracks/" + track.File)
	c.audio.Play()
	c.playing = true

	c.display.ShowNowPlaying(album, track)
	c.display.SetPlaying(true)
}

// TogglePlayPause pauses when playing and resumes when paused.
func (c *Controller) TogglePlayPause() {
	if c.playing {
		c.audio.Pause()
		c.playing = false
	} else {
		c.audio.Play()
		c.playing = true
	}
	c.display.SetPlaying(c.playing)
}

// PreviousTrack steps back one track within the current album. It does not
// wrap: at the first track it is a no-op.
func (c *Controller) PreviousTrack() {
	if c.current != nil && c.trackIndex > 0 {
		c.PlayTrack(c.current.ID, c.trackIndex-1)
	}
}

// NextTrack steps forward one track within the current album. It does not
// wrap and never advances to another album.
func (c *Controller) NextTrack() {
	if c.current != nil && c.trackIndex < len(c.current.Tracks)-1 {
		c.PlayTrack(c.current.ID, c.trackIndex+1)
	}
}

// OnTrackEnded is the end-of-track event from the audio element.
func (c *Controller) OnTrackEnded() {
	c.NextTrack()
}

// OnTimeUpdate recomputes playback progress. Nothing is updated while the
// duration is still unknown.
func (c *Controller) OnTimeUpdate() {
	duration := c.audio.Duration()
	if duration <= 0 {
		return
	}

	progress := c.audio.CurrentTime() / duration * 100
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	c.display.UpdateProgress(progress)
}

// SeekTo converts a 0-100 progress value into a time offset and jumps there.
// Like OnTimeUpdate, it does nothing while the duration is still unknown.
func (c *Controller) SeekTo(percent float64) {
	duration := c.audio.Duration()
	if duration <= 0 {
		return
	}
	c.audio.Seek(percent / 100 * duration)
}

// Playing reports whether a track is currently playing.
func (c *Controller) Playing() bool {
	return c.playing
}

// CurrentAlbum returns the selected album, or nil.
func (c *Controller) CurrentAlbum() *model.Album {
	return c.current
}

// CurrentTrackIndex returns the index of the selected track.
func (c *Controller) CurrentTrackIndex() int {
	return c.trackIndex
}

func (c *Controller) findAlbum(id string) *model.Album {
	for _, album := range c.albums {
		if album.ID == id {
			return album
		}
	}
	return nil
}
