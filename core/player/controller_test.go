package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yebox/model"
)

type fakeAudio struct {
	source      string
	playCalls   int
	pauseCalls  int
	currentTime float64
	duration    float64
	seekedTo    float64
	seeked      bool
}

func (f *fakeAudio) SetSource(url string) { f.source = url }
func (f *fakeAudio) Play()                { f.playCalls++ }
func (f *fakeAudio) Pause()               { f.pauseCalls++ }
func (f *fakeAudio) CurrentTime() float64 { return f.currentTime }
func (f *fakeAudio) Duration() float64    { return f.duration }
func (f *fakeAudio) Seek(seconds float64) { f.seekedTo = seconds; f.seeked = true }

type fakeDisplay struct {
	nowPlaying      string
	playing         bool
	progress        float64
	progressUpdates int
}

func (f *fakeDisplay) ShowNowPlaying(album *model.Album, track model.Track) {
	f.nowPlaying = album.Name + " / " + track.Name
}

func (f *fakeDisplay) SetPlaying(playing bool) { f.playing = playing }

func (f *fakeDisplay) UpdateProgress(percent float64) {
	f.progress = percent
	f.progressUpdates++
}

func catalog() []*model.Album {
	return []*model.Album{
		{
			ID:   "demo",
			Name: "Demo",
			Tracks: []model.Track{
				{Name: "Intro", File: "aaa.mp3", OriginalName: "Intro.mp3"},
				{Name: "Outro", File: "bbb.mp3", OriginalName: "Outro.mp3"},
			},
		},
	}
}

func newTestController() (*Controller, *fakeAudio, *fakeDisplay) {
	audio := &fakeAudio{}
	display := &fakeDisplay{}
	ctrl := NewController(audio, display, "")
	ctrl.SetCatalog(catalog())
	return ctrl, audio, display
}

func TestPlayTrack(t *testing.T) {
	ctrl, audio, display := newTestController()

	ctrl.PlayTrack("demo", 0)

	assert.Equal(t, "/uploads/tracks/aaa.mp3", audio.source)
	assert.Equal(t, 1, audio.playCalls)
	assert.True(t, ctrl.Playing())
	assert.Equal(t, 0, ctrl.CurrentTrackIndex())
	assert.Equal(t, "Demo / Intro", display.nowPlaying)
	assert.True(t, display.playing)
}

func TestPlayTrackUnknownAlbumIsSilentNoop(t *testing.T) {
	ctrl, audio, _ := newTestController()

	ctrl.PlayTrack("missing", 0)

	assert.Empty(t, audio.source)
	assert.Zero(t, audio.playCalls)
	assert.False(t, ctrl.Playing())
	assert.Nil(t, ctrl.CurrentAlbum())
}

func TestPlayTrackOutOfRangeIndexIsNoop(t *testing.T) {
	ctrl, audio, _ := newTestController()

	ctrl.PlayTrack("demo", 5)
	ctrl.PlayTrack("demo", -1)

	assert.Zero(t, audio.playCalls)
	assert.Nil(t, ctrl.CurrentAlbum())
}

func TestTogglePlayPause(t *testing.T) {
	ctrl, audio, display := newTestController()
	ctrl.PlayTrack("demo", 0)

	ctrl.TogglePlayPause()
	assert.False(t, ctrl.Playing())
	assert.Equal(t, 1, audio.pauseCalls)
	assert.False(t, display.playing)

	ctrl.TogglePlayPause()
	assert.True(t, ctrl.Playing())
	assert.Equal(t, 2, audio.playCalls)
	assert.True(t, display.playing)
}

func TestNextTrackStopsAtLastIndex(t *testing.T) {
	ctrl, _, _ := newTestController()
	ctrl.PlayTrack("demo", 1)

	ctrl.NextTrack()

	assert.Equal(t, 1, ctrl.CurrentTrackIndex())
}

func TestPreviousTrackStopsAtFirstIndex(t *testing.T) {
	ctrl, audio, _ := newTestController()
	ctrl.PlayTrack("demo", 0)
	playsBefore := audio.playCalls

	ctrl.PreviousTrack()

	assert.Equal(t, 0, ctrl.CurrentTrackIndex())
	assert.Equal(t, playsBefore, audio.playCalls)
}

func TestNextPreviousWithNoAlbumAreNoops(t *testing.T) {
	ctrl, audio, _ := newTestController()

	ctrl.NextTrack()
	ctrl.PreviousTrack()
	ctrl.OnTrackEnded()

	assert.Zero(t, audio.playCalls)
}

func TestTrackEndedAdvancesWithoutWraparound(t *testing.T) {
	ctrl, _, _ := newTestController()

	// Upload scenario: play the first track, let it end twice.
	ctrl.PlayTrack("demo", 0)
	require.Equal(t, 0, ctrl.CurrentTrackIndex())

	ctrl.OnTrackEnded()
	assert.Equal(t, 1, ctrl.CurrentTrackIndex())

	ctrl.OnTrackEnded()
	assert.Equal(t, 1, ctrl.CurrentTrackIndex())
}

func TestOnTimeUpdate(t *testing.T) {
	tests := []struct {
		name         string
		currentTime  float64
		duration     float64
		wantUpdates  int
		wantProgress float64
	}{
		{name: "halfway", currentTime: 60, duration: 120, wantUpdates: 1, wantProgress: 50},
		{name: "start", currentTime: 0, duration: 120, wantUpdates: 1, wantProgress: 0},
		{name: "end", currentTime: 120, duration: 120, wantUpdates: 1, wantProgress: 100},
		{name: "past end clamps to 100", currentTime: 130, duration: 120, wantUpdates: 1, wantProgress: 100},
		{name: "unknown duration skips update", currentTime: 60, duration: 0, wantUpdates: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, audio, display := newTestController()
			audio.currentTime = tt.currentTime
			audio.duration = tt.duration

			ctrl.OnTimeUpdate()

			assert.Equal(t, tt.wantUpdates, display.progressUpdates)
			if tt.wantUpdates > 0 {
				assert.Equal(t, tt.wantProgress, display.progress)
				assert.GreaterOrEqual(t, display.progress, 0.0)
				assert.LessOrEqual(t, display.progress, 100.0)
			}
		})
	}
}

func TestSeekTo(t *testing.T) {
	ctrl, audio, _ := newTestController()
	audio.duration = 200

	ctrl.SeekTo(25)

	assert.True(t, audio.seeked)
	assert.Equal(t, 50.0, audio.seekedTo)
}

func TestSeekToUnknownDurationIsNoop(t *testing.T) {
	ctrl, audio, _ := newTestController()
	audio.duration = 0

	ctrl.SeekTo(50)

	assert.False(t, audio.seeked)
}
