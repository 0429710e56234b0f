package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectContentType(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "png cover keeps its type", path: "covers/abc.png", want: "image/png"},
		{name: "jpg cover", path: "covers/abc.jpg", want: "image/jpeg"},
		{name: "mp3 track", path: "tracks/abc.mp3", want: "audio/mpeg"},
		{name: "extensionless cover falls back", path: "covers/abc", want: "image/jpeg"},
		{name: "extensionless track falls back", path: "tracks/abc", want: "audio/mpeg"},
		{name: "unknown path falls back", path: "other/abc", want: "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detectContentType(tt.path))
		})
	}
}
