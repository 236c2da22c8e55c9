package storage

import "testing"

func TestExtensionForContentType(t *testing.T) {
	cases := []struct {
		contentType string
		want        string
	}{
		{"audio/webm", ".webm"},
		{"audio/webm;codecs=opus", ".webm"},
		{"audio/ogg; codecs=opus", ".ogg"},
		{"audio/wav", ".wav"},
		{"audio/x-wav", ".wav"},
		{"AUDIO/MP4", ".m4a"},
		{"audio/mpeg", ".mp3"},
		{"video/mp4", ".bin"},
		{"", ".bin"},
	}
	for _, c := range cases {
		if got := ExtensionForContentType(c.contentType); got != c.want {
			t.Errorf("ExtensionForContentType(%q) = %q, want %q", c.contentType, got, c.want)
		}
	}
}

func TestIsAudioContentType(t *testing.T) {
	if !IsAudioContentType("audio/webm;codecs=opus") {
		t.Error("expected audio/webm to be recognized")
	}
	if IsAudioContentType("application/pdf") {
		t.Error("expected application/pdf to be rejected")
	}
}
