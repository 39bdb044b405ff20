package lib

import (
	"os"
	"path/filepath"
	"testing"

	"ripple-cli/auth"

	shared "ripple-shared"
)

// minimal real PNG header so content sniffing sees an image
var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestLoadMediaFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pic.png")
	if err := os.WriteFile(path, pngHeader, 0644); err != nil {
		t.Fatal(err)
	}

	uploads, err := LoadMediaFiles([]string{path})
	if err != nil {
		t.Fatalf("valid png rejected: %v", err)
	}
	if len(uploads) != 1 {
		t.Fatalf("got %d uploads", len(uploads))
	}
	if uploads[0].Name != "pic.png" || uploads[0].MIME != "image/png" {
		t.Errorf("upload metadata: %+v", uploads[0])
	}
}

func TestLoadMediaFilesRejectsDisguisedContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fake.jpg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\necho pwned"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadMediaFiles([]string{path}); err == nil {
		t.Fatal("a script with a .jpg extension should be rejected")
	}
}

func TestLoadMediaFilesMissingFile(t *testing.T) {
	if _, err := LoadMediaFiles([]string{"/does/not/exist.png"}); err == nil {
		t.Fatal("missing file should error")
	}
}

func TestNormalizeMediaURL(t *testing.T) {
	prev := auth.Current
	auth.Current = &shared.ClientAuth{Token: "t", Host: "http://media.test:8080"}
	defer func() { auth.Current = prev }()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"http://cdn.example/x.png", "http://cdn.example/x.png"},
		{"https://cdn.example/x.png", "https://cdn.example/x.png"},
		{"/uploads/x.png", "http://media.test:8080/uploads/x.png"},
		{"uploads/x.png", "http://media.test:8080/uploads/x.png"},
	}

	for _, tt := range tests {
		if got := NormalizeMediaURL(tt.in); got != tt.want {
			t.Errorf("NormalizeMediaURL(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}
