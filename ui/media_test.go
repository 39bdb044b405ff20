package ui

import (
	"strings"
	"testing"
)

func TestMediaSelectionAccepts(t *testing.T) {
	var sel MediaSelection

	err := sel.Select([]MediaFile{
		{Path: "a.jpg", MIME: "image/jpeg", Size: 1024},
		{Path: "b.PNG", MIME: "image/png", Size: 2048},
		{Path: "c.mp4", MIME: "video/mp4", Size: 4096},
	})

	if err != nil {
		t.Fatalf("valid selection rejected: %v", err)
	}
	if len(sel.Files()) != 3 {
		t.Errorf("selection should hold all files: got %d", len(sel.Files()))
	}
}

func TestMediaSelectionTooManyFiles(t *testing.T) {
	var sel MediaSelection

	files := make([]MediaFile, MaxMediaFiles+1)
	for i := range files {
		files[i] = MediaFile{Path: "a.jpg", MIME: "image/jpeg", Size: 1}
	}

	if err := sel.Select(files); err == nil {
		t.Fatal("six files should be rejected")
	}
	if sel.Files() != nil {
		t.Error("rejection should clear the pending selection")
	}
}

func TestMediaSelectionTooLarge(t *testing.T) {
	var sel MediaSelection

	err := sel.Select([]MediaFile{
		{Path: "a.mp4", MIME: "video/mp4", Size: 6 * 1024 * 1024},
		{Path: "b.mp4", MIME: "video/mp4", Size: 5 * 1024 * 1024},
	})

	if err == nil {
		t.Fatal("11MB aggregate should be rejected")
	}
	if sel.Files() != nil {
		t.Error("rejection should clear the pending selection")
	}
}

func TestMediaSelectionBadExtension(t *testing.T) {
	var sel MediaSelection

	err := sel.Select([]MediaFile{
		{Path: "a.jpg", MIME: "image/jpeg", Size: 1},
		{Path: "evil.exe", MIME: "image/jpeg", Size: 1},
	})

	if err == nil || !strings.Contains(err.Error(), "evil.exe") {
		t.Fatalf("bad extension should be rejected by name: %v", err)
	}
	if sel.Files() != nil {
		t.Error("rejection should clear the pending selection")
	}
}

func TestMediaSelectionMimeMismatch(t *testing.T) {
	var sel MediaSelection

	// a renamed script: extension says image, content says otherwise
	err := sel.Select([]MediaFile{
		{Path: "sneaky.jpg", MIME: "text/plain", Size: 1},
	})

	if err == nil {
		t.Fatal("MIME mismatch should be rejected")
	}
	if sel.Files() != nil {
		t.Error("rejection should clear the pending selection")
	}
}

func TestMediaSelectionUnknownMimeFallsBackToExt(t *testing.T) {
	var sel MediaSelection

	// some mp4 variants sniff as application/octet-stream
	err := sel.Select([]MediaFile{
		{Path: "clip.mp4", MIME: "application/octet-stream", Size: 1},
	})

	if err != nil {
		t.Fatalf("octet-stream on an allowed extension should pass: %v", err)
	}
	if len(sel.Files()) != 1 {
		t.Error("the selection should hold the file")
	}

	if err := sel.Select([]MediaFile{{Path: "tool.exe", MIME: "application/octet-stream", Size: 1}}); err == nil {
		t.Fatal("unknown content never rescues a bad extension")
	}
}

func TestMediaSelectionReplacesPrevious(t *testing.T) {
	var sel MediaSelection

	if err := sel.Select([]MediaFile{{Path: "a.jpg", MIME: "image/jpeg", Size: 1}}); err != nil {
		t.Fatal(err)
	}
	if err := sel.Select([]MediaFile{{Path: "bad.gif", MIME: "image/gif", Size: 1}}); err == nil {
		t.Fatal("gif should be rejected")
	}
	if sel.Files() != nil {
		t.Error("a failed re-selection should not keep the old files")
	}
}
