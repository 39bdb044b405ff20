package ui

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// MaxMediaFiles is the most attachments one post can carry.
	MaxMediaFiles = 5

	// MaxMediaTotalBytes caps the combined size of all attachments.
	MaxMediaTotalBytes = 10 * 1024 * 1024
)

var allowedMediaExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".mp4":  true,
}

var allowedMediaMimes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"video/mp4":  true,
}

// MediaFile is one attachment candidate with its sniffed content type.
type MediaFile struct {
	Path string
	MIME string
	Size int64
}

// MediaSelection validates attachment sets for a post. Validation is
// all-or-nothing: any rejected file clears the whole pending selection so
// the user starts over, never with a silently trimmed subset.
type MediaSelection struct {
	files []MediaFile
}

// Select replaces the pending selection with the given files if every one
// passes validation. On rejection the selection is cleared and the first
// violation is returned as an error.
func (s *MediaSelection) Select(files []MediaFile) error {
	s.files = nil

	if len(files) > MaxMediaFiles {
		return fmt.Errorf("you can attach at most %d files", MaxMediaFiles)
	}

	var total int64
	for _, f := range files {
		ext := strings.ToLower(filepath.Ext(f.Path))
		if !allowedMediaExts[ext] {
			return fmt.Errorf("%s: only .jpg, .png, and .mp4 files are allowed", filepath.Base(f.Path))
		}
		// content sniffing can come up empty (mp4 variants in particular);
		// the extension check above stands on its own then
		if f.MIME != "" && f.MIME != "application/octet-stream" && !allowedMediaMimes[f.MIME] {
			return fmt.Errorf("%s: file content doesn't match its extension", filepath.Base(f.Path))
		}
		total += f.Size
	}

	if total > MaxMediaTotalBytes {
		return fmt.Errorf("attachments exceed the %dMB total limit", MaxMediaTotalBytes/(1024*1024))
	}

	s.files = files
	return nil
}

// Files returns the validated selection, or nil if none is pending.
func (s *MediaSelection) Files() []MediaFile {
	return s.files
}

// Clear drops the pending selection.
func (s *MediaSelection) Clear() {
	s.files = nil
}
