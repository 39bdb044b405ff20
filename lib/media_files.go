package lib

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"ripple-cli/api"
	"ripple-cli/types"
	"ripple-cli/ui"
)

// LoadMediaFiles reads attachment candidates from disk, sniffs their
// content types, and validates the set with the shared selection rules.
// Returns the uploads ready for the multipart request.
func LoadMediaFiles(paths []string) ([]types.MediaUpload, error) {
	var files []ui.MediaFile
	var uploads []types.MediaUpload

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading %s: %v", path, err)
		}

		mime := http.DetectContentType(data)
		// DetectContentType appends charset params for text types
		if i := strings.Index(mime, ";"); i != -1 {
			mime = mime[:i]
		}

		files = append(files, ui.MediaFile{
			Path: path,
			MIME: mime,
			Size: int64(len(data)),
		})
		uploads = append(uploads, types.MediaUpload{
			Name: filepath.Base(path),
			MIME: mime,
			Data: data,
		})
	}

	var selection ui.MediaSelection
	if err := selection.Select(files); err != nil {
		return nil, err
	}

	return uploads, nil
}

// NormalizeMediaURL resolves server-relative media paths against the API
// host so they can be opened outside the app. Absolute URLs pass through.
func NormalizeMediaURL(url string) string {
	if url == "" ||
		strings.HasPrefix(url, "http://") ||
		strings.HasPrefix(url, "https://") {
		return url
	}
	return strings.TrimSuffix(api.GetApiHost(), "/") + "/" + strings.TrimPrefix(url, "/")
}
