package server

import (
	"net/http"
	"strings"
)

// openExtensions lists the file suffixes the static server is allowed to
// serve: common audio, image and video formats plus PDF. Everything else
// 404s, whether or not the file exists.
var openExtensions = []string{
	".wav", ".mp3", ".flac", ".aac", ".ogg", ".m4a",
	".mp4", ".webm", ".mov", ".avi", ".wmv", ".flv", ".mkv", ".m4v", ".3gp", ".3g2",
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".tif", ".svg", ".webp", ".ico", ".heic",
	".pdf",
}

// FilteredStaticHandler wraps a generic static file server and rejects any
// path whose name does not end in an allow-listed extension. The wrapped
// handler keeps responsibility for existence checks, byte ranges, content
// types and caching headers.
type FilteredStaticHandler struct {
	next http.Handler
}

// NewFilteredStaticHandler creates a FilteredStaticHandler serving dir.
func NewFilteredStaticHandler(dir string) *FilteredStaticHandler {
	return &FilteredStaticHandler{next: http.FileServer(http.Dir(dir))}
}

// ServeHTTP implements http.Handler.
func (h *FilteredStaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !extensionAllowed(r.URL.Path) {
		respondError(w, http.StatusNotFound, "Not Found")
		return
	}
	h.next.ServeHTTP(w, r)
}

func extensionAllowed(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range openExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
