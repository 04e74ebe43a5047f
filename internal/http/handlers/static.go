package handlers

import "net/http"

// Placeholder serves the image shown when a rally has no usable image.
func (h *Handler) Placeholder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(placeholderSVG)
}
