package webchat

import (
	_ "embed"
	"net/http"
)

//go:embed widget.js
var widgetJS []byte

// HandleWidgetJS serves the embeddable widget loader.
func (h *Handler) HandleWidgetJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	_, _ = w.Write(widgetJS)
}
