package delivery

import (
	"net/http"
)

func (h *AskHandler) Root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Text-to-Speech API is running!",
		"endpoints": map[string]string{
			"/ask":    "POST - Generate text and audio from a question",
			"/health": "GET - Check API health",
		},
	})
}

func (h *AskHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "healthy",
		"tts_engine": h.engine,
		"features":   []string{"speed_control", "multiple_languages"},
	})
}
