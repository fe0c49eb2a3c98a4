package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/goccy/go-json"

	"github.com/gaziadib/voicetutor/internal/answer"
)

type AskHandler struct {
	answerService *answer.Service
	engine        string
	log           *logger.ZapLogger
}

func NewAskHandler(answerService *answer.Service, engine string, log *logger.ZapLogger) *AskHandler {
	return &AskHandler{
		answerService: answerService,
		engine:        engine,
		log:           log,
	}
}

func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid form: "+err.Error())
		return
	}

	req := answer.Request{
		Question: r.FormValue("question"),
		Speed:    1.0,
		Language: "en",
	}

	if raw := r.FormValue("speed"); raw != "" {
		speed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, "invalid speed: "+raw)
			return
		}
		req.Speed = speed
	}
	if raw := r.FormValue("language"); raw != "" {
		req.Language = raw
	}

	resp, err := h.answerService.Answer(r.Context(), req)
	if err != nil {
		if errors.Is(err, answer.ErrInvalidInput) {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "ask failed: request_id=" + RequestIDFromContext(r.Context()),
			Service: "delivery",
			Error:   err,
		})
		writeDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail mirrors the {"detail": "..."} error body clients expect.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
