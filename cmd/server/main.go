package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/gaziadib/voicetutor/internal/ai"
	"github.com/gaziadib/voicetutor/internal/answer"
	"github.com/gaziadib/voicetutor/internal/audio"
	"github.com/gaziadib/voicetutor/internal/delivery"
	"github.com/gaziadib/voicetutor/internal/speech"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV INIT
	// =========================================================================

	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// CLIENTS (LLM / TTS)
	// =========================================================================

	groqClient := ai.NewGroqClient()
	ttsClient := speech.NewGTTSClient()

	// =========================================================================
	// DOMAIN SERVICES
	// =========================================================================

	adjuster := audio.NewFFmpegAdjuster()

	answerService := answer.NewService(
		groqClient, // Groq LLM
		ttsClient,  // gTTS
		adjuster,
		zl,
	)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(60, time.Minute))

	askHandler := delivery.NewAskHandler(answerService, ttsClient.Engine(), zl)
	delivery.RegisterRoutes(r, askHandler)

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "voicetutor",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
