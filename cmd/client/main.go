package main

import (
	"bufio"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/gaziadib/voicetutor/internal/answer"
	"github.com/gaziadib/voicetutor/internal/audio"
	"github.com/gaziadib/voicetutor/internal/conversation"
	"github.com/gaziadib/voicetutor/internal/speech"
)

func main() {
	_ = godotenv.Load()

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8000"
	}

	api := conversation.NewAPIClient(apiURL)
	session := conversation.NewSession(api)

	ctx := context.Background()

	if err := api.Health(ctx); err != nil {
		fmt.Printf("API is offline (%v) — start the server first\n", err)
	} else {
		fmt.Println("API is running at " + apiURL)
	}

	// STT is optional: only needed for the /say voice path.
	var stt speech.STTClient
	if os.Getenv("OPENAI_API_KEY") != "" {
		stt = speech.NewWhisperClient()
	}

	speed := 1.0
	language := "en"
	saved := 0

	fmt.Println("Type a question, or /help for commands.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if session.Mode() == conversation.ModeActive {
			fmt.Print("interview> ")
		} else {
			fmt.Print("> ")
		}
		if !scanner.Scan() {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "/quit":
			return

		case line == "/help":
			printHelp()

		case line == "/roles":
			for _, role := range conversation.InterviewRoles {
				fmt.Println("  " + role)
			}

		case strings.HasPrefix(line, "/interview"):
			role := strings.TrimSpace(strings.TrimPrefix(line, "/interview"))
			if role == "" {
				role = "General Interview"
			}
			resp, err := session.StartInterview(ctx, role)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			saved = show(resp, saved)

		case line == "/end":
			resp, err := session.EndInterview(ctx)
			if err != nil {
				fmt.Println("error:", err)
				continue
			}
			saved = show(resp, saved)
			fmt.Println("interview finished")

		case strings.HasPrefix(line, "/speed"):
			raw := strings.TrimSpace(strings.TrimPrefix(line, "/speed"))
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				fmt.Println("usage: /speed 0.5..2.0")
				continue
			}
			speed = v
			fmt.Printf("speed set to %gx\n", speed)

		case strings.HasPrefix(line, "/lang"):
			language = strings.TrimSpace(strings.TrimPrefix(line, "/lang"))
			fmt.Println("language set to " + language)

		case strings.HasPrefix(line, "/say"):
			if stt == nil {
				fmt.Println("voice input needs OPENAI_API_KEY")
				continue
			}
			path := strings.TrimSpace(strings.TrimPrefix(line, "/say"))
			text, err := stt.Transcribe(ctx, path)
			if err != nil {
				if errors.Is(err, speech.ErrUnrecognized) {
					fmt.Println("Could not understand the audio. Please try again.")
				} else {
					fmt.Println("transcription error:", err)
				}
				continue
			}
			fmt.Println("You said:", text)
			saved = submit(ctx, session, text, speed, language, saved)

		case line == "/history":
			for i, turn := range session.History() {
				fmt.Printf("%d. You: %s\n   AI: %s\n", i+1, turn.User, turn.AI)
			}

		case line == "/clear":
			session.Clear()
			fmt.Println("history cleared")

		default:
			saved = submit(ctx, session, line, speed, language, saved)
		}
	}
}

func submit(ctx context.Context, session *conversation.Session, text string, speed float64, language string, saved int) int {
	var resp *answer.Response
	var err error

	if session.Mode() == conversation.ModeActive {
		resp, err = session.SubmitAnswer(ctx, text)
	} else {
		resp, err = session.Ask(ctx, text, speed, language)
	}
	if err != nil {
		fmt.Println("error:", err)
		return saved
	}
	return show(resp, saved)
}

func show(resp *answer.Response, saved int) int {
	fmt.Println("\nAI:", resp.AIAnswer)

	turnAudio, err := base64.StdEncoding.DecodeString(resp.AudioBase64)
	if err != nil || len(turnAudio) == 0 {
		fmt.Println("(no audio)")
		return saved
	}

	saved++
	path := fmt.Sprintf("answer_%03d.mp3", saved)
	if err := os.WriteFile(path, turnAudio, 0644); err != nil {
		fmt.Println("could not save audio:", err)
		return saved
	}

	if dur, err := audio.Duration(path); err == nil {
		fmt.Printf("audio saved to %s (%.1fs, %.2f KB, %gx)\n\n", path, dur, resp.AudioSizeKB, resp.Speed)
	} else {
		fmt.Printf("audio saved to %s (%.2f KB, %gx)\n\n", path, resp.AudioSizeKB, resp.Speed)
	}
	return saved
}

func printHelp() {
	fmt.Println(`commands:
  /interview <role>  start interview practice (see /roles)
  /end               finish the interview and get overall feedback
  /say <file>        transcribe an audio file and send it
  /speed <0.5-2.0>   set audio playback speed
  /lang <code>       set answer language (en, bn, hi, es, fr, de, it, ja, ko, zh)
  /history           show the transcript
  /clear             clear the transcript
  /quit              exit`)
}
