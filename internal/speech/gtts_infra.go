package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"unicode"
)

const (
	defaultTTSBaseURL = "https://translate.google.com/translate_tts"

	// The translate endpoint rejects long inputs, so answers are
	// synthesized chunk by chunk and the MP3 segments concatenated.
	maxChunkLen = 200

	speedNormal = "1"
	speedSlow   = "0.3"
)

// GTTSClient talks to the Google Translate text-to-speech endpoint.
type GTTSClient struct {
	baseURL string
	httpCli *http.Client
}

func NewGTTSClient() *GTTSClient {
	base := os.Getenv("TTS_BASE_URL")
	if base == "" {
		base = defaultTTSBaseURL
	}

	return &GTTSClient{
		baseURL: base,
		httpCli: http.DefaultClient,
	}
}

func (c *GTTSClient) Engine() string {
	return "gTTS"
}

// TEXT → SPEECH
func (c *GTTSClient) Synthesize(ctx context.Context, text, language string, slow bool) ([]byte, error) {
	chunks := splitText(text, maxChunkLen)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("nothing to synthesize")
	}

	speed := speedNormal
	if slow {
		speed = speedSlow
	}

	var audio bytes.Buffer
	for idx, chunk := range chunks {
		seg, err := c.fetchChunk(ctx, chunk, language, speed, idx, len(chunks))
		if err != nil {
			return nil, fmt.Errorf("chunk %d/%d: %w", idx+1, len(chunks), err)
		}
		audio.Write(seg)
	}

	if audio.Len() == 0 {
		return nil, fmt.Errorf("tts returned empty audio")
	}

	return audio.Bytes(), nil
}

func (c *GTTSClient) fetchChunk(ctx context.Context, chunk, language, speed string, idx, total int) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("q", chunk)
	q.Set("tl", language)
	q.Set("ttsspeed", speed)
	q.Set("idx", strconv.Itoa(idx))
	q.Set("total", strconv.Itoa(total))
	q.Set("textlen", strconv.Itoa(len([]rune(chunk))))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tts failed: status %d: %s", resp.StatusCode, string(b))
	}

	return io.ReadAll(resp.Body)
}

// splitText cuts text into chunks of at most max runes, preferring sentence
// punctuation and falling back to whitespace so words stay intact.
func splitText(text string, max int) []string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}

	var chunks []string
	for len(runes) > 0 {
		if len(runes) <= max {
			chunks = append(chunks, string(runes))
			break
		}

		cut := -1
		for i := max; i > 0; i-- {
			switch runes[i-1] {
			case '.', '!', '?', ';', ':', ',':
				cut = i
			}
			if cut > 0 {
				break
			}
		}
		if cut < 0 {
			for i := max; i > 0; i-- {
				if unicode.IsSpace(runes[i-1]) {
					cut = i
					break
				}
			}
		}
		if cut < 0 {
			cut = max // one giant word, hard cut
		}

		chunk := strings.TrimSpace(string(runes[:cut]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		runes = []rune(strings.TrimSpace(string(runes[cut:])))
	}

	return chunks
}
