package conversation

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/gaziadib/voicetutor/internal/answer"
)

// APIClient calls the answer service over HTTP.
type APIClient struct {
	baseURL string
	httpCli *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpCli: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *APIClient) Ask(ctx context.Context, question string, speed float64, language string) (*answer.Response, error) {
	form := url.Values{}
	form.Set("question", question)
	form.Set("speed", strconv.FormatFloat(speed, 'f', -1, 64))
	form.Set("language", language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ask", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		var e struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &e); err == nil && e.Detail != "" {
			return nil, fmt.Errorf("api error: %s", e.Detail)
		}
		return nil, fmt.Errorf("api error: status %d", resp.StatusCode)
	}

	var out answer.Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

// Health probes the service before a session starts.
func (c *APIClient) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api unhealthy: status %d", resp.StatusCode)
	}
	return nil
}
