package story

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/abhisek/etymquest/internal/llm"
)

// ErrNoCandidate is returned when a generation response carries no story text.
var ErrNoCandidate = errors.New("no story text received")

// NetworkError reports a failed call to the story proxy. Status is zero
// when no response was received.
type NetworkError struct {
	Status  int
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("story proxy returned HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("story proxy unreachable: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Generator produces story text for a prompt.
type Generator interface {
	GenerateStory(ctx context.Context, prompt string) (string, error)
}

// DefaultTimeout bounds a single proxy call.
const DefaultTimeout = 60 * time.Second

// ProxyClient calls the story proxy's generate endpoint.
type ProxyClient struct {
	url    string
	client *http.Client
}

// NewProxyClient returns a client for the proxy endpoint at url. A nil
// httpClient uses one with DefaultTimeout.
func NewProxyClient(url string, httpClient *http.Client) *ProxyClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &ProxyClient{url: url, client: httpClient}
}

// GenerateStory posts prompt to the proxy and returns the first candidate's text.
func (p *ProxyClient) GenerateStory(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building story request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Status: resp.StatusCode, Message: "reading response", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		msg := http.StatusText(resp.StatusCode)
		if json.Unmarshal(data, &e) == nil && e.Error != "" {
			msg = e.Error
		}
		return "", &NetworkError{Status: resp.StatusCode, Message: msg}
	}
	return ExtractText(data)
}

// ExtractText returns the first candidate's text from a provider-native
// generation response. Gemini, OpenAI and Anthropic shapes are recognized.
func ExtractText(doc []byte) (string, error) {
	var r struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := json.Unmarshal(doc, &r); err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoCandidate, err)
	}

	var text string
	switch {
	case len(r.Candidates) > 0:
		if parts := r.Candidates[0].Content.Parts; len(parts) > 0 {
			text = parts[0].Text
		}
	case len(r.Choices) > 0:
		text = r.Choices[0].Message.Content
	case len(r.Content) > 0:
		text = r.Content[0].Text
	}
	if text == "" {
		return "", ErrNoCandidate
	}
	return text, nil
}

// DirectClient generates stories with an in-process provider, for use
// without a running proxy.
type DirectClient struct {
	provider llm.Provider
	cfg      llm.Config
}

// NewDirectClient returns a Generator backed by provider. cfg supplies the
// request defaults.
func NewDirectClient(provider llm.Provider, cfg llm.Config) *DirectClient {
	return &DirectClient{provider: provider, cfg: cfg}
}

func (d *DirectClient) GenerateStory(ctx context.Context, prompt string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeStory)
	resp, err := d.provider.Generate(ctx, d.cfg.Apply(llm.UserPrompt(prompt)))
	if errors.Is(err, llm.ErrEmptyResponse) {
		return "", ErrNoCandidate
	}
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
