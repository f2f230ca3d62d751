package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/okian/gradecast/internal/domain/model"
)

// Default generation parameters sent to the hosted model.
const (
	defaultMaxNewTokens = 100
	defaultTemperature  = 0.7
	defaultTimeout      = 30 * time.Second
)

// percentPattern matches the first "<number>%" substring in free-form
// generated text, e.g. "Predicted Performance: 82.5%".
var percentPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)

// generationRequest is the payload the hosted text-generation endpoint
// expects.
type generationRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters generationParameters `json:"parameters"`
}

type generationParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
	DoSample     bool    `json:"do_sample"`
}

// generationChoice is one element of the endpoint's response array.
type generationChoice struct {
	GeneratedText string `json:"generated_text"`
}

// Remote implements Backend against a hosted text-generation endpoint. Any
// transport, status, decode or parse failure surfaces as an error so the
// prediction adapter can fall back to the local formula.
type Remote struct {
	url          string
	client       *http.Client
	maxNewTokens int
	temperature  float64
}

// NewRemote creates a remote backend for the given endpoint URL.
func NewRemote(url string, opts ...RemoteOption) *Remote {
	r := &Remote{
		url:          url,
		client:       &http.Client{Timeout: defaultTimeout},
		maxNewTokens: defaultMaxNewTokens,
		temperature:  defaultTemperature,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Predict sends the prompt to the endpoint and extracts the first
// percentage value from the generated text.
func (r *Remote) Predict(ctx context.Context, _ model.StudentRecord, prompt string) (float64, error) {
	payload, err := json.Marshal(generationRequest{
		Inputs: prompt,
		Parameters: generationParameters{
			MaxNewTokens: r.maxNewTokens,
			Temperature:  r.temperature,
			DoSample:     true,
		},
	})
	if err != nil {
		return 0, fmt.Errorf("%w: marshal request: %v", ErrRemoteCall, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("%w: build request: %v", ErrRemoteCall, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRemoteCall, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: read body: %v", ErrDecodeResponse, err)
	}

	var choices []generationChoice
	if err := json.Unmarshal(body, &choices); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}

	for _, choice := range choices {
		if m := percentPattern.FindStringSubmatch(choice.GeneratedText); m != nil {
			value, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				continue
			}
			return value, nil
		}
	}

	return 0, ErrNoPercentage
}

// Name identifies the backend variant.
func (r *Remote) Name() string { return "remote-endpoint" }
