package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Oracle picks the best candidate for an ambiguous query, or declares no
// match by returning an empty string. Implementations make network calls;
// tests substitute a deterministic fake.
type Oracle interface {
	Choose(ctx context.Context, candidates []string, query string) (string, error)
}

// ChatOracle asks an OpenAI-compatible chat completion endpoint to
// disambiguate. The model sees only the shortlist, never the full catalog.
type ChatOracle struct {
	BaseURL string
	Model   string
	apiKey  string
	http    *http.Client
}

// NewChatOracle creates an oracle against the given endpoint.
func NewChatOracle(baseURL, apiKey, model string, timeout time.Duration) *ChatOracle {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if model == "" {
		model = "gpt-3.5-turbo-1106"
	}
	return &ChatOracle{
		BaseURL: baseURL,
		Model:   model,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

const oraclePrompt = `I'll give you just a string value.
You will figure out, what value in this list represents this value best: %s
Keep in mind that the given string value can be misspelled or has missing words as it has its origin in a speech to text process.
You must only return the value of the closest match to the given value from the defined list, nothing else.
For example if "Hercules A2" is given and the list contains of "A2, C2, M2", you will return "A2" as string.
On longer search terms, prefer the exact match, if it is in the list.
The response must not contain anything else, than the exact value of the closest match from the list.
If you can't find a match, return 'None'. Do never return the given search value.`

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Choose implements Oracle via one chat completion round trip.
func (o *ChatOracle) Choose(ctx context.Context, candidates []string, query string) (string, error) {
	reqBody := chatRequest{
		Model: o.Model,
		Messages: []chatMessage{
			{Role: "system", Content: fmt.Sprintf(oraclePrompt, strings.Join(candidates, ", "))},
			{Role: "user", Content: query},
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("oracle: HTTP %d: %s", resp.StatusCode, body)
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("oracle: decode: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("oracle: empty response")
	}

	answer := strings.TrimSpace(cr.Choices[0].Message.Content)
	if answer == "None" {
		return "", nil
	}
	return answer, nil
}
