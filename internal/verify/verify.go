// Package verify classifies free-form text as authentic or fabricated news
// by calling a generative language model with a structured response schema.
package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"

	// DefaultModel is the model used when none is configured.
	DefaultModel = "gemini-2.5-flash"

	httpTimeout = 60 * time.Second
)

// ErrUnavailable reports that the verification service could not produce a
// verdict. Callers must present this as "verification unavailable", never
// as a negative verdict.
var ErrUnavailable = errors.New("verification unavailable")

// RefSource is one reference the model cites in support of its verdict.
type RefSource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Result is the structured verdict for one piece of text.
type Result struct {
	IsAuthentic      bool        `json:"isAuthentic"`
	ReliabilityScore float64     `json:"reliabilityScore"` // 0-100
	Analysis         string      `json:"analysis"`
	Sources          []RefSource `json:"sources"`
}

// Client calls the generateContent API of a Gemini-compatible service.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

// NewClient creates a verification client. Empty model selects DefaultModel.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		apiKey:   apiKey,
		model:    model,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: httpTimeout},
	}
}

const verifyPrompt = `Hãy đóng vai một chuyên gia kiểm chứng tin tức tại Việt Nam.
Nhiệm vụ của bạn là phân tích đoạn văn bản hoặc tin tức sau đây: %q

Hãy xác định xem đây là tin giả (Fake News) hay tin chính thống dựa trên kiến thức hiện tại của bạn.

Trả về kết quả ở định dạng JSON với các trường:
- isAuthentic: boolean (true nếu là tin thật, false nếu là tin giả hoặc nghi ngờ)
- reliabilityScore: number (0-100)
- analysis: string (Phân tích chi tiết bằng tiếng Việt, giải thích tại sao tin này thật hoặc giả)
- sources: mảng các đối tượng { title: string, url: string } liệt kê các nguồn tin uy tín (như Dân Trí, Tuổi Trẻ, VnExpress, Cổng thông tin Chính phủ) để kiểm chứng.`

// verdictSchema constrains the model to the Result shape.
const verdictSchema = `{
  "type": "OBJECT",
  "properties": {
    "isAuthentic": {"type": "BOOLEAN"},
    "reliabilityScore": {"type": "NUMBER"},
    "analysis": {"type": "STRING"},
    "sources": {
      "type": "ARRAY",
      "items": {
        "type": "OBJECT",
        "properties": {
          "title": {"type": "STRING"},
          "url": {"type": "STRING"}
        },
        "required": ["title", "url"]
      }
    }
  },
  "required": ["isAuthentic", "reliabilityScore", "analysis", "sources"]
}`

// Verify asks the model for a verdict on text. Any service failure or
// response that does not decode into the full verdict shape wraps
// ErrUnavailable.
func (c *Client) Verify(ctx context.Context, text string) (*Result, error) {
	body, err := c.generate(ctx, fmt.Sprintf(verifyPrompt, text), true)
	if err != nil {
		return nil, err
	}

	var res Result
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		return nil, fmt.Errorf("%w: parse verdict: %v", ErrUnavailable, err)
	}
	if strings.TrimSpace(res.Analysis) == "" {
		return nil, fmt.Errorf("%w: verdict missing analysis", ErrUnavailable)
	}
	return &res, nil
}

const summarizePrompt = "Tóm tắt ngắn gọn tin tức sau trong khoảng 2-3 câu ngắn gọn và súc tích bằng tiếng Việt:\n\nTiêu đề: %s\nNội dung: %s"

// Summarize asks the model for a short Vietnamese summary of an article.
func (c *Client) Summarize(ctx context.Context, title, content string) (string, error) {
	text, err := c.generate(ctx, fmt.Sprintf(summarizePrompt, title, content), false)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "Không có tóm tắt.", nil
	}
	return strings.TrimSpace(text), nil
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   json.RawMessage `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

func (c *Client) generate(ctx context.Context, prompt string, structured bool) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if structured {
		reqBody.GenerationConfig = &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   json.RawMessage(verdictSchema),
		}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: api returned status %d", ErrUnavailable, resp.StatusCode)
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidates in response", ErrUnavailable)
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}
