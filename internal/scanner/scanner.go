// Package scanner extracts attendance records from photographed attendance
// sheets via the Gemini API. It returns structured records only; matching
// them against the plan is the schedule engine's job.
package scanner

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"google.golang.org/genai"

	"shiftmaster/internal/model"
)

const defaultModel = "gemini-2.5-flash"

const extractionPrompt = `Analyze this photo of an attendance sheet.
Extract the attendance records and return them as JSON.
For each record give: "employeeName", "date" (format YYYY-MM-DD),
"checkIn" (HH:MM) and "checkOut" (HH:MM).
If a value is unreadable, use an empty string.`

// Scanner calls Gemini to read attendance sheets, with an optional Redis
// cache so re-scanning the same photo costs nothing.
type Scanner struct {
	client   *genai.Client
	model    string
	redis    *redis.Client
	cacheTTL time.Duration
}

// New creates a scanner backed by the Gemini API.
func New(ctx context.Context, apiKey, modelName string) (*Scanner, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if modelName == "" {
		modelName = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Scanner{client: client, model: modelName}, nil
}

// UseRedisCache configures optional caching of extraction results.
func (s *Scanner) UseRedisCache(redisClient *redis.Client, ttl time.Duration) {
	s.redis = redisClient
	s.cacheTTL = ttl
}

type extractionResponse struct {
	Records []model.ScannedRecord `json:"records"`
}

// Extract reads one attendance-sheet image and returns its records.
// Identical images hit the cache, keyed by the SHA-256 of the bytes.
func (s *Scanner) Extract(ctx context.Context, imageData []byte, mimeType string) ([]model.ScannedRecord, error) {
	cacheKey := fmt.Sprintf("scan:%x", sha256.Sum256(imageData))

	var cached extractionResponse
	if s.readCache(ctx, cacheKey, &cached) {
		return cached.Records, nil
	}

	contents := []*genai.Content{{
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: imageData}},
			{Text: extractionPrompt},
		},
		Role: genai.RoleUser,
	}}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"records": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"employeeName": {Type: genai.TypeString},
							"date":         {Type: genai.TypeString, Description: "Date YYYY-MM-DD"},
							"checkIn":      {Type: genai.TypeString, Description: "Check-in time HH:MM"},
							"checkOut":     {Type: genai.TypeString, Description: "Check-out time HH:MM"},
						},
					},
				},
			},
		},
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini extraction failed: %w", err)
	}

	var resp extractionResponse
	if err := json.Unmarshal([]byte(result.Text()), &resp); err != nil {
		return nil, fmt.Errorf("parse extraction response: %w", err)
	}

	s.writeCache(ctx, cacheKey, resp)
	return resp.Records, nil
}

func (s *Scanner) readCache(ctx context.Context, key string, out any) bool {
	if s.redis == nil || s.cacheTTL <= 0 {
		return false
	}
	val, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), out) == nil
}

func (s *Scanner) writeCache(ctx context.Context, key string, val any) {
	if s.redis == nil || s.cacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	_ = s.redis.Set(ctx, key, data, s.cacheTTL).Err()
}
