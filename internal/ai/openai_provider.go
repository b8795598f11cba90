package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fdg312/workout-helper/internal/config"
)

const systemInstruction = "You are a practical fitness coach. You have the demeanor of " +
	"a gruff high school football coach. Return valid JSON only."

type OpenAIProvider struct {
	apiKey      string
	model       string
	temperature float64
	httpClient  *http.Client
}

func NewOpenAIProvider(cfg *config.Config) *OpenAIProvider {
	timeoutSeconds := cfg.AITimeoutSeconds
	if timeoutSeconds <= 0 {
		timeoutSeconds = 30
	}

	return &OpenAIProvider{
		apiKey:      cfg.OpenAIAPIKey,
		model:       cfg.OpenAIModel,
		temperature: cfg.AITemperature,
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutSeconds) * time.Second,
		},
	}
}

func (p *OpenAIProvider) Advise(ctx context.Context, req AdviseRequest) (AdviseResponse, error) {
	prompt, err := buildPrompt(req)
	if err != nil {
		return AdviseResponse{}, err
	}

	requestPayload := chatCompletionsRequest{
		Model:       p.model,
		Temperature: p.temperature,
		Messages: []chatMessageRequest{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(requestPayload)
	if err != nil {
		return AdviseResponse{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.openai.com/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return AdviseResponse{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return AdviseResponse{}, err
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return AdviseResponse{}, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return AdviseResponse{}, fmt.Errorf("openai request failed with status %d", resp.StatusCode)
	}

	var parsed chatCompletionsResponse
	if err := json.Unmarshal(responseBody, &parsed); err != nil {
		return AdviseResponse{}, err
	}
	if len(parsed.Choices) == 0 {
		return AdviseResponse{}, fmt.Errorf("openai response does not contain choices")
	}

	return parseAdvice(req.Mode, parsed.Choices[0].Message.Content)
}

// buildPrompt embeds the serialized entries plus the output contract for
// the selected mode.
func buildPrompt(req AdviseRequest) (string, error) {
	serialized, err := json.Marshal(req.Entries)
	if err != nil {
		return "", err
	}

	if req.Mode == config.AdviceModePlan {
		return fmt.Sprintf(
			"You are a practical fitness coach. Analyze these recent workouts and respond with JSON only.\n"+
				"Return object keys: tips (string), workout_plan (array).\n"+
				"Each workout_plan element must be an object with exactly these keys: "+
				"week, date, day_type, exercise, set, weight_lbs, reps, notes.\n"+
				"Use ISO date format (YYYY-MM-DD) and string values for every field.\n"+
				"Recent workouts: %s", serialized), nil
	}

	return fmt.Sprintf(
		"You are a practical fitness coach. Analyze these recent workouts and respond with JSON only.\n"+
			"Return object keys: tips (string), next_workout (string).\n"+
			"Recent workouts: %s", serialized), nil
}

// parseAdvice decodes the reply text under the contract for mode.
func parseAdvice(mode, content string) (AdviseResponse, error) {
	if mode == config.AdviceModePlan {
		var envelope struct {
			Tips        string `json:"tips"`
			WorkoutPlan []any  `json:"workout_plan"`
		}
		if err := decodeLoose(content, &envelope); err != nil {
			return AdviseResponse{}, fmt.Errorf("decode model reply: %w", err)
		}
		return AdviseResponse{
			Tips: strings.TrimSpace(envelope.Tips),
			Plan: normalizePlan(envelope.WorkoutPlan),
		}, nil
	}

	var envelope struct {
		Tips        string `json:"tips"`
		NextWorkout string `json:"next_workout"`
	}
	if err := decodeLoose(content, &envelope); err != nil {
		return AdviseResponse{}, fmt.Errorf("decode model reply: %w", err)
	}
	return AdviseResponse{
		Tips:        strings.TrimSpace(envelope.Tips),
		NextWorkout: strings.TrimSpace(envelope.NextWorkout),
	}, nil
}

type chatCompletionsRequest struct {
	Model       string               `json:"model"`
	Messages    []chatMessageRequest `json:"messages"`
	Temperature float64              `json:"temperature"`
}

type chatMessageRequest struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionsResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}
