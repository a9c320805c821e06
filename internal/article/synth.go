// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package article

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/mackney/gazette-engine/internal/httputil"
	"github.com/mackney/gazette-engine/pkg/types"
)

// ErrSynthesis marks a content synthesis failure. Callers fall back to the
// deterministic placeholder draft so the batch still produces a record.
var ErrSynthesis = errors.New("article synthesis failed")

// Synthesizer turns an article seed into prose.
type Synthesizer interface {
	Synthesize(ctx context.Context, seed types.ArticleSeed) (types.Draft, error)
}

// backoffBase controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var backoffBase = time.Second

// OpenAISynthesizer is the chat-completions implementation.
type OpenAISynthesizer struct {
	model      string
	maxRetries int
	opts       []option.RequestOption
}

// NewOpenAISynthesizer validates the config and builds a synthesizer.
func NewOpenAISynthesizer(cfg types.SynthesizerConfig) (*OpenAISynthesizer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: api key missing", types.ErrInvalidArgument)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model is required", types.ErrInvalidArgument)
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	// Rate limiting is handled at the transport; the retry loop above it
	// covers everything else.
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httputil.NewRetryClient(maxRetries)),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAISynthesizer{model: cfg.Model, maxRetries: maxRetries, opts: opts}, nil
}

// Synthesize requests a structured draft for the seed, retrying transient
// failures with exponential backoff.
func (o *OpenAISynthesizer) Synthesize(ctx context.Context, seed types.ArticleSeed) (types.Draft, error) {
	client := openai.NewClient(o.opts...)

	system := systemPrompt(seed)
	user := userPrompt(seed)

	var lastErr error
	for attempt := 0; attempt <= o.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return types.Draft{}, ctx.Err()
			case <-time.After(backoff):
			}
		}

		resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model: openai.ChatModel(o.model),
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(system),
				openai.UserMessage(user),
			},
		})
		if err != nil {
			lastErr = err
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = errors.New("empty choices in response")
			continue
		}

		draft, err := parseDraft(resp.Choices[0].Message.Content)
		if err != nil {
			lastErr = err
			continue
		}
		return draft, nil
	}

	return types.Draft{}, fmt.Errorf("%w: after %d retries: %v", ErrSynthesis, o.maxRetries, lastErr)
}

// parseDraft decodes the model's JSON draft, tolerating markdown code
// fences around the object.
func parseDraft(content string) (types.Draft, error) {
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)

	var draft types.Draft
	if err := json.Unmarshal([]byte(trimmed), &draft); err != nil {
		return types.Draft{}, fmt.Errorf("decoding draft: %w", err)
	}
	if draft.Title == "" || draft.Body == "" {
		return types.Draft{}, errors.New("draft missing title or body")
	}
	return draft, nil
}

func systemPrompt(seed types.ArticleSeed) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, a journalist for a small-town gazette.\n", seed.Author.Name)
	fmt.Fprintf(&b, "Persona: %s\n", seed.Author.Persona)
	fmt.Fprintf(&b, "Writing style: %s\n", seed.Author.WritingStyle)
	fmt.Fprintf(&b, "You are writing a %s article with a %s tone.\n", seed.Category, seed.Seriousness)
	b.WriteString("Respond with a single JSON object with exactly the keys \"title\", \"body\", and \"summary\". No other text.")
	return b.String()
}

// userPrompt renders the sampled context into prose the model can anchor
// the story on. Families that were not sampled are omitted entirely.
func userPrompt(seed types.ArticleSeed) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a %s article for the gazette.\n", seed.Category)

	if seed.TownName != "" {
		fmt.Fprintf(&b, "\nThe town is %s, population %d.\n", seed.TownName, seed.TownPopulation)
	}
	if n := len(seed.TownFeatures.Streets); n > 0 {
		b.WriteString("\nStreets that may feature:\n")
		for _, s := range seed.TownFeatures.Streets {
			fmt.Fprintf(&b, "- %s (%s)\n", s.Name, s.Type)
		}
	}
	if n := len(seed.TownFeatures.Landmarks); n > 0 {
		b.WriteString("\nLandmarks that may feature:\n")
		for _, l := range seed.TownFeatures.Landmarks {
			fmt.Fprintf(&b, "- %s (%s) on %s, established %d\n", l.Name, l.Type, l.Street, l.EstablishedYear)
		}
	}
	if n := len(seed.TownFeatures.Businesses); n > 0 {
		b.WriteString("\nBusinesses that may feature:\n")
		for _, biz := range seed.TownFeatures.Businesses {
			fmt.Fprintf(&b, "- %s (%s) on %s, established %d\n", biz.Name, biz.Type, biz.Street, biz.EstablishedYear)
		}
	}
	if n := len(seed.TownFeatures.Events); n > 0 {
		b.WriteString("\nUpcoming events:\n")
		for _, e := range seed.TownFeatures.Events {
			fmt.Fprintf(&b, "- %s (%s) on %s, %s\n", e.Name, e.Type, e.Street, e.Date)
		}
	}
	if len(seed.People) > 0 {
		b.WriteString("\nResidents who may be quoted or mentioned:\n")
		for _, p := range seed.People {
			occupation := p.Occupation
			if occupation == "" {
				occupation = string(p.EmploymentStatus)
			}
			fmt.Fprintf(&b, "- %s, %d, %s. Temperament: %s (%s)\n",
				p.FullName(), p.Age, occupation, p.Temperament.Type, p.Temperament.Description)
		}
	}

	b.WriteString("\nInvent any further details you need; keep them consistent with the context above.")
	return b.String()
}

// PlaceholderDraft is the deterministic fallback used when synthesis is
// disabled or fails.
func PlaceholderDraft(category string) types.Draft {
	return types.Draft{
		Title:   fmt.Sprintf("Placeholder Title for %s Article", category),
		Body:    "This is a placeholder for the article body.",
		Summary: "This is a placeholder summary.",
	}
}

// PlaceholderSynthesizer produces placeholder drafts without any external
// calls. Used when no API key is configured or synthesis is switched off.
type PlaceholderSynthesizer struct{}

func (PlaceholderSynthesizer) Synthesize(_ context.Context, seed types.ArticleSeed) (types.Draft, error) {
	return PlaceholderDraft(seed.Category), nil
}
