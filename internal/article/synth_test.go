// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package article

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mackney/gazette-engine/pkg/types"
)

func TestParseDraft(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    types.Draft
		wantErr bool
	}{
		{
			name:    "plain json",
			content: `{"title": "T", "body": "B", "summary": "S"}`,
			want:    types.Draft{Title: "T", Body: "B", Summary: "S"},
		},
		{
			name:    "fenced json",
			content: "```json\n{\"title\": \"T\", \"body\": \"B\", \"summary\": \"S\"}\n```",
			want:    types.Draft{Title: "T", Body: "B", Summary: "S"},
		},
		{
			name:    "missing title",
			content: `{"body": "B", "summary": "S"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			content: "Here is your article: ...",
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft, err := parseDraft(tc.content)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, draft)
		})
	}
}

func TestPromptsEmbedSeedContext(t *testing.T) {
	seed := types.ArticleSeed{
		Category:       "Local News",
		Author:         types.Author{Name: "June Harper", Persona: "Veteran reporter", WritingStyle: "Dry and factual"},
		Seriousness:    "Serious",
		TownName:       "Parp",
		TownPopulation: 4200,
		TownFeatures: types.TownFeatures{
			Businesses: []types.Business{{Name: "The Rusty Spoon", Type: "Restaurant/Café", Street: "Harbor Road", EstablishedYear: 1987}},
		},
		People: []types.Person{{
			FirstName: "Ada", LastName: "Quist", Age: 63, Occupation: "Librarian",
			Temperament: types.Temperament{Type: "Curious", Description: "Always asking questions"},
		}},
	}

	system := systemPrompt(seed)
	assert.Contains(t, system, "June Harper")
	assert.Contains(t, system, "Local News")
	assert.Contains(t, system, "Serious")
	assert.Contains(t, system, `"title"`)

	user := userPrompt(seed)
	assert.Contains(t, user, "Parp, population 4200")
	assert.Contains(t, user, "The Rusty Spoon")
	assert.Contains(t, user, "Ada Quist, 63, Librarian")
	assert.Contains(t, user, "Curious")
}

func TestUserPromptFallsBackToStatusForUnemployed(t *testing.T) {
	seed := types.ArticleSeed{
		Category: "Community",
		People: []types.Person{{
			FirstName: "Bo", LastName: "Vine", Age: 70,
			EmploymentStatus: types.Retired,
		}},
	}
	assert.Contains(t, userPrompt(seed), "Bo Vine, 70, Retired")
}

func TestNewOpenAISynthesizerValidation(t *testing.T) {
	_, err := NewOpenAISynthesizer(types.SynthesizerConfig{Model: "gpt-4o-mini"})
	assert.ErrorIs(t, err, types.ErrInvalidArgument)

	_, err = NewOpenAISynthesizer(types.SynthesizerConfig{APIKey: "sk-test"})
	assert.ErrorIs(t, err, types.ErrInvalidArgument)

	s, err := NewOpenAISynthesizer(types.SynthesizerConfig{APIKey: "sk-test", Model: "gpt-4o-mini"})
	require.NoError(t, err)
	assert.Equal(t, 3, s.maxRetries)
}

func TestPlaceholderSynthesizer(t *testing.T) {
	draft, err := PlaceholderSynthesizer{}.Synthesize(context.Background(), types.ArticleSeed{Category: "Sports"})
	require.NoError(t, err)
	assert.Equal(t, "Placeholder Title for Sports Article", draft.Title)
	assert.Equal(t, "This is a placeholder for the article body.", draft.Body)
	assert.Equal(t, "This is a placeholder summary.", draft.Summary)
}
