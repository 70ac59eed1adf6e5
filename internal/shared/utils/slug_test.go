package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "typical title with currency symbol",
			title: "Tech Investment Reaches £20 billion",
			want:  "tech-investment-reaches-20-billion",
		},
		{
			name:  "empty title",
			title: "",
			want:  "",
		},
		{
			name:  "url-shaped title loses protocol and tld",
			title: "https://www.Example.com",
			want:  "example",
		},
		{
			name:  "www prefix without protocol",
			title: "www.consulting.io",
			want:  "consulting",
		},
		{
			name:  "punctuation collapses to single hyphens",
			title: "Insights 2024: AI & Strategy",
			want:  "insights-2024-ai-strategy",
		},
		{
			name:  "trailing dot-word is trimmed like a tld",
			title: "Thoughts on company.ai",
			want:  "thoughts-on-company",
		},
		{
			name:  "dot followed by digits survives",
			title: "Migrating to Go 1.22",
			want:  "migrating-to-go-1-22",
		},
		{
			name:  "underscores are kept",
			title: "snake_case title",
			want:  "snake_case-title",
		},
		{
			name:  "hyphen runs collapse and edges are trimmed",
			title: "  Hello --- World!!!  ",
			want:  "hello-world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.title))
		})
	}
}

func TestGenerateSlugDeterministic(t *testing.T) {
	title := "The Same Title, Every Time"
	first := GenerateSlug(title)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, GenerateSlug(title))
	}
}

func TestGenerateSlugDuplicateTitlesCollide(t *testing.T) {
	// Uniqueness is intentionally not enforced.
	a := GenerateSlug("Annual Report 2025")
	b := GenerateSlug("Annual Report 2025")
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}
