package news

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnhanceKeyword(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		want    string
	}{
		{
			name:    "bollywood expands to regional terms",
			keyword: "bollywood",
			want:    "bollywood hindi cinema mumbai films",
		},
		{
			name:    "match is case insensitive",
			keyword: "Bollywood News",
			want:    "bollywood hindi cinema mumbai films",
		},
		{
			name:    "indian movies wins over movies",
			keyword: "indian movies",
			want:    "indian movies bollywood tollywood kollywood",
		},
		{
			name:    "tollywood expands",
			keyword: "tollywood",
			want:    "tollywood telugu cinema hyderabad films",
		},
		{
			name:    "movies keeps the original keyword",
			keyword: "horror movies",
			want:    "horror movies bollywood hindi telugu tamil",
		},
		{
			name:    "cinema keeps the original keyword",
			keyword: "world cinema",
			want:    "world cinema indian cinema bollywood",
		},
		{
			name:    "entertainment gets regional context",
			keyword: "entertainment weekly",
			want:    "entertainment weekly india bollywood",
		},
		{
			name:    "actress gets regional context",
			keyword: "actress interview",
			want:    "actress interview india bollywood",
		},
		{
			name:    "unrelated keyword passes through",
			keyword: "quantum computing",
			want:    "quantum computing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EnhanceKeyword(tt.keyword))
		})
	}
}
