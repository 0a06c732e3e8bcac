package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Result
	}{
		{
			name: "topic language and country",
			text: "give me latest technology news in telugu from india",
			want: Result{
				Intent: IntentGetNews,
				Params: Params{Keyword: "technology", Language: "te", Country: "in"},
			},
		},
		{
			name: "cricket maps to sports",
			text: "show cricket headlines",
			want: Result{
				Intent: IntentGetNews,
				Params: Params{Keyword: "sports"},
			},
		},
		{
			name: "first topic wins on overlap",
			text: "get me ai and stock market news",
			want: Result{
				Intent: IntentGetNews,
				Params: Params{Keyword: "technology"},
			},
		},
		{
			name: "trigger without topic leaves keyword empty",
			text: "give me the latest updates",
			want: Result{
				Intent: IntentGetNews,
				Params: Params{},
			},
		},
		{
			name: "hindi movies maps to bollywood and hindi",
			text: "tell me about hindi movies",
			want: Result{
				Intent: IntentGetNews,
				Params: Params{Keyword: "bollywood", Language: "hi"},
			},
		},
		{
			name: "no trigger word is unknown",
			text: "what is the weather like",
			want: Result{Intent: IntentUnknown},
		},
		{
			name: "empty text is unknown",
			text: "",
			want: Result{Intent: IntentUnknown},
		},
		{
			name: "case insensitive",
			text: "SHOW GERMAN POLITICS NEWS",
			want: Result{
				Intent: IntentGetNews,
				Params: Params{Keyword: "politics", Language: "de", Country: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text))
		})
	}
}
