package http

import (
	"time"

	"news-digest/internal/digest"
	"news-digest/internal/domain/entity"
)

type sentimentResponse struct {
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

// articleResponse is the full article view returned by the digest endpoints.
type articleResponse struct {
	Title       string            `json:"title"`
	Content     string            `json:"content"`
	Summary     string            `json:"summary"`
	Sentiment   sentimentResponse `json:"sentiment"`
	Source      string            `json:"source"`
	PublishedAt string            `json:"publishedAt"`
	Language    string            `json:"language"`
}

// compactArticleResponse is the summary-only view returned by the chat
// command endpoints.
type compactArticleResponse struct {
	Title       string            `json:"title"`
	Summary     string            `json:"summary"`
	Sentiment   sentimentResponse `json:"sentiment"`
	Source      string            `json:"source"`
	PublishedAt string            `json:"publishedAt"`
	Language    string            `json:"language"`
}

// digestResponse pairs structured article data with the chat-ready digest.
type digestResponse struct {
	Data                []articleResponse `json:"data"`
	FormattedResponse   string            `json:"formatted_response"`
	TotalArticles       int               `json:"total_articles"`
	Timestamp           string            `json:"timestamp"`
	FollowUpSuggestions string            `json:"follow_up_suggestions"`
	Topic               string            `json:"topic,omitempty"`
	FollowUpQuery       bool              `json:"follow_up_query,omitempty"`
}

func toSentimentResponse(s entity.Sentiment) sentimentResponse {
	return sentimentResponse{Label: string(s.Label), Emoji: s.Emoji}
}

func toArticleResponse(a entity.EnrichedArticle) articleResponse {
	return articleResponse{
		Title:       a.Title,
		Content:     a.Content,
		Summary:     a.Summary,
		Sentiment:   toSentimentResponse(a.Sentiment),
		Source:      a.Source,
		PublishedAt: a.PublishedAt,
		Language:    a.Language,
	}
}

func toCompactArticleResponse(a entity.EnrichedArticle) compactArticleResponse {
	return compactArticleResponse{
		Title:       a.Title,
		Summary:     a.Summary,
		Sentiment:   toSentimentResponse(a.Sentiment),
		Source:      a.Source,
		PublishedAt: a.PublishedAt,
		Language:    a.Language,
	}
}

func toDigestResponse(d digest.Digest) digestResponse {
	data := make([]articleResponse, len(d.Articles))
	for i, a := range d.Articles {
		data[i] = toArticleResponse(a)
	}
	return digestResponse{
		Data:                data,
		FormattedResponse:   d.FormattedResponse,
		TotalArticles:       d.TotalArticles,
		Timestamp:           d.Timestamp.Format(time.RFC3339),
		FollowUpSuggestions: d.FollowUpSuggestions,
	}
}
