// Package analysis turns the chat provider's scoring reply into a complete
// ScoreReport, whatever the reply looks like.
//
// Two fallbacks exist and they are intentionally different. A reply that is
// not JSON at all yields zero scores and no feedback, which marks the
// analysis as failed. A reply that parses but lacks a score yields 70 for
// that score, and a missing or empty feedback list yields DefaultFeedback.
package analysis

import (
	"math"
	"strings"

	"github.com/fadilmartias/ai-interviewer/internal/model"
	"github.com/tidwall/gjson"
)

// DefaultScore fills a score the model left out or returned as a non-number.
const DefaultScore = 70

// DefaultFeedback replaces a missing or empty feedback list.
func DefaultFeedback() []model.FeedbackItem {
	return []model.FeedbackItem{
		{Topic: "General", Feedback: "Interview completed.", BetterAnswer: "N/A"},
		{Topic: "Communication", Feedback: "Clear speech.", BetterAnswer: "N/A"},
		{Topic: "Technical", Feedback: "Good effort.", BetterAnswer: "N/A"},
	}
}

// ParseFailure is the report returned when the reply cannot be parsed.
func ParseFailure() model.ScoreReport {
	return model.ScoreReport{Feedback: []model.FeedbackItem{}}
}

// StripFences removes ```json and ``` markers and surrounding whitespace.
// An empty reply is read as an empty object.
func StripFences(raw string) string {
	if raw == "" {
		return "{}"
	}
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	return strings.TrimSpace(clean)
}

// Valid reports whether the reply parses as JSON once fences are stripped.
func Valid(raw string) bool {
	return gjson.Valid(StripFences(raw))
}

func Normalize(raw string) model.ScoreReport {
	clean := StripFences(raw)
	if !gjson.Valid(clean) {
		return ParseFailure()
	}

	doc := gjson.Parse(clean)
	report := model.ScoreReport{
		TechnicalScore:     score(field(doc, "technical_score")),
		CommunicationScore: score(field(doc, "communication_score")),
		ConfidenceScore:    score(field(doc, "confidence_score")),
		Feedback:           feedback(field(doc, "feedback")),
	}
	return report
}

// field returns the last top-level value stored under key, the way
// JSON.parse and encoding/json resolve duplicate keys. gjson's Get keeps the
// first one.
func field(doc gjson.Result, key string) gjson.Result {
	var out gjson.Result
	doc.ForEach(func(k, v gjson.Result) bool {
		if k.Type == gjson.String && k.Str == key {
			out = v
		}
		return true
	})
	return out
}

// score rounds to the nearest integer. Values beyond the int32 range are
// pinned to it so the conversion cannot overflow.
func score(r gjson.Result) int {
	if r.Type != gjson.Number {
		return DefaultScore
	}
	n := math.Round(r.Num)
	n = math.Min(math.Max(n, math.MinInt32), math.MaxInt32)
	return int(n)
}

func feedback(r gjson.Result) []model.FeedbackItem {
	if !r.IsArray() {
		return DefaultFeedback()
	}
	items := r.Array()
	if len(items) == 0 {
		return DefaultFeedback()
	}

	out := make([]model.FeedbackItem, 0, len(items))
	for _, item := range items {
		out = append(out, model.FeedbackItem{
			Topic:        item.Get("topic").String(),
			Feedback:     item.Get("feedback").String(),
			BetterAnswer: item.Get("better_answer").String(),
		})
	}
	return out
}
