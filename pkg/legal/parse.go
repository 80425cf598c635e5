package legal

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// ErrInvalidResponse is returned when the model reply does not match the verdict schema.
var ErrInvalidResponse = errors.New("invalid model response")

// ParseVerdict validates a model reply and decodes it. Markdown code fences
// around the JSON are tolerated.
func ParseVerdict(content string) (*Verdict, error) {
	raw := stripCodeFence(content)

	if !gjson.Valid(raw) {
		return nil, errors.Wrap(ErrInvalidResponse, "reply is not valid JSON")
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return nil, errors.Wrap(ErrInvalidResponse, "reply is not a JSON object")
	}
	if !doc.Get("risk_assessment").IsObject() {
		return nil, errors.Wrap(ErrInvalidResponse, "risk_assessment is missing")
	}

	score := doc.Get("risk_assessment.composite_score")
	var value float64
	switch score.Type {
	case gjson.Number:
		value = score.Num
	case gjson.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(score.Str), 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidResponse, "composite_score %q is not numeric", score.Str)
		}
		value = f
	default:
		return nil, errors.Wrap(ErrInvalidResponse, "composite_score is missing")
	}
	if math.IsNaN(value) || value < 0 || value > 100 {
		return nil, errors.Wrapf(ErrInvalidResponse, "composite_score %v outside 0-100", value)
	}

	var verdict Verdict
	if err := json.Unmarshal([]byte(raw), &verdict); err != nil {
		return nil, errors.Wrapf(ErrInvalidResponse, "decode: %v", err)
	}
	// A model echoing the fallback flags must not be mistaken for one.
	verdict.Mock = false
	verdict.Error = ""

	return &verdict, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
