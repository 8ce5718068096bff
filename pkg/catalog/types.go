package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

// AcademicUnit is an organisational division (school, department) the
// respondent belongs to.
type AcademicUnit struct {
	ID     ID     `json:"id_unidad"`
	Nombre string `json:"nombre"`
}

// Researcher is a person the survey can be attributed to.
type Researcher struct {
	ID     ID     `json:"id_academico"`
	Nombre string `json:"nombre"`
}

// SurveyQuestion is one item of the ordered question list. The payload is
// kept as served; answers align with questions by position only.
type SurveyQuestion struct {
	raw json.RawMessage
}

// Envelope is the wrapper every reference endpoint responds with. Data is
// only meaningful when Success is true.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    []T    `json:"data"`
	Message string `json:"message,omitempty"`
}

var (
	questionTextKeys = []string{"pregunta", "texto", "text", "enunciado", "nombre", "descripcion"}
	questionIDKeys   = []string{"id_pregunta", "id"}
)

// NewSurveyQuestion wraps a raw JSON value as a question.
func NewSurveyQuestion(raw json.RawMessage) SurveyQuestion {
	return SurveyQuestion{raw: append(json.RawMessage(nil), raw...)}
}

// Raw returns a copy of the payload as served.
func (q SurveyQuestion) Raw() json.RawMessage {
	return append(json.RawMessage(nil), q.raw...)
}

// MarshalJSON implements json.Marshaler.
func (q SurveyQuestion) MarshalJSON() ([]byte, error) {
	if len(q.raw) == 0 {
		return []byte("null"), nil
	}
	return q.raw, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (q *SurveyQuestion) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if !json.Valid(trimmed) {
		return errors.New("catalog: invalid question payload")
	}
	q.raw = append(q.raw[:0], trimmed...)
	return nil
}

// Text returns the display text of the question. Plain string payloads are
// returned as is; objects are probed for the usual text keys.
func (q SurveyQuestion) Text() string {
	fields, s, ok := q.decode()
	if !ok {
		return ""
	}
	if fields == nil {
		return s
	}
	return pickString(fields, questionTextKeys)
}

// Key returns the question identifier if the payload carries one.
func (q SurveyQuestion) Key() string {
	fields, _, ok := q.decode()
	if !ok || fields == nil {
		return ""
	}
	return pickString(fields, questionIDKeys)
}

func (q SurveyQuestion) decode() (map[string]any, string, bool) {
	if len(q.raw) == 0 {
		return nil, "", false
	}
	switch q.raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(q.raw, &s); err != nil {
			return nil, "", false
		}
		return nil, s, true
	case '{':
		var fields map[string]any
		if err := json.Unmarshal(q.raw, &fields); err != nil {
			return nil, "", false
		}
		return fields, "", true
	default:
		return nil, "", false
	}
}

func pickString(fields map[string]any, keys []string) string {
	for _, key := range keys {
		value, ok := fields[key]
		if !ok || value == nil {
			continue
		}
		switch typed := value.(type) {
		case string:
			if strings.TrimSpace(typed) != "" {
				return typed
			}
		case float64, bool:
			return fmt.Sprint(typed)
		}
	}
	return ""
}
