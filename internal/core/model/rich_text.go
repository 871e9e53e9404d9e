package model

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

type AnnotationCode string

const (
	AnnotationBold          AnnotationCode = "b"
	AnnotationItalic        AnnotationCode = "i"
	AnnotationUnderline     AnnotationCode = "_"
	AnnotationStrike        AnnotationCode = "s"
	AnnotationLink          AnnotationCode = "a"
	AnnotationColor         AnnotationCode = "h"
	AnnotationInlineCode    AnnotationCode = "c"
	AnnotationEquation      AnnotationCode = "e"
	AnnotationPageReference AnnotationCode = "p"
)

// Annotation is one formatting instruction attached to a text run, encoded
// remotely as ["code"] or ["code", value].
type Annotation struct {
	Code AnnotationCode
	// Value holds the annotation argument (href, color, equation source,
	// page id). Non string arguments are kept as raw JSON.
	Value string
}

func (a *Annotation) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "could not decode annotation")
	}

	if len(raw) == 0 {
		return errors.New("empty annotation")
	}

	var code string
	if err := json.Unmarshal(raw[0], &code); err != nil {
		return errors.Wrap(err, "could not decode annotation code")
	}

	a.Code = AnnotationCode(code)
	a.Value = ""

	if len(raw) > 1 {
		var value string
		if err := json.Unmarshal(raw[1], &value); err != nil {
			value = string(raw[1])
		}
		a.Value = value
	}

	return nil
}

func (a Annotation) MarshalJSON() ([]byte, error) {
	if a.Value == "" {
		return json.Marshal([]string{string(a.Code)})
	}

	return json.Marshal([]string{string(a.Code), a.Value})
}

// TextRun is a span of text sharing one ordered list of annotations,
// encoded remotely as ["text", [annotations...]].
type TextRun struct {
	Text        string
	Annotations []Annotation
}

// UnmarshalJSON is lenient: a bare string is read as an unannotated run
// and malformed annotations are dropped instead of failing the whole run.
func (r *TextRun) UnmarshalJSON(data []byte) error {
	r.Text = ""
	r.Annotations = nil

	if err := json.Unmarshal(data, &r.Text); err == nil {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "could not decode text run")
	}

	if len(raw) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw[0], &r.Text); err != nil {
		return errors.Wrap(err, "could not decode text run content")
	}

	if len(raw) < 2 {
		return nil
	}

	var annotations []json.RawMessage
	if err := json.Unmarshal(raw[1], &annotations); err != nil {
		return nil
	}

	for _, rawAnnotation := range annotations {
		var annotation Annotation
		if err := json.Unmarshal(rawAnnotation, &annotation); err != nil {
			continue
		}

		r.Annotations = append(r.Annotations, annotation)
	}

	return nil
}

func (r TextRun) MarshalJSON() ([]byte, error) {
	if len(r.Annotations) == 0 {
		return json.Marshal([]any{r.Text})
	}

	return json.Marshal([]any{r.Text, r.Annotations})
}

type RichText []TextRun

// PlainText concatenates the runs, dropping every annotation.
func (t RichText) PlainText() string {
	var sb strings.Builder
	for _, r := range t {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
