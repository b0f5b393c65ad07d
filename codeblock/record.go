package codeblock

import (
	"bytes"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/iw2rmb/codeplus/highlight"
)

// Data is the persisted record of a block.
type Data struct {
	Code       string `json:"code"`
	Language   string `json:"language"`
	LineNumber int    `json:"lineNumber"`
}

// ParseData reads a record. Missing fields take their defaults: empty code,
// plain text, height 0.
func ParseData(raw []byte) (Data, error) {
	if len(raw) == 0 {
		return Data{Language: highlight.PlainText}, nil
	}
	if !gjson.ValidBytes(raw) {
		return Data{}, fmt.Errorf("%w: malformed JSON", ErrInvalidRecord)
	}
	doc := gjson.ParseBytes(raw)
	if !doc.IsObject() {
		return Data{}, fmt.Errorf("%w: want an object, got %s", ErrInvalidRecord, doc.Type)
	}

	d := Data{
		Code:       doc.Get("code").String(),
		Language:   doc.Get("language").String(),
		LineNumber: int(doc.Get("lineNumber").Int()),
	}
	if d.Language == "" {
		d.Language = highlight.PlainText
	}
	if d.LineNumber < 0 {
		d.LineNumber = 0
	}
	return d, nil
}

func (d Data) MarshalJSON() ([]byte, error) {
	return d.MergeInto(nil)
}

// UnmarshalJSON treats a JSON null as a no-op, like encoding/json does.
func (d *Data) UnmarshalJSON(raw []byte) error {
	if string(bytes.TrimSpace(raw)) == "null" {
		return nil
	}
	parsed, err := ParseData(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MergeInto writes d over the record in existing, keeping any other fields.
// A nil or empty existing record starts from an empty object.
func (d Data) MergeInto(existing []byte) ([]byte, error) {
	out := existing
	if len(out) == 0 {
		out = []byte("{}")
	} else if !gjson.ValidBytes(out) || !gjson.ParseBytes(out).IsObject() {
		return nil, fmt.Errorf("%w: cannot merge into non-object", ErrInvalidRecord)
	}

	var err error
	fields := []struct {
		path  string
		value any
	}{
		{"code", d.Code},
		{"language", d.Language},
		{"lineNumber", d.LineNumber},
	}
	for _, f := range fields {
		out, err = sjson.SetBytes(out, f.path, f.value)
		if err != nil {
			return nil, fmt.Errorf("set %s: %w", f.path, err)
		}
	}
	return out, nil
}
