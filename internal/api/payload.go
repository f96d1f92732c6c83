package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sort"
	"strconv"
)

// Payload is a request body ready for encoding. Text-only submissions use
// JSON; anything carrying a file goes out as multipart/form-data with the
// backend's exact field names.
type Payload interface {
	// Encode returns the Content-Type and a reader over the encoded body.
	Encode() (contentType string, body io.Reader, err error)
}

type jsonPayload struct {
	v any
}

// JSON wraps v for submission as an application/json body.
func JSON(v any) Payload { return jsonPayload{v: v} }

func (p jsonPayload) Encode() (string, io.Reader, error) {
	b, err := json.Marshal(p.v)
	if err != nil {
		return "", nil, fmt.Errorf("encode payload: %w", err)
	}
	return "application/json", bytes.NewReader(b), nil
}

// Attachment is a user-selected file staged for upload. Field must match the
// backend's expected part name exactly (e.g. "image", "coverImage",
// "attachment").
type Attachment struct {
	Field       string
	Name        string
	ContentType string
	Data        []byte
}

type multipartPayload struct {
	v    any
	file *Attachment
}

// Multipart wraps v for submission as multipart/form-data. Every exported
// field of v becomes a form field; file may be nil for schemas that always
// use multipart even without a new attachment.
func Multipart(v any, file *Attachment) Payload {
	return multipartPayload{v: v, file: file}
}

func (p multipartPayload) Encode() (string, io.Reader, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields, err := formFields(p.v)
	if err != nil {
		return "", nil, err
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := w.WriteField(name, fields[name]); err != nil {
			return "", nil, fmt.Errorf("write field %s: %w", name, err)
		}
	}

	if p.file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, p.file.Field, p.file.Name))
		if p.file.ContentType != "" {
			h.Set("Content-Type", p.file.ContentType)
		}
		part, err := w.CreatePart(h)
		if err != nil {
			return "", nil, fmt.Errorf("create file part: %w", err)
		}
		if _, err := part.Write(p.file.Data); err != nil {
			return "", nil, fmt.Errorf("write file part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return "", nil, fmt.Errorf("close multipart body: %w", err)
	}
	return w.FormDataContentType(), &buf, nil
}

// formFields flattens an entity into string form values via its JSON shape,
// so multipart submissions carry exactly the same field names as JSON ones.
func formFields(v any) (map[string]string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}

	out := make(map[string]string, len(m))
	for k, val := range m {
		switch x := val.(type) {
		case nil:
			continue
		case string:
			out[k] = x
		case bool:
			out[k] = strconv.FormatBool(x)
		case float64:
			out[k] = strconv.FormatFloat(x, 'f', -1, 64)
		default:
			b, err := json.Marshal(x)
			if err != nil {
				return nil, fmt.Errorf("encode field %s: %w", k, err)
			}
			out[k] = string(b)
		}
	}
	return out, nil
}
