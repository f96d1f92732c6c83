package api

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressroomhq/pressroom-cli/internal/models"
)

func TestJSONPayload_Encode(t *testing.T) {
	ct, body, err := JSON(models.Tag{Tag: "Devotional"}).Encode()
	require.NoError(t, err)
	assert.Equal(t, "application/json", ct)

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":0,"tag":"Devotional"}`, string(data))
}

func TestMultipartPayload_Encode(t *testing.T) {
	book := models.Book{
		Title:      "Riyadh as-Salihin",
		WriterID:   3,
		WriterName: "Imam an-Nawawi",
	}
	file := &Attachment{
		Field:       "coverImage",
		Name:        "cover.jpg",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg-bytes"),
	}

	ct, body, err := Multipart(book, file).Encode()
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(ct)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	reader := multipart.NewReader(bytes.NewReader(raw), params["boundary"])

	fields := map[string]string{}
	var fileName, fileField, fileContent string
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		if part.FileName() != "" {
			fileField = part.FormName()
			fileName = part.FileName()
			fileContent = string(data)
			continue
		}
		fields[part.FormName()] = string(data)
	}

	// Form fields use the same names as the JSON encoding.
	assert.Equal(t, "Riyadh as-Salihin", fields["title"])
	assert.Equal(t, "3", fields["writerId"])
	assert.Equal(t, "Imam an-Nawawi", fields["writerName"])

	assert.Equal(t, "coverImage", fileField)
	assert.Equal(t, "cover.jpg", fileName)
	assert.Equal(t, "jpeg-bytes", fileContent)
}

func TestMultipartPayload_NoFile(t *testing.T) {
	ct, body, err := Multipart(models.Section{Name: "Aqeedah"}, nil).Encode()
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(ct)
	require.NoError(t, err)

	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	reader := multipart.NewReader(bytes.NewReader(raw), params["boundary"])

	part, err := reader.NextPart()
	require.NoError(t, err)
	// Fields come out sorted; "id" precedes "name".
	assert.Equal(t, "id", part.FormName())
}

func TestFormFields_SkipsNullAndFormatsScalars(t *testing.T) {
	fields, err := formFields(map[string]any{
		"name":    "x",
		"count":   float64(5),
		"flag":    true,
		"nothing": nil,
	})
	require.NoError(t, err)

	assert.Equal(t, "x", fields["name"])
	assert.Equal(t, "5", fields["count"])
	assert.Equal(t, "true", fields["flag"])
	_, ok := fields["nothing"]
	assert.False(t, ok)
}
