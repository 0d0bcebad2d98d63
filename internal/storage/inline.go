package storage

import (
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"strings"
)

const defaultImageContentType = "image/jpeg"

// ErrInvalidImagePayload is returned when an inline image payload cannot
// be decoded.
var ErrInvalidImagePayload = errors.New("invalid image payload")

// inlineImage is a decoded inline-encoded image upload.
type inlineImage struct {
	ContentType string
	Data        []byte
}

// decodeInlineImage parses an uploaded image payload. Clients send either a
// data URI ("data:image/png;base64,...") or a bare base64 string, in which
// case the content type defaults to JPEG.
func decodeInlineImage(payload string) (inlineImage, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return inlineImage{}, ErrInvalidImagePayload
	}

	contentType := defaultImageContentType
	encoded := payload

	if strings.HasPrefix(payload, "data:") {
		meta, rest, ok := strings.Cut(payload[len("data:"):], ",")
		if !ok {
			return inlineImage{}, ErrInvalidImagePayload
		}
		if !strings.HasSuffix(meta, ";base64") {
			return inlineImage{}, ErrInvalidImagePayload
		}
		if mediaType := strings.TrimSuffix(meta, ";base64"); mediaType != "" {
			contentType = mediaType
		}
		encoded = rest
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return inlineImage{}, ErrInvalidImagePayload
	}
	if len(data) == 0 {
		return inlineImage{}, ErrInvalidImagePayload
	}

	return inlineImage{ContentType: contentType, Data: data}, nil
}

func (i inlineImage) Reader() io.Reader {
	return bytes.NewReader(i.Data)
}

func (i inlineImage) Size() int64 {
	return int64(len(i.Data))
}

// Extension maps the image content type to an object-key file extension.
func (i inlineImage) Extension() string {
	switch i.ContentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
