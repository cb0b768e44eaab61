// Package avatar generates cosmetic profile and dossier art with a generative image model.
package avatar

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
)

// ErrNoImage means the model answered without any inline image.
var ErrNoImage = errors.New("no image in response")

// Request is a text prompt plus an optional prior image to edit in place.
type Request struct {
	Prompt string
	Prior  *Image
}

// Image is inline image bytes.
type Image struct {
	Data     []byte
	MIMEType string
}

// DataURI encodes the image for direct use as an <img> source.
func (i Image) DataURI() string {
	mime := i.MIMEType
	if mime == "" {
		mime = "image/png"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(i.Data))
}

// Generator produces an image for a request.
type Generator interface {
	Generate(ctx context.Context, req Request) (Image, error)
}
