package ai

import (
	"encoding/base64"
	"fmt"
	"strings"
)

type Image struct {
	MIMEType string
	Data     []byte
}

// ParseDataURL decodes a browser "data:image/...;base64,..." string.
// PNG is detected from the prefix; everything else is sent as JPEG.
func ParseDataURL(s string) (Image, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Image{}, fmt.Errorf("empty image")
	}
	mime := "image/jpeg"
	if strings.HasPrefix(s, "data:image/png") {
		mime = "image/png"
	}
	payload := s
	if i := strings.Index(s, ","); i >= 0 {
		payload = s[i+1:]
	} else if strings.HasPrefix(s, "data:") {
		return Image{}, fmt.Errorf("data url without payload")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		if data, err = base64.RawStdEncoding.DecodeString(payload); err != nil {
			return Image{}, fmt.Errorf("decode image: %w", err)
		}
	}
	if len(data) == 0 {
		return Image{}, fmt.Errorf("empty image")
	}
	return Image{MIMEType: mime, Data: data}, nil
}
