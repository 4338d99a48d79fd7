package base64

import (
	"encoding/base64"
	"strings"

	"rentacar/shared/failure"
)

func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}

// DecodeDataURL splits a data URL into its decoded payload and content type.
// The backend's image endpoints accept raw uploads, so data-URL submissions
// are unwrapped here before being forwarded.
func DecodeDataURL(dataURL string) (content []byte, contentType string, err error) {
	contentType = GetContentType(dataURL)
	if contentType == "" {
		return nil, "", failure.BadRequestFromString("invalid data URL") //nolint:wrapcheck
	}

	marker := ";base64,"
	idx := strings.Index(dataURL, marker)

	content, err = base64.StdEncoding.DecodeString(dataURL[idx+len(marker):])
	if err != nil {
		return nil, "", failure.BadRequestFromString("invalid base64 payload") //nolint:wrapcheck
	}

	return content, contentType, nil
}
