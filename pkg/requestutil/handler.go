package requestutil

import (
	"fmt"
	"io"
	"net/http"

	"github.com/carlmjohnson/requests"
	"github.com/go-logr/logr"
)

// Body holds a fully read response.
type Body struct {
	ContentType string
	Data        []byte
}

// ToBody reads the whole response into out without decoding it.
func ToBody(out *Body) requests.ResponseHandler {
	return func(response *http.Response) error {
		log := logr.FromContextOrDiscard(response.Request.Context())

		data, err := io.ReadAll(response.Body)
		if err != nil {
			return fmt.Errorf("reading response: %w", err)
		}
		out.ContentType = response.Header.Get("Content-Type")
		out.Data = data
		log.V(2).Info("read response body", "code", response.StatusCode, "size", len(data), "contentType", out.ContentType)
		return nil
	}
}
