package adapters

import (
	"io"
	"net/http"
	"time"

	"github.com/Karthikeya51/DreamSync-Backend/application/ports/outbound"
)

// FetchResult preserves the upstream status and body so callers can mirror
// both back to the client. A non-2xx status is not an error here; only a
// transport-level failure is.
type FetchResult struct {
	StatusCode int
	Body       []byte
}

type ContentFetcher interface {
	Fetch(req *http.Request) (*FetchResult, error)
}

type contentFetcher struct {
	client *http.Client
	logger outbound.LoggerPort
}

func NewContentFetcher(timeout time.Duration, logger outbound.LoggerPort) ContentFetcher {
	return &contentFetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (c *contentFetcher) Fetch(req *http.Request) (*FetchResult, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to send the HTTP request", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.ErrorWithFields(err, "Failed to close the response body", map[string]interface{}{
				"method": req.Method,
				"URL":    req.URL.String(),
			})
		}
	}(res.Body)

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read the response body", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
		})
		return nil, err
	}

	if res.StatusCode != http.StatusOK {
		c.logger.InfoWithFields("HTTP request returned non-OK status code", map[string]interface{}{
			"method": req.Method,
			"URL":    req.URL.String(),
			"status": res.StatusCode,
		})
	}

	return &FetchResult{
		StatusCode: res.StatusCode,
		Body:       payload,
	}, nil
}
