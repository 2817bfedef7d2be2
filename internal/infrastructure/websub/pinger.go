package websub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/underoot/maksugr.com/internal/ports"
)

// Pinger notifies a WebSub hub that the site's feeds were republished
// so subscribed readers re-fetch them promptly.
type Pinger struct {
	hubURL string
	client *http.Client
}

var _ ports.Pinger = (*Pinger)(nil)

// NewPinger registers the hub endpoint.
func NewPinger(hubURL string) *Pinger {
	return &Pinger{
		hubURL: hubURL,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Ping posts a form-encoded publish notification carrying every feed URL.
func (p *Pinger) Ping(ctx context.Context, feedURLs []string) error {
	if p.hubURL == "" || p.client == nil {
		return fmt.Errorf("websub pinger misconfigured")
	}
	if len(feedURLs) == 0 {
		return nil
	}

	form := url.Values{}
	form.Set("hub.mode", "publish")
	for _, feedURL := range feedURLs {
		form.Add("hub.url", feedURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.hubURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("hub error: %s", resp.Status)
	}

	return nil
}
