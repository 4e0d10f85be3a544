package relay

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/logger"

	"github.com/stevenguyen-wq/babyboss.tarot/internal/models"
)

// timestampFormat mirrors the collector's expected vi-VN locale string.
const timestampFormat = "15:04:05 2/1/2006"

// Relay posts completed draws to the external sheet collector. Delivery
// is best-effort: exactly one attempt per outcome, no retry, no queue.
// The collector's response is never inspected, so a failure is invisible
// to the interactive flow.
type Relay struct {
	endpoint string
	client   *http.Client
}

// New builds a relay for the configured endpoint URL. An empty endpoint
// disables transmission; outcomes are then logged only.
func New(endpoint string) *Relay {
	return &Relay{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Send serializes the outcome and fires one unacknowledged POST in the
// background. It returns immediately; the caller never learns whether
// delivery succeeded.
func (r *Relay) Send(out models.SessionOutcome) {
	form := url.Values{}
	form.Set("fullName", out.Identity.FullName)
	form.Set("phoneNumber", out.Identity.PhoneNumber)
	form.Set("dob", out.Identity.DOB)
	form.Set("cardName", out.Entry.Name)
	form.Set("cardTitle", out.Entry.Title)
	form.Set("latitude", out.Identity.Latitude)
	form.Set("longitude", out.Identity.Longitude)
	form.Set("timestamp", out.DrawnAt.Format(timestampFormat))

	if r.endpoint == "" {
		logger.Infof("relay: no endpoint configured; outcome logged only: %s", form.Encode())
		return
	}

	go r.post(form)
}

func (r *Relay) post(form url.Values) {
	resp, err := r.client.PostForm(r.endpoint, form)
	if err != nil {
		logger.Errorf("relay: post failed: %v", err)
		return
	}
	defer resp.Body.Close()
	// Drain and discard; a non-2xx status is as final as a success.
	io.Copy(io.Discard, resp.Body)
}
