package relay

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/logger"

	"github.com/stevenguyen-wq/babyboss.tarot/internal/models"
)

func testOutcome() models.SessionOutcome {
	return models.SessionOutcome{
		Identity: models.Identity{
			FullName:    "A",
			PhoneNumber: "0912345678",
			DOB:         "2000-01-01",
		},
		Entry: models.CatalogEntry{
			ID:    "R1",
			Name:  "The Sun",
			Title: "Vị Hạnh Phúc",
		},
		DrawnAt: time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
	}
}

func TestSendPostsFormFields(t *testing.T) {
	received := make(chan url.Values, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm failed: %v", err)
		}
		received <- r.PostForm
	}))
	defer srv.Close()

	New(srv.URL).Send(testOutcome())

	select {
	case form := <-received:
		want := map[string]string{
			"fullName":    "A",
			"phoneNumber": "0912345678",
			"dob":         "2000-01-01",
			"cardName":    "The Sun",
			"cardTitle":   "Vị Hạnh Phúc",
			"latitude":    "",
			"longitude":   "",
			"timestamp":   "15:04:05 2/1/2026",
		}
		for k, v := range want {
			if got := form.Get(k); got != v {
				t.Errorf("Field %s = %q, want %q", k, got, v)
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected the relay to post within 2s")
	}
}

func TestSendWithoutEndpointLogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.Init("relay-test", false, false, &buf)
	defer lg.Close()

	// Must return without a network call; the payload goes to the
	// diagnostic log instead.
	New("").Send(testOutcome())

	logged := buf.String()
	for _, want := range []string{"phoneNumber=0912345678", "cardName=The+Sun", "dob=2000-01-01"} {
		if !strings.Contains(logged, want) {
			t.Errorf("Expected the log to carry %q, got %q", want, logged)
		}
	}
}

func TestSendSwallowsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	done := make(chan struct{})
	go func() {
		New(srv.URL).Send(testOutcome())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Expected Send to return immediately despite a dead endpoint")
	}
}

func TestSendSwallowsErrorStatus(t *testing.T) {
	received := make(chan struct{}, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		received <- struct{}{}
	}))
	defer srv.Close()

	New(srv.URL).Send(testOutcome())

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected the relay to attempt delivery")
	}
}
