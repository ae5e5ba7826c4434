package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tigrisline/tracking-gateway/internal/core/ports"
)

type stubEnqueuer struct {
	inputs []ports.ContactInput
	full   bool
}

func (q *stubEnqueuer) Enqueue(in ports.ContactInput) bool {
	if q.full {
		return false
	}
	q.inputs = append(q.inputs, in)
	return true
}

func postContact(t *testing.T, h *ContactHandler, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, h.Submit(e.NewContext(req, rec))
}

const validContact = `{"name":"Layla Hassan","email":"layla@example.com","message":"Where is my container MSCU1234567?"}`

func TestContactHandler_Accepted(t *testing.T) {
	q := &stubEnqueuer{}
	h := NewContactHandler(q, zerolog.Nop())

	rec, err := postContact(t, h, validContact)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if len(q.inputs) != 1 {
		t.Fatalf("expected 1 enqueued submission, got %d", len(q.inputs))
	}
	if q.inputs[0].Email != "layla@example.com" {
		t.Errorf("wrong submission enqueued: %+v", q.inputs[0])
	}
	if q.inputs[0].ReceivedAt.IsZero() {
		t.Error("ReceivedAt must be stamped on accept")
	}

	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["status"] != "accepted" {
		t.Errorf("unexpected ack body: %v", resp)
	}
}

func TestContactHandler_ValidationFailures(t *testing.T) {
	cases := map[string]string{
		"missing name":    `{"email":"a@example.com","message":"long enough message"}`,
		"bad email":       `{"name":"Layla","email":"not-an-email","message":"long enough message"}`,
		"short message":   `{"name":"Layla","email":"a@example.com","message":"hi"}`,
		"missing message": `{"name":"Layla","email":"a@example.com"}`,
	}
	h := NewContactHandler(&stubEnqueuer{}, zerolog.Nop())

	for name, body := range cases {
		_, err := postContact(t, h, body)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %v", name, err)
		}
	}
}

func TestContactHandler_QueueFullIs503(t *testing.T) {
	h := NewContactHandler(&stubEnqueuer{full: true}, zerolog.Nop())

	_, err := postContact(t, h, validContact)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when the queue is full, got %v", err)
	}
}
