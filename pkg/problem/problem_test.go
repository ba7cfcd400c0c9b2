package problem

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewAndWithErrors(t *testing.T) {
	fieldErrors := []FieldError{{Field: "time_label", Message: "must be HH:MM or HH:MM AM|PM"}}
	p := ValidationError("invalid body", fieldErrors).WithInstance("/v1/appointments")

	if got, want := p.Type, BaseURI+"/validation-error"; got != want {
		t.Fatalf("unexpected type: got %q want %q", got, want)
	}
	if p.Status != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status: %d", p.Status)
	}
	if len(p.Errors) != 1 || p.Errors[0] != fieldErrors[0] {
		t.Fatalf("errors not set: %+v", p.Errors)
	}
	if p.Instance != "/v1/appointments" {
		t.Fatalf("instance not set: %q", p.Instance)
	}
}

func TestProblemWrite(t *testing.T) {
	tests := []struct {
		name       string
		problem    *Problem
		wantStatus int
		wantTitle  string
	}{
		{"bad request", BadRequest("invalid"), http.StatusBadRequest, "Bad Request"},
		{"rate limited", TooManyRequests("slow down"), http.StatusTooManyRequests, "Too Many Requests"},
		{"unavailable", ServiceUnavailable("summaries disabled"), http.StatusServiceUnavailable, "Service Unavailable"},
		{"bad gateway", BadGateway("model failed"), http.StatusBadGateway, "Bad Gateway"},
		{"invalid role", UnprocessableEntity("invalid-role", "Invalid Role", "not a patient"), http.StatusUnprocessableEntity, "Invalid Role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := httptest.NewRecorder()
			tt.problem.Write(resp)

			if resp.Code != tt.wantStatus {
				t.Fatalf("unexpected status: %d", resp.Code)
			}
			if got := resp.Header().Get("Content-Type"); got != ContentType {
				t.Fatalf("missing content type: %s", got)
			}

			var decoded Problem
			if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if decoded.Title != tt.wantTitle || decoded.Detail != tt.problem.Detail {
				t.Fatalf("unexpected payload: %+v", decoded)
			}
		})
	}
}
