package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/passgen"
	"github.com/passforge/passforge-go/internal/service"
)

func newTestGeneratorHandler() *GeneratorHandler {
	return NewGeneratorHandler(service.NewGeneratorService(nil))
}

func TestHandleGenerate(t *testing.T) {
	h := newTestGeneratorHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate",
		strings.NewReader(`{"length": 12, "symbols": false}`))
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.GenerateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Length != 12 || len(resp.Password) != 12 {
		t.Errorf("expected 12-character password, got %q (length %d)", resp.Password, resp.Length)
	}
	if resp.Strength.Label == "" {
		t.Error("expected strength label in response")
	}
}

func TestHandleGenerateEmptyBody(t *testing.T) {
	h := newTestGeneratorHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", nil)
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.GenerateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected default length 16, got %d", resp.Length)
	}
}

func TestHandleGenerateValidationErrors(t *testing.T) {
	h := newTestGeneratorHandler()

	tests := []struct {
		name string
		body string
	}{
		{
			name: "negative length",
			body: `{"length": -3}`,
		},
		{
			name: "length too long",
			body: `{"length": 500}`,
		},
		{
			name: "no classes enabled",
			body: `{"length": 16, "lowercase": false, "uppercase": false, "numbers": false, "symbols": false}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.HandleGenerate(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHandleGenerateMalformedBody(t *testing.T) {
	h := newTestGeneratorHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	h.HandleGenerate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleStrength(t *testing.T) {
	h := newTestGeneratorHandler()

	tests := []struct {
		name      string
		password  string
		wantScore int
		wantLabel string
	}{
		{
			name:      "empty password",
			password:  "",
			wantScore: 0,
			wantLabel: "Too short",
		},
		{
			name:      "lowercase only",
			password:  "aaaaaaaaaaaa",
			wantScore: 2,
			wantLabel: "Okay",
		},
		{
			name:      "all classes",
			password:  "aA1!aA1!aA1!",
			wantScore: 3,
			wantLabel: "Strong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(model.StrengthRequest{Password: tt.password})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/strength", strings.NewReader(string(body)))
			rec := httptest.NewRecorder()

			h.HandleStrength(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}

			var got passgen.Strength
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if got.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", got.Label, tt.wantLabel)
			}
		})
	}
}

func TestHandleStrengthMalformedBody(t *testing.T) {
	h := newTestGeneratorHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/strength", strings.NewReader(`{`))
	rec := httptest.NewRecorder()

	h.HandleStrength(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
