package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"speechdown-backend/internal/services"
)

type fakeSynthesizer struct {
	text  string
	calls int
	err   error
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	f.calls++
	f.text = text
	if f.err != nil {
		return nil, f.err
	}
	return []byte("ID3mp3-bytes"), nil
}

func newTTSRouter(f *fakeSynthesizer) http.Handler {
	h := NewTTSHandler(f)
	r := chi.NewRouter()
	r.Get("/api/tts/hablar", h.Speak)
	r.Post("/api/tts/hablar", h.Speak)
	return r
}

func TestSpeak_JSONBody(t *testing.T) {
	synth := &fakeSynthesizer{}
	rr := doJSON(t, newTTSRouter(synth), http.MethodPost, "/api/tts/hablar", map[string]string{
		"texto": "Buenos días",
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if synth.text != "Buenos días" {
		t.Errorf("Expected body text synthesized, got %q", synth.text)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "audio/mpeg" {
		t.Errorf("Expected audio/mpeg, got %q", ct)
	}
	if cd := rr.Header().Get("Content-Disposition"); cd != `inline; filename="voz.mp3"` {
		t.Errorf("Unexpected Content-Disposition: %q", cd)
	}
	if !bytes.Equal(rr.Body.Bytes(), []byte("ID3mp3-bytes")) {
		t.Error("Expected raw audio bytes in response")
	}
}

func TestSpeak_ExplicitlyEmptyText(t *testing.T) {
	synth := &fakeSynthesizer{}
	rr := doJSON(t, newTTSRouter(synth), http.MethodPost, "/api/tts/hablar", map[string]string{
		"texto": "",
	})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for explicitly empty text, got %d", rr.Code)
	}
	if synth.calls != 0 {
		t.Error("Expected no synthesis call")
	}

	// The failure must be a JSON error envelope, not audio.
	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Expected JSON error envelope: %v", err)
	}
	if resp["error"] == "" {
		t.Error("Expected an error message")
	}
}

func TestSpeak_MalformedJSONBody(t *testing.T) {
	synth := &fakeSynthesizer{}
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tts/hablar?texto=Hola", strings.NewReader(`{"texto":`))
	req.Header.Set("Content-Type", "application/json")
	newTTSRouter(synth).ServeHTTP(rr, req)

	// A body that declares JSON but does not parse must fail outright, not
	// fall through to the query parameter.
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 for malformed JSON, got %d", rr.Code)
	}
	if synth.calls != 0 {
		t.Error("Expected no synthesis call")
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Expected JSON error envelope: %v", err)
	}
	if resp["error"] != "invalid request body" {
		t.Errorf("Unexpected error message: %q", resp["error"])
	}
}

func TestSpeak_DefaultPhrase(t *testing.T) {
	tests := []struct {
		name string
		req  func() *http.Request
	}{
		{"GET with no params", func() *http.Request {
			return httptest.NewRequest(http.MethodGet, "/api/tts/hablar", nil)
		}},
		{"POST with empty JSON object", func() *http.Request {
			r := httptest.NewRequest(http.MethodPost, "/api/tts/hablar", strings.NewReader("{}"))
			r.Header.Set("Content-Type", "application/json")
			return r
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			synth := &fakeSynthesizer{}
			rr := httptest.NewRecorder()
			newTTSRouter(synth).ServeHTTP(rr, tc.req())

			if rr.Code != http.StatusOK {
				t.Fatalf("Expected 200, got %d: %s", rr.Code, rr.Body.String())
			}
			if synth.text != "Hola, ¿cómo estás?" {
				t.Errorf("Expected default phrase, got %q", synth.text)
			}
		})
	}
}

func TestSpeak_QueryParam(t *testing.T) {
	synth := &fakeSynthesizer{}
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tts/hablar?texto="+url.QueryEscape("Hola mundo"), nil)
	newTTSRouter(synth).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	if synth.text != "Hola mundo" {
		t.Errorf("Expected query text synthesized, got %q", synth.text)
	}
}

func TestSpeak_BodyTakesPrecedenceOverQuery(t *testing.T) {
	synth := &fakeSynthesizer{}
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tts/hablar?texto=ignorado",
		strings.NewReader(`{"texto":"del cuerpo"}`))
	req.Header.Set("Content-Type", "application/json")
	newTTSRouter(synth).ServeHTTP(rr, req)

	if synth.text != "del cuerpo" {
		t.Errorf("Expected body text to win, got %q", synth.text)
	}
}

func TestSpeak_FormField(t *testing.T) {
	synth := &fakeSynthesizer{}
	rr := httptest.NewRecorder()
	form := url.Values{"texto": {"desde el formulario"}}
	req := httptest.NewRequest(http.MethodPost, "/api/tts/hablar", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	newTTSRouter(synth).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rr.Code)
	}
	if synth.text != "desde el formulario" {
		t.Errorf("Expected form text synthesized, got %q", synth.text)
	}
}

func TestSpeak_UpstreamFailure(t *testing.T) {
	synth := &fakeSynthesizer{err: &services.UpstreamError{Err: errors.New("tts fetch failed: status 503")}}
	rr := doJSON(t, newTTSRouter(synth), http.MethodPost, "/api/tts/hablar", map[string]string{
		"texto": "Hola",
	})

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rr.Code)
	}
	var resp map[string]string
	json.NewDecoder(rr.Body).Decode(&resp)
	if !strings.Contains(resp["error"], "tts fetch failed") {
		t.Errorf("Expected upstream message surfaced, got %q", resp["error"])
	}
}
