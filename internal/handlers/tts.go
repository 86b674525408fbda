package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
)

type speechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type TTSHandler struct {
	tts speechSynthesizer
}

// defaultPhrase is spoken when no text is supplied anywhere in the request.
const defaultPhrase = "Hola, ¿cómo estás?"

func NewTTSHandler(tts speechSynthesizer) *TTSHandler {
	return &TTSHandler{tts: tts}
}

var (
	errEmptyText     = errors.New("please provide text to convert to speech")
	errMalformedBody = errors.New("invalid request body")
)

// Speak resolves the text to synthesize and streams back the complete MP3.
func (h *TTSHandler) Speak(w http.ResponseWriter, r *http.Request) {
	texto, err := requestText(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	audio, err := h.tts.Synthesize(r.Context(), texto)
	if err != nil {
		log.Printf("speech synthesis failed: %v", err)
		handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", `inline; filename="voz.mp3"`)
	w.Write(audio)
}

// requestText resolves the input with body > query > form precedence. An
// explicitly empty value is rejected; a fully absent one falls back to the
// default phrase. A body that declares JSON but does not parse is an error,
// not a fallthrough.
func requestText(r *http.Request) (string, error) {
	if r.Method == http.MethodPost && strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			Texto *string `json:"texto"`
		}
		switch err := json.NewDecoder(r.Body).Decode(&body); {
		case err == io.EOF:
			// No body was sent; check the other sources.
		case err != nil:
			return "", errMalformedBody
		case body.Texto != nil:
			if *body.Texto == "" {
				return "", errEmptyText
			}
			return *body.Texto, nil
		}
	}

	if vals, ok := r.URL.Query()["texto"]; ok && len(vals) > 0 {
		if vals[0] == "" {
			return "", errEmptyText
		}
		return vals[0], nil
	}

	if err := r.ParseForm(); err == nil {
		if vals, ok := r.PostForm["texto"]; ok && len(vals) > 0 {
			if vals[0] == "" {
				return "", errEmptyText
			}
			return vals[0], nil
		}
	}

	return defaultPhrase, nil
}
