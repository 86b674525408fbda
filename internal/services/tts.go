package services

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ttsEndpoint = "https://translate.google.com/translate_tts"

	// The upstream rejects long inputs; text is synthesized in chunks of at
	// most this many runes and the MP3 segments concatenated.
	ttsChunkSize = 200

	ttsCacheTTL = 24 * time.Hour
)

// TTSService converts text to spoken audio in a fixed language. The complete
// MP3 is held in memory; with a Redis client configured, synthesized audio is
// cached by content hash.
type TTSService struct {
	httpClient *http.Client
	language   string
	cache      *redis.Client
}

func NewTTSService(language string, cache *redis.Client) *TTSService {
	return &TTSService{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		language:   language,
		cache:      cache,
	}
}

func (s *TTSService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	key := fmt.Sprintf("tts:%s:%x", s.language, sha256.Sum256([]byte(text)))
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			return cached, nil
		}
	}

	var audio []byte
	for _, chunk := range splitChunks(text, ttsChunkSize) {
		segment, err := s.fetchChunk(ctx, chunk)
		if err != nil {
			return nil, &UpstreamError{Err: err}
		}
		audio = append(audio, segment...)
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, audio, ttsCacheTTL)
	}
	return audio, nil
}

func (s *TTSService) fetchChunk(ctx context.Context, chunk string) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("tl", s.language)
	q.Set("q", chunk)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ttsEndpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("speech synthesis returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// splitChunks breaks text into rune-safe chunks, preferring to cut at a space
// in the second half of the window so words stay intact.
func splitChunks(text string, size int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	var chunks []string
	for len(runes) > 0 {
		if len(runes) <= size {
			chunks = append(chunks, string(runes))
			break
		}
		cut := size
		for i := size; i > size/2; i-- {
			if runes[i] == ' ' {
				cut = i
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		for cut < len(runes) && runes[cut] == ' ' {
			cut++
		}
		runes = runes[cut:]
	}
	return chunks
}
