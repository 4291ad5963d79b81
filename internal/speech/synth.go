package speech

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	synthesizeURL = "https://texttospeech.googleapis.com/v1/text:synthesize"

	// French voice tuned for collégiens: slightly slower than default so
	// read questions stay easy to follow.
	languageCode = "fr-FR"
	speakingRate = 0.8
)

// Synthesizer turns French text into mp3 files through the Google TTS
// REST API. Results are cached on disk keyed by a hash of the text, so a
// re-read question never costs a second API call.
type Synthesizer struct {
	apiKey     string
	cacheDir   string
	httpClient *http.Client

	mu sync.Mutex
}

// NewSynthesizer creates a synthesizer caching under cacheDir. The API key
// comes from COLLEGIEN_TTS_API_KEY, falling back to GOOGLE_TTS_API_KEY.
func NewSynthesizer(cacheDir string) (*Synthesizer, error) {
	apiKey := os.Getenv("COLLEGIEN_TTS_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_TTS_API_KEY")
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create tts cache dir: %w", err)
	}
	return &Synthesizer{
		apiKey:   apiKey,
		cacheDir: cacheDir,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Available reports whether synthesis is configured. Without an API key
// the read-aloud button is hidden rather than failing on use.
func (s *Synthesizer) Available() bool {
	return s.apiKey != ""
}

func (s *Synthesizer) cacheKey(text string) string {
	h := sha256.Sum256([]byte(languageCode + ":" + text))
	return hex.EncodeToString(h[:16])
}

// Synthesize returns the path of an mp3 for the given text, synthesizing
// and caching it on first use. Failures are not cached.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) (string, error) {
	cachePath := filepath.Join(s.cacheDir, s.cacheKey(text)+".mp3")
	if _, err := os.Stat(cachePath); err == nil {
		return cachePath, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring the lock.
	if _, err := os.Stat(cachePath); err == nil {
		return cachePath, nil
	}

	if s.apiKey == "" {
		return "", fmt.Errorf("tts not configured: no API key")
	}

	data, err := s.callAPI(ctx, text)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(cachePath, data, 0o644); err != nil {
		return "", fmt.Errorf("write tts cache: %w", err)
	}
	return cachePath, nil
}

func (s *Synthesizer) callAPI(ctx context.Context, text string) ([]byte, error) {
	reqBody := map[string]any{
		"input": map[string]string{
			"text": text,
		},
		"voice": map[string]any{
			"languageCode": languageCode,
			"ssmlGender":   "FEMALE",
		},
		"audioConfig": map[string]any{
			"audioEncoding": "MP3",
			"speakingRate":  speakingRate,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		synthesizeURL+"?key="+s.apiKey, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts API error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		AudioContent string `json:"audioContent"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	audio, err := base64.StdEncoding.DecodeString(result.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decode audio: %w", err)
	}
	return audio, nil
}

// DefaultCacheDir resolves the tts cache directory under the user cache
// root.
func DefaultCacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(base, "collegien", "tts"), nil
}
