// Package speech plays pronunciation audio for vocabulary headwords.
//
// Audio comes from the Google Translate TTS endpoint (free, no API key) and
// is cached as MP3 under the user cache directory, so each headword is
// fetched at most once. Playback shells out to the first available command
// line player. The whole feature is opt-in via VOCADRILL_SPEECH=1.
package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	ttsBaseURL        = "https://translate.google.com/translate_tts"
	ttsRequestTimeout = 10 * time.Second
)

// Candidate players, tried in order. The first one found on PATH wins.
var players = []string{"afplay", "mpg123", "ffplay", "aplay"}

// Service fetches and plays pronunciation audio.
type Service struct {
	cacheDir string
	lang     string
	baseURL  string
	client   *http.Client
	player   string
}

// FromEnv returns a Service when VOCADRILL_SPEECH=1 and a player is
// available, nil otherwise. A nil *Service is safe to use; Speak becomes a
// no-op.
func FromEnv() *Service {
	if os.Getenv("VOCADRILL_SPEECH") != "1" {
		return nil
	}
	s, err := New("ko")
	if err != nil {
		return nil
	}
	return s
}

// New builds a Service speaking the given language code.
func New(lang string) (*Service, error) {
	player, err := findPlayer()
	if err != nil {
		return nil, err
	}

	base, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("resolve cache dir: %w", err)
	}
	cacheDir := filepath.Join(base, "vocadrill", "audio")
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create audio cache: %w", err)
	}

	return &Service{
		cacheDir: cacheDir,
		lang:     lang,
		baseURL:  ttsBaseURL,
		client:   &http.Client{Timeout: ttsRequestTimeout},
		player:   player,
	}, nil
}

func findPlayer() (string, error) {
	for _, p := range players {
		if path, err := exec.LookPath(p); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no audio player found (tried %s)", strings.Join(players, ", "))
}

// Speak plays the pronunciation of text, fetching and caching the audio on
// first use. A nil receiver is a no-op.
func (s *Service) Speak(ctx context.Context, text string) error {
	if s == nil || strings.TrimSpace(text) == "" {
		return nil
	}

	path, err := s.audioFile(ctx, text)
	if err != nil {
		return err
	}
	return s.play(ctx, path)
}

// audioFile returns the cached MP3 path for text, downloading it if absent.
func (s *Service) audioFile(ctx context.Context, text string) (string, error) {
	name := strings.ReplaceAll(strings.TrimSpace(text), " ", "_")
	path := filepath.Join(s.cacheDir, name+".mp3")

	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := s.fetch(ctx, text, path); err != nil {
		return "", fmt.Errorf("fetch audio for %q: %w", text, err)
	}
	return path, nil
}

func (s *Service) fetch(ctx context.Context, text, outputPath string) error {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", s.lang)
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	ctx, cancel := context.WithTimeout(ctx, ttsRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	// The endpoint rejects requests without a browser user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create audio file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("write audio file: %w", err)
	}
	return nil
}

func (s *Service) play(ctx context.Context, path string) error {
	args := []string{path}
	if strings.HasSuffix(s.player, "ffplay") {
		args = []string{"-nodisp", "-autoexit", "-loglevel", "quiet", path}
	}
	cmd := exec.CommandContext(ctx, s.player, args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("play audio: %w", err)
	}
	return nil
}
