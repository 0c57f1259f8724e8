package audio

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Cue plays one configured sound on alert presentation. The sound is
// decoded once and buffered; the speaker is initialized lazily on
// first play.
type Cue struct {
	mu     sync.Mutex
	logger *slog.Logger

	path    string
	volume  float64 // 0.0 to 1.0
	enabled bool

	initialized bool
	sampleRate  beep.SampleRate
	buffer      *beep.Buffer
}

// NewCue creates a cue player. An empty path or disabled cue plays
// nothing.
func NewCue(path string, volume float64, enabled bool, logger *slog.Logger) *Cue {
	if logger == nil {
		logger = slog.Default()
	}
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	return &Cue{
		logger:     logger,
		path:       expandHome(path),
		volume:     volume,
		enabled:    enabled,
		sampleRate: beep.SampleRate(44100),
	}
}

// Play plays the cue. Missing or undecodable files are logged, not
// fatal: a broken sound never blocks alert presentation.
func (c *Cue) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled || c.path == "" {
		return
	}

	if c.buffer == nil {
		buffer, err := c.load()
		if err != nil {
			c.logger.Warn("failed to load alert sound", "path", c.path, "error", err)
			c.enabled = false
			return
		}
		c.buffer = buffer
	}

	var streamer beep.Streamer = c.buffer.Streamer(0, c.buffer.Len())
	if c.buffer.Format().SampleRate != c.sampleRate {
		streamer = beep.Resample(4, c.buffer.Format().SampleRate, c.sampleRate, streamer)
	}
	if c.volume < 1.0 {
		streamer = &effects.Volume{
			Streamer: streamer,
			Base:     2,
			Volume:   volumeToDecibels(c.volume),
			Silent:   c.volume == 0,
		}
	}

	speaker.Play(streamer)
}

// load decodes the configured file into a buffer, initializing the
// speaker on first use.
func (c *Cue) load() (*beep.Buffer, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch strings.ToLower(filepath.Ext(c.path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", filepath.Ext(c.path))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode sound: %w", err)
	}
	defer func() { _ = streamer.Close() }()

	if !c.initialized {
		bufferSize := format.SampleRate.N(time.Millisecond * 100)
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			return nil, fmt.Errorf("failed to initialize speaker: %w", err)
		}
		c.sampleRate = format.SampleRate
		c.initialized = true
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	return buffer, nil
}

// volumeToDecibels converts a linear 0..1 volume to the log scale the
// beep volume effect expects.
func volumeToDecibels(volume float64) float64 {
	if volume <= 0 {
		return -10
	}
	return math.Log2(volume)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
