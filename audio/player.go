// Package audio plays one clip at a time over the beep speaker. Any call
// to Play stops the previous clip first; per-clip errors are logged and
// never propagated, leaving the slot stopped.
package audio

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const playbackRate = beep.SampleRate(48000)

// output abstracts the speaker so slot semantics are testable without a
// sound device
type output interface {
	play(s beep.Streamer)
	clear()
}

type speakerOutput struct{}

func (speakerOutput) play(s beep.Streamer) { speaker.Play(s) }
func (speakerOutput) clear()               { speaker.Clear() }

// Player is a single-slot audio player. At most one clip is active; Play
// implicitly stops the previous clip before starting the new one.
type Player struct {
	mu          sync.Mutex
	dir         string
	out         output
	initialized bool
	muted       bool

	active *beep.Ctrl
	closer io.Closer
}

// NewPlayer creates a player resolving clip paths relative to dir.
// Initialize must succeed before any sound is produced.
func NewPlayer(dir string) *Player {
	return &Player{dir: dir, out: speakerOutput{}}
}

// Initialize opens the speaker. Failure leaves the player as a logged
// no-op; the session continues without sound.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(playbackRate, playbackRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("speaker init failed: %w", err)
	}
	p.initialized = true
	return nil
}

// SetMuted silences playback without changing slot semantics
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Active reports whether a clip currently occupies the slot
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active != nil
}

// Play starts the clip at path. The previous clip is stopped first in
// every case, so exclusivity holds even when the new clip fails to load.
// An empty or unresolvable path logs a diagnostic and plays nothing.
func (p *Player) Play(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopLocked()

	if strings.TrimSpace(path) == "" {
		log.Printf("audio: empty clip path")
		return
	}
	if !p.initialized {
		return
	}

	full := path
	if p.dir != "" && !filepath.IsAbs(path) {
		full = filepath.Join(p.dir, path)
	}

	f, err := os.Open(full)
	if err != nil {
		log.Printf("audio: clip missing: %s: %v", full, err)
		return
	}

	streamer, format, err := decode(full, f)
	if err != nil {
		f.Close()
		log.Printf("audio: failed to decode %s: %v", full, err)
		return
	}

	var s beep.Streamer = streamer
	if format.SampleRate != playbackRate {
		s = beep.Resample(4, format.SampleRate, playbackRate, streamer)
	}
	s = &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: p.muted}

	ctrl := &beep.Ctrl{Streamer: s}
	p.active = ctrl
	p.closer = streamer
	p.out.play(ctrl)
}

// Stop halts and releases the active clip; calling it with nothing
// playing is a no-op.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *Player) stopLocked() {
	if p.active == nil {
		return
	}
	p.active.Paused = true
	p.out.clear()
	if err := p.closer.Close(); err != nil {
		log.Printf("audio: failed to release clip: %v", err)
	}
	p.active = nil
	p.closer = nil
}

// decode picks a decoder by file extension
func decode(path string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("unsupported audio format: %s", filepath.Ext(path))
	}
}
