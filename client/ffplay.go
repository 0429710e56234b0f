package client

import (
	"fmt"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"yebox/logger"
)

// FFplayElement drives an external ffplay process as the playback primitive
// for the console client. Pause and resume use SIGSTOP/SIGCONT, seeking
// restarts ffplay at the requested offset. When the process exits on its own
// (end of track) the registered OnEnded callback fires.
type FFplayElement struct {
	ffplayPath string

	mu         sync.Mutex
	url        string
	cmd        *exec.Cmd
	generation int
	suspended  bool
	onEnded    func()

	startedAt   time.Time
	offset      float64 // seconds skipped via Seek
	pausedAt    time.Time
	pausedTotal time.Duration
}

// NewFFplayElement creates an element using the given ffplay binary.
func NewFFplayElement(ffplayPath string) *FFplayElement {
	return &FFplayElement{ffplayPath: ffplayPath}
}

// SetOnEnded registers the end-of-track callback. It is invoked from a
// watcher goroutine whenever playback finishes without being stopped.
func (e *FFplayElement) SetOnEnded(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onEnded = fn
}

// SetSource stops any running playback and points the element at a new URL.
func (e *FFplayElement) SetSource(url string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	e.url = url
	e.offset = 0
}

// Play starts playback, or resumes it after a pause.
func (e *FFplayElement) Play() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cmd != nil && e.suspended {
		if err := e.cmd.Process.Signal(syscall.SIGCONT); err != nil {
			logger.Warn("Failed to resume ffplay", logger.ErrorField(err))
			return
		}
		e.suspended = false
		e.pausedTotal += time.Since(e.pausedAt)
		return
	}

	e.startLocked(e.offset)
}

// Pause suspends the ffplay process.
func (e *FFplayElement) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cmd == nil || e.suspended {
		return
	}
	if err := e.cmd.Process.Signal(syscall.SIGSTOP); err != nil {
		logger.Warn("Failed to pause ffplay", logger.ErrorField(err))
		return
	}
	e.suspended = true
	e.pausedAt = time.Now()
}

// CurrentTime returns the elapsed playback position in seconds.
func (e *FFplayElement) CurrentTime() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cmd == nil {
		return 0
	}
	elapsed := time.Since(e.startedAt) - e.pausedTotal
	if e.suspended {
		elapsed -= time.Since(e.pausedAt)
	}
	return e.offset + elapsed.Seconds()
}

// Duration is unknown to ffplay from the outside; progress updates are
// skipped accordingly.
func (e *FFplayElement) Duration() float64 {
	return 0
}

// Seek restarts playback at the given offset.
func (e *FFplayElement) Seek(seconds float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.url == "" {
		return
	}
	e.stopLocked()
	e.startLocked(seconds)
}

// Stop terminates playback without firing the end-of-track callback.
func (e *FFplayElement) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

func (e *FFplayElement) startLocked(offset float64) {
	if e.url == "" {
		return
	}

	args := []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}
	if offset > 0 {
		args = append(args, "-ss", fmt.Sprintf("%.2f", offset))
	}
	args = append(args, e.url)

	cmd := exec.Command(e.ffplayPath, args...)
	if err := cmd.Start(); err != nil {
		logger.Error("Failed to start ffplay",
			logger.String("path", e.ffplayPath),
			logger.ErrorField(err),
		)
		return
	}

	e.cmd = cmd
	e.suspended = false
	e.startedAt = time.Now()
	e.offset = offset
	e.pausedTotal = 0
	e.generation++

	// Watch for the process exiting on its own. Stopping bumps the
	// generation first, so a killed process never reports end of track.
	gen := e.generation
	go func() {
		cmd.Wait()

		e.mu.Lock()
		if e.generation != gen || e.cmd != cmd {
			e.mu.Unlock()
			return
		}
		e.cmd = nil
		fn := e.onEnded
		e.mu.Unlock()

		if fn != nil {
			fn()
		}
	}()
}

func (e *FFplayElement) stopLocked() {
	if e.cmd == nil {
		return
	}
	e.generation++
	if e.suspended {
		e.cmd.Process.Signal(syscall.SIGCONT)
		e.suspended = false
	}
	e.cmd.Process.Kill()
	// The watcher goroutine reaps the process.
	e.cmd = nil
}
