// Package debug is the engine's hand-rolled structured logger: a
// per-component, per-level ring buffer fed through a channel so the
// rendering hot path never blocks on a slow consumer.
package debug

import (
	"fmt"
	"sync"
	"time"
)

// Logger is the centralized logging sink shared by the analyzer,
// framebuffer, pipeline, preset parser, script runtime, driver, and
// studio packages.
type Logger struct {
	entries    []LogEntry
	entriesMu  sync.RWMutex
	maxEntries int
	writeIndex int
	entryCount int

	componentEnabled map[Component]bool
	componentMu      sync.RWMutex

	minLevel LogLevel
	levelMu  sync.RWMutex

	logChan  chan LogEntry
	shutdown chan struct{}
	wg       sync.WaitGroup
}

// NewLogger creates a logger with a ring buffer of maxEntries slots.
// All components are disabled by default; logging is opt-in.
func NewLogger(maxEntries int) *Logger {
	if maxEntries < 100 {
		maxEntries = 100
	}

	l := &Logger{
		entries:          make([]LogEntry, maxEntries),
		maxEntries:       maxEntries,
		componentEnabled: make(map[Component]bool),
		minLevel:         LogLevelInfo,
		logChan:          make(chan LogEntry, 1000),
		shutdown:         make(chan struct{}),
	}

	for c := ComponentAnalyzer; c <= ComponentStudio; c++ {
		l.componentEnabled[c] = false
	}

	l.wg.Add(1)
	go l.processLogs()

	return l
}

func (l *Logger) processLogs() {
	defer l.wg.Done()
	for {
		select {
		case entry := <-l.logChan:
			l.addEntry(entry)
		case <-l.shutdown:
			for {
				select {
				case entry := <-l.logChan:
					l.addEntry(entry)
				default:
					return
				}
			}
		}
	}
}

func (l *Logger) addEntry(entry LogEntry) {
	l.entriesMu.Lock()
	defer l.entriesMu.Unlock()
	l.entries[l.writeIndex] = entry
	l.writeIndex = (l.writeIndex + 1) % l.maxEntries
	if l.entryCount < l.maxEntries {
		l.entryCount++
	}
}

// SetComponentEnabled toggles logging for one component.
func (l *Logger) SetComponentEnabled(c Component, enabled bool) {
	l.componentMu.Lock()
	defer l.componentMu.Unlock()
	l.componentEnabled[c] = enabled
}

// SetMinLevel sets the minimum level that will be recorded.
func (l *Logger) SetMinLevel(level LogLevel) {
	l.levelMu.Lock()
	defer l.levelMu.Unlock()
	l.minLevel = level
}

// Log records an entry if its component is enabled and its level
// clears the minimum threshold. Non-blocking: a full channel drops
// the entry rather than stall the caller.
func (l *Logger) Log(component Component, level LogLevel, message string) {
	l.componentMu.RLock()
	enabled := l.componentEnabled[component]
	l.componentMu.RUnlock()
	if !enabled {
		return
	}

	l.levelMu.RLock()
	minLevel := l.minLevel
	l.levelMu.RUnlock()
	if level < minLevel {
		return
	}

	entry := LogEntry{Timestamp: time.Now(), Component: component, Level: level, Message: message}
	select {
	case l.logChan <- entry:
	default:
	}
}

// Logf is the printf-style convenience wrapper used throughout the
// engine, e.g. l.Logf(debug.ComponentPreset, debug.LogLevelWarning, "unknown effect id %d", id).
func (l *Logger) Logf(component Component, level LogLevel, format string, args ...interface{}) {
	l.Log(component, level, fmt.Sprintf(format, args...))
}

// Snapshot returns the entries currently held, oldest first.
func (l *Logger) Snapshot() []LogEntry {
	l.entriesMu.RLock()
	defer l.entriesMu.RUnlock()

	out := make([]LogEntry, 0, l.entryCount)
	if l.entryCount < l.maxEntries {
		out = append(out, l.entries[:l.entryCount]...)
		return out
	}
	out = append(out, l.entries[l.writeIndex:]...)
	out = append(out, l.entries[:l.writeIndex]...)
	return out
}

// Close stops the background goroutine after draining the channel.
func (l *Logger) Close() {
	close(l.shutdown)
	l.wg.Wait()
}
