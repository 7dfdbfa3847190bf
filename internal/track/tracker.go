package track

import (
	"log"
	"sync"
	"time"

	"github.com/mohamedgewely/showroom-hub/internal/storage"
)

const (
	// eventQueueSize is the buffer size for the event queue.
	// If full, events are dropped (non-blocking).
	eventQueueSize = 256

	// batchFlushSize is the number of events that triggers an immediate flush.
	batchFlushSize = 10

	// flushInterval is how often pending events are flushed to disk.
	flushInterval = 50 * time.Millisecond
)

// Tracker records selection events in the background with non-blocking writes.
type Tracker struct {
	storage    storage.Storage
	eventQueue chan SelectionEvent
	stopChan   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	enabled    bool
	mu         sync.RWMutex
}

// NewTracker creates a new selection tracker with background processing.
func NewTracker(s storage.Storage) *Tracker {
	t := &Tracker{
		storage:    s,
		eventQueue: make(chan SelectionEvent, eventQueueSize),
		stopChan:   make(chan struct{}),
		enabled:    true,
	}

	if err := t.storage.Init(); err != nil {
		log.Printf("Warning: selection tracking storage initialization failed: %v", err)
		t.enabled = false
	}

	t.wg.Add(1)
	go t.processEvents()

	return t
}

// Track records a selection event (non-blocking).
// If the queue is full, the event is dropped and a warning is logged.
func (t *Tracker) Track(event SelectionEvent) {
	if !t.IsEnabled() {
		return
	}

	select {
	case t.eventQueue <- event:
	default:
		log.Printf("Warning: tracking queue full, dropping event for persona: %s", event.PersonaID)
	}
}

// Stop gracefully shuts down the tracker, flushing remaining events.
func (t *Tracker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
		t.wg.Wait()
	})
}

// IsEnabled returns whether tracking is enabled.
func (t *Tracker) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled && t.storage != nil
}

// Disable disables tracking (events are ignored).
func (t *Tracker) Disable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = false
}

// processEvents runs in the background, batching and flushing events.
func (t *Tracker) processEvents() {
	defer t.wg.Done()

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	batch := make([]SelectionEvent, 0, batchFlushSize)

	for {
		select {
		case event := <-t.eventQueue:
			batch = append(batch, event)
			if len(batch) >= batchFlushSize {
				t.flush(batch)
				batch = make([]SelectionEvent, 0, batchFlushSize)
			}

		case <-ticker.C:
			if len(batch) > 0 {
				t.flush(batch)
				batch = make([]SelectionEvent, 0, batchFlushSize)
			}

		case <-t.stopChan:
			// Drain remaining events, flush and exit.
			for {
				select {
				case event := <-t.eventQueue:
					batch = append(batch, event)
					if len(batch) >= batchFlushSize {
						t.flush(batch)
						batch = make([]SelectionEvent, 0, batchFlushSize)
					}
				default:
					t.flush(batch)
					return
				}
			}
		}
	}
}

// flush writes a batch of events to storage.
func (t *Tracker) flush(events []SelectionEvent) {
	for _, event := range events {
		if err := t.storage.RecordSelection(event.ToStorage()); err != nil {
			log.Printf("Warning: failed to record selection: %v", err)
		}
	}
}
