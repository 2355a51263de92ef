// Package webchat serves the embeddable lead-qualification widget: one
// conversation engine per visitor session, reachable over WebSocket with an
// HTTP fallback.
package webchat

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/atlasdmc/leadbot/internal/catalog"
	"github.com/atlasdmc/leadbot/internal/engine"
	"github.com/atlasdmc/leadbot/internal/gateway"
	"github.com/atlasdmc/leadbot/internal/handoff"
	"github.com/atlasdmc/leadbot/internal/notify"
	"github.com/atlasdmc/leadbot/internal/observability/metrics"
	"github.com/atlasdmc/leadbot/pkg/logging"
)

// session holds one visitor's engine and its liveness bookkeeping.
type session struct {
	engine *engine.Engine

	mu       sync.Mutex
	lastSeen time.Time
}

func (s *session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Config wires the webchat handler.
type Config struct {
	Catalog       *catalog.Catalog
	Submitter     gateway.Submitter
	Handoff       *handoff.Builder
	Notifier      *notify.LeadNotifier
	Metrics       *metrics.ChatMetrics
	Logger        *logging.Logger
	DefaultLocale string
	IdleTTL       time.Duration
}

// Handler manages widget sessions and their transports.
type Handler struct {
	catalog       *catalog.Catalog
	submitter     gateway.Submitter
	handoff       *handoff.Builder
	notifier      *notify.LeadNotifier
	metrics       *metrics.ChatMetrics
	logger        *logging.Logger
	defaultLocale string
	idleTTL       time.Duration

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewHandler creates a webchat handler.
func NewHandler(cfg Config) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	idleTTL := cfg.IdleTTL
	if idleTTL <= 0 {
		idleTTL = 30 * time.Minute
	}
	return &Handler{
		catalog:       cfg.Catalog,
		submitter:     cfg.Submitter,
		handoff:       cfg.Handoff,
		notifier:      cfg.Notifier,
		metrics:       cfg.Metrics,
		logger:        logger,
		defaultLocale: cfg.DefaultLocale,
		idleTTL:       idleTTL,
		sessions:      make(map[string]*session),
	}
}

// generateSessionID creates a random session identifier.
func generateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return uuid.New().String()
	}
	return hex.EncodeToString(b)
}

// getOrCreate returns the session for id, creating a fresh conversation when
// the id is unknown or empty. Returns the possibly-new id.
func (h *Handler) getOrCreate(id, locale string) (string, *session) {
	if id != "" {
		h.mu.RLock()
		s, ok := h.sessions[id]
		h.mu.RUnlock()
		if ok {
			s.touch(time.Now())
			return id, s
		}
	}

	if id == "" {
		id = generateSessionID()
	}
	s := &session{
		engine: engine.New(engine.Config{
			Catalog:   h.catalog,
			Submitter: h.submitter,
			Handoff:   h.handoff,
			Metrics:   h.metrics,
			Logger:    h.logger,
			Locale:    firstNonEmpty(locale, h.defaultLocale),
		}),
		lastSeen: time.Now(),
	}
	h.mu.Lock()
	h.sessions[id] = s
	h.mu.Unlock()
	h.logger.Info("webchat: session opened", "session_id", id, "locale", s.engine.Locale())
	return id, s
}

// dispatch routes one inbound event to the session's engine.
func (h *Handler) dispatch(ctx context.Context, s *session, ev InboundEvent) (*engine.Update, error) {
	e := s.engine
	switch ev.Type {
	case EventStart:
		return e.StartProposal()
	case EventFAQ:
		return e.BrowseFAQ()
	case EventFAQFilter:
		return e.FAQFilter(parseCategory(ev.Category))
	case EventFAQBack:
		return e.FAQBack()
	case EventToggle:
		return e.Toggle(ev.OptionID)
	case EventContinue:
		return e.Continue()
	case EventSelect:
		return e.Select(ev.OptionID)
	case EventText:
		switch e.Step() {
		case engine.StepDates:
			return e.SubmitDates(ev.Text, ev.Flexible)
		default:
			return e.SubmitSpecialNeeds(ev.Text)
		}
	case EventContact:
		if ev.Contact == nil {
			return nil, engine.ErrInvalidAction
		}
		return e.SubmitContact(*ev.Contact)
	case EventConsent:
		return e.SetConsent(ev.Granted)
	case EventSubmit:
		upd, err := e.Submit(ctx)
		if err == nil && e.Step() == engine.StepSuccess {
			// Fire and forget; the visitor never waits on the sales email.
			go h.notifier.NotifyLead(context.Background(), e.Profile(), e.ReferenceID(), e.Locale())
		}
		return upd, err
	case EventLocale:
		return e.SetLocale(ev.Locale)
	}
	return nil, engine.ErrInvalidAction
}

// HandleMessage is the HTTP fallback for widget events.
func (h *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	var ev InboundEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if ev.Type == "" {
		http.Error(w, "type is required", http.StatusBadRequest)
		return
	}

	id, s := h.getOrCreate(ev.SessionID, ev.Locale)

	if ev.Type == EventPing {
		writeJSON(w, OutboundFrame{Type: "pong", SessionID: id})
		return
	}

	upd, err := h.dispatch(r.Context(), s, ev)
	if err != nil {
		h.logger.Debug("webchat: event rejected", "session_id", id, "type", ev.Type, "error", err)
		writeJSON(w, OutboundFrame{
			Type:      "error",
			SessionID: id,
			Error:     localizeError(s.engine, err),
		})
		return
	}

	frame := updateFrame(upd)
	frame.SessionID = id
	writeJSON(w, frame)
}

// HandleSession returns the full transcript and current view, for widgets
// that reconnect mid-conversation.
func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session")
	if id == "" {
		http.Error(w, "session parameter required", http.StatusBadRequest)
		return
	}

	h.mu.RLock()
	s, ok := h.sessions[id]
	h.mu.RUnlock()
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	s.touch(time.Now())

	snap := s.engine.Snapshot()
	frame := updateFrame(snap)
	frame.Type = "session"
	frame.SessionID = id
	writeJSON(w, frame)
}

// StartJanitor sweeps idle sessions until ctx is done. The widget keeps no
// server-side state beyond this map, so a sweep is a full discard.
func (h *Handler) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				h.sweep(now)
			}
		}
	}()
}

func (h *Handler) sweep(now time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, s := range h.sessions {
		if s.idleSince(now) > h.idleTTL {
			delete(h.sessions, id)
			h.logger.Info("webchat: session expired", "session_id", id)
		}
	}
}

// SessionCount reports the number of live sessions.
func (h *Handler) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
