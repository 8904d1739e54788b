package sse

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ArmaRealms/ToolStats/internal/domain"
	"github.com/ArmaRealms/ToolStats/internal/logger"
)

// Handler streams statistic updates to the caller until it disconnects or
// the hub stops. The optional stats query parameter narrows the stream.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		stats, err := parseStats(r.URL.Query().Get(QueryParamStats))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		ctx := r.Context()
		log := logger.FromContext(ctx)

		client := hub.Register(stats)
		log.Info(LogMsgClientConnected, "client_id", client.ID, "stats", stats)
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID)
		}()

		send := func(evt Event) bool {
			msg, err := FormatMessage(evt)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		hello := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().Unix(),
			Payload:   map[string]any{"client_id": client.ID, "stats": stats},
		}
		if !send(hello) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case evt, ok := <-client.Events:
				if !ok || !send(evt) {
					return
				}
			case <-ticker.C:
				if !send(Event{Type: EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}

func parseStats(raw string) ([]domain.StatKind, error) {
	if raw == "" {
		return nil, nil
	}
	var stats []domain.StatKind
	for _, part := range strings.Split(raw, ",") {
		kind := domain.StatKind(strings.TrimSpace(part))
		if !kind.Valid() {
			return nil, fmt.Errorf(ErrMsgUnknownStat, part)
		}
		stats = append(stats, kind)
	}
	return stats, nil
}
