// Package audit appends every checkout event to a JSON lines trail.
package audit

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"checkout/kit/broker"
	"checkout/kit/observability"
)

type entry struct {
	Seq   int64        `json:"seq"`
	At    time.Time    `json:"at"`
	Event string       `json:"event"`
	Data  broker.Event `json:"data"`
}

type Service struct {
	logger *observability.Logger

	mu  sync.Mutex
	seq int64
	f   *os.File
	enc *json.Encoder
}

// NewService only logs events.
func NewService(logger *observability.Logger) *Service {
	return &Service{logger: logger}
}

// NewServiceWithFile also appends events to the file at path, creating
// parent directories as needed.
func NewServiceWithFile(logger *observability.Logger, path string) (*Service, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &Service{logger: logger, f: f, enc: json.NewEncoder(f)}, nil
}

func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	s.enc = nil
	return err
}

func (s *Service) Record(ctx context.Context, evt broker.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++

	if s.logger != nil {
		s.logger.Info("audit", "seq", s.seq, "event", evt.Name())
	}
	if s.enc == nil {
		return nil
	}
	if err := s.enc.Encode(entry{Seq: s.seq, At: time.Now().UTC(), Event: evt.Name(), Data: evt}); err != nil {
		if s.logger != nil {
			s.logger.Error("audit error", "method", "Record", "event", evt.Name(), "error", err.Error())
		}
		return err
	}
	return nil
}
