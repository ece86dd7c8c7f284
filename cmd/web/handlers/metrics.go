package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

type SnapshotContract interface {
	Snapshot() map[string]int64
}

type Metrics struct {
	m SnapshotContract
}

func NewMetrics(m SnapshotContract) *Metrics {
	return &Metrics{m: m}
}

func (h *Metrics) Handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.m.Snapshot()); err != nil {
		log.Printf("layer=handler component=metrics method=Handler err=%v", err)
	}
}
