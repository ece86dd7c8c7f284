package consumers

import (
	"context"
	"log"

	"checkout/kit/broker"
)

type AuditEvent struct {
	audit AuditorContract
}

func NewAuditEvent(a AuditorContract) *AuditEvent {
	return &AuditEvent{audit: a}
}

func (h *AuditEvent) HandleAny(ctx context.Context, evt broker.Event) error {
	if h.audit == nil {
		return nil
	}
	if err := h.audit.Record(ctx, evt); err != nil {
		log.Printf("layer=consumer component=audit method=HandleAny event=%s err=%v", evt.Name(), err)
		return err
	}
	return nil
}
