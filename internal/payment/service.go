package payment

import (
	"context"
	"errors"
	"log"

	"checkout/kit/external_payment_gateway"
)

type Service struct {
	gateway GatewayContract
}

func NewService(gateway GatewayContract) *Service {
	return &Service{gateway: gateway}
}

func (s *Service) CreateOneTime(ctx context.Context, req OneTimeRequest) (*external_payment_gateway.Approval, error) {
	if err := ValidateOneTimeRequest(req); err != nil {
		log.Printf("layer=service component=payment method=CreateOneTime amount=%v currency=%s err=%v", req.Amount, req.Currency, err)
		return nil, err
	}

	a, err := s.gateway.CreateOrder(ctx, ToOrderRequest(req))
	if err != nil {
		log.Printf("layer=service component=payment method=CreateOneTime amount=%v currency=%s err=%v", req.Amount, req.Currency, err)
		return nil, errors.Join(ErrGateway, err)
	}
	return a, nil
}

// CreateRecurring creates a fresh billing plan for the requested price and
// subscribes to it.
func (s *Service) CreateRecurring(ctx context.Context, req RecurringRequest) (*external_payment_gateway.Approval, error) {
	if err := ValidateRecurringRequest(req); err != nil {
		log.Printf("layer=service component=payment method=CreateRecurring plan=%q price=%v err=%v", req.PlanName, req.Price, err)
		return nil, err
	}

	planID, err := s.gateway.CreatePlan(ctx, ToPlanRequest(req))
	if err != nil {
		log.Printf("layer=service component=payment method=CreateRecurring plan=%q err=%v", req.PlanName, err)
		return nil, errors.Join(ErrGateway, err)
	}

	a, err := s.gateway.CreateSubscription(ctx, ToSubscriptionRequest(planID, req))
	if err != nil {
		log.Printf("layer=service component=payment method=CreateRecurring plan_id=%s err=%v", planID, err)
		return nil, errors.Join(ErrGateway, err)
	}
	return a, nil
}

func (s *Service) Capture(ctx context.Context, orderID string) (*external_payment_gateway.Capture, error) {
	if err := ValidateCaptureToken(orderID); err != nil {
		log.Printf("layer=service component=payment method=Capture err=%v", err)
		return nil, err
	}

	c, err := s.gateway.CaptureOrder(ctx, orderID)
	if err != nil {
		log.Printf("layer=service component=payment method=Capture order_id=%s err=%v", orderID, err)
		return nil, errors.Join(ErrGateway, err)
	}
	return c, nil
}
