package account

import (
	"context"
	"fmt"
	"log"

	"lendcore/internal/event"
)

// RegisterProvisioners wires the onboarding fan-out: one handler creates
// the principal account, another links the requested vendors. Wiring
// happens once at startup.
//
// Per-vendor failures are logged and skipped so one vendor's outage
// never blocks the others or surfaces to the onboarding caller.
func RegisterProvisioners(bus *event.Bus, uc *Usecase, defaultVendor string, logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}

	bus.Subscribe(event.TypeConsumerOnboarded, func(ctx context.Context, evt event.Envelope) error {
		p, ok := evt.Payload.(event.ConsumerOnboarded)
		if !ok {
			return fmt.Errorf("unexpected payload %T for %s", evt.Payload, evt.Type)
		}
		if _, err := uc.EnsurePrincipalAccount(ctx, p.ConsumerID); err != nil {
			return fmt.Errorf("provision principal account for %s: %w", p.ConsumerID, err)
		}
		return nil
	})

	bus.Subscribe(event.TypeConsumerOnboarded, func(ctx context.Context, evt event.Envelope) error {
		p, ok := evt.Payload.(event.ConsumerOnboarded)
		if !ok {
			return fmt.Errorf("unexpected payload %T for %s", evt.Payload, evt.Type)
		}
		vendors := p.Vendors
		if len(vendors) == 0 && defaultVendor != "" {
			vendors = []string{defaultVendor}
		}
		for _, v := range vendors {
			if _, err := uc.LinkVendorAccount(ctx, p.ConsumerID, v); err != nil {
				logger.Printf("link vendor %s for consumer %s: %v", v, p.ConsumerID, err)
			}
		}
		return nil
	})
}
