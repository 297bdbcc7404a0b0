package account

import (
	"bytes"
	"context"
	"log"
	"testing"

	domain "lendcore/internal/domain/account"
	"lendcore/internal/event"
	"lendcore/internal/testutil/accountmock"
	"lendcore/pkg/id"

	"gorm.io/gorm"
)

func TestRegisterProvisioners_FanOut(t *testing.T) {
	consumerID := id.NewID32()

	principalCreated := false
	principals := &accountmock.PrincipalRepo{
		GetByConsumerIDFn: func(ctx context.Context, cid string) (*domain.PrincipalAccount, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, a *domain.PrincipalAccount) error {
			principalCreated = true
			return nil
		},
	}

	var linked []string
	vendors := &accountmock.VendorRepo{
		GetByConsumerVendorFn: func(ctx context.Context, cid, vid string) (*domain.VendorLinkedAccount, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, a *domain.VendorLinkedAccount) error {
			if a.VendorID == "vendor-down" {
				return gorm.ErrInvalidDB
			}
			linked = append(linked, a.VendorID)
			return nil
		},
	}

	var buf bytes.Buffer
	bus := event.NewBus(log.New(&buf, "", 0))
	uc := NewUsecase(principals, vendors)
	RegisterProvisioners(bus, uc, "", log.New(&buf, "", 0))

	bus.Publish(context.Background(), event.TypeConsumerOnboarded, event.ConsumerOnboarded{
		ConsumerID: consumerID,
		Vendors:    []string{"vendor-a", "vendor-down", "vendor-b"},
	})

	if !principalCreated {
		t.Fatal("principal account not provisioned")
	}
	// the failing vendor is skipped, the rest still link
	if len(linked) != 2 || linked[0] != "vendor-a" || linked[1] != "vendor-b" {
		t.Fatalf("linked = %v, want [vendor-a vendor-b]", linked)
	}
	if !bytes.Contains(buf.Bytes(), []byte("vendor-down")) {
		t.Fatalf("vendor failure not logged: %q", buf.String())
	}
}

func TestRegisterProvisioners_DefaultVendor(t *testing.T) {
	consumerID := id.NewID32()

	var linked []string
	vendors := &accountmock.VendorRepo{
		GetByConsumerVendorFn: func(ctx context.Context, cid, vid string) (*domain.VendorLinkedAccount, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, a *domain.VendorLinkedAccount) error {
			linked = append(linked, a.VendorID)
			return nil
		},
	}
	principals := &accountmock.PrincipalRepo{
		GetByConsumerIDFn: func(ctx context.Context, cid string) (*domain.PrincipalAccount, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	bus := event.NewBus(log.New(&bytes.Buffer{}, "", 0))
	RegisterProvisioners(bus, NewUsecase(principals, vendors), "vendor-default", nil)

	bus.Publish(context.Background(), event.TypeConsumerOnboarded, event.ConsumerOnboarded{ConsumerID: consumerID})

	if len(linked) != 1 || linked[0] != "vendor-default" {
		t.Fatalf("linked = %v, want [vendor-default]", linked)
	}
}
