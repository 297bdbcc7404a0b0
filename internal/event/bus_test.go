package event

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"
)

func TestPublish_DeliversToAllSubscribers(t *testing.T) {
	b := NewBus(nil)
	got := make([]string, 0, 2)

	b.Subscribe(TypeConsumerOnboarded, func(ctx context.Context, evt Envelope) error {
		got = append(got, "first")
		p, ok := evt.Payload.(ConsumerOnboarded)
		if !ok || p.ConsumerID != "c-1" {
			t.Fatalf("unexpected payload: %+v", evt.Payload)
		}
		return nil
	})
	b.Subscribe(TypeConsumerOnboarded, func(ctx context.Context, evt Envelope) error {
		got = append(got, "second")
		return nil
	})

	b.Publish(context.Background(), TypeConsumerOnboarded, ConsumerOnboarded{ConsumerID: "c-1"})

	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("delivery order = %v, want [first second]", got)
	}
}

func TestPublish_HandlerFailureDoesNotStopOthers(t *testing.T) {
	var buf bytes.Buffer
	b := NewBus(log.New(&buf, "", 0))

	secondRan := false
	b.Subscribe(TypeConsumerOnboarded, func(ctx context.Context, evt Envelope) error {
		return errors.New("vendor outage")
	})
	b.Subscribe(TypeConsumerOnboarded, func(ctx context.Context, evt Envelope) error {
		secondRan = true
		return nil
	})

	b.Publish(context.Background(), TypeConsumerOnboarded, ConsumerOnboarded{ConsumerID: "c-2"})

	if !secondRan {
		t.Fatal("second handler skipped after first failed")
	}
	if !bytes.Contains(buf.Bytes(), []byte("vendor outage")) {
		t.Fatalf("handler failure not logged: %q", buf.String())
	}
}

func TestPublish_NoSubscribersIsNoop(t *testing.T) {
	b := NewBus(nil)
	b.Publish(context.Background(), TypeApprovalGranted, ApprovalGranted{ApplicationID: "a-1"})
}

func TestPublish_EnvelopeFields(t *testing.T) {
	b := NewBus(nil)
	var seen Envelope
	b.Subscribe(TypeApprovalGranted, func(ctx context.Context, evt Envelope) error {
		seen = evt
		return nil
	})

	b.Publish(context.Background(), TypeApprovalGranted, ApprovalGranted{ApplicationID: "a-2", Amount: 10000})

	if seen.ID == "" {
		t.Fatal("envelope ID not set")
	}
	if seen.Type != TypeApprovalGranted {
		t.Fatalf("envelope type = %s", seen.Type)
	}
	if seen.OccurredAt.IsZero() {
		t.Fatal("envelope timestamp not set")
	}
}
