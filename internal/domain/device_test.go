package domain

import (
	"errors"
	"testing"
)

func TestAllStreamKinds_StableOrder(t *testing.T) {
	first := AllStreamKinds()
	second := AllStreamKinds()

	if len(first) != int(streamKindCount) {
		t.Fatalf("expected %d kinds, got %d", streamKindCount, len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("order differs at %d: %v vs %v", i, first[i], second[i])
		}
		if first[i] != StreamKind(i) {
			t.Errorf("kind %d out of enumeration order: %v", i, first[i])
		}
	}
}

func TestParseStreamKind(t *testing.T) {
	for _, k := range AllStreamKinds() {
		got, err := ParseStreamKind(k.String())
		if err != nil {
			t.Errorf("ParseStreamKind(%q) failed: %v", k.String(), err)
			continue
		}
		if got != k {
			t.Errorf("ParseStreamKind(%q) = %v, want %v", k.String(), got, k)
		}
	}

	if _, err := ParseStreamKind("eeg"); !errors.Is(err, ErrUnsupportedStream) {
		t.Errorf("expected ErrUnsupportedStream, got %v", err)
	}
}

func TestStreamKind_UnknownString(t *testing.T) {
	if got := StreamKind(200).String(); got != "stream(200)" {
		t.Errorf("unexpected name %q", got)
	}
}

func TestSubscribeError_Unwrap(t *testing.T) {
	cause := errors.New("driver busy")
	err := error(&SubscribeError{Kind: StreamWearableConsumer, Err: cause})

	if !errors.Is(err, cause) {
		t.Error("expected SubscribeError to unwrap to its cause")
	}
	var subErr *SubscribeError
	if !errors.As(err, &subErr) || subErr.Kind != StreamWearableConsumer {
		t.Errorf("expected kind wearable_consumer, got %v", err)
	}
	if err.Error() != "subscribe wearable_consumer: driver busy" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
