package menu

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestZeroValueResolvesToZero(t *testing.T) {
	var v Value[string]
	if !v.IsZero() {
		t.Fatalf("expected zero value")
	}
	if got := v.Peek(); got != "" {
		t.Fatalf("expected empty literal, got %q", got)
	}
}

func TestStaticValueDeliversSynchronouslyOnce(t *testing.T) {
	v := Static("battery")
	var got []string
	unsubscribe := v.Resolve(func(s string) { got = append(got, s) })
	unsubscribe()
	if diff := cmp.Diff([]string{"battery"}, got); diff != "" {
		t.Fatalf("unexpected deliveries (-want +got):\n%s", diff)
	}
	if literal, ok := v.Literal(); !ok || literal != "battery" {
		t.Fatalf("expected static literal, got %q ok=%v", literal, ok)
	}
}

func TestComputeValueEvaluatesPerResolution(t *testing.T) {
	calls := 0
	v := Compute(func() int { calls++; return calls })
	if got := v.Peek(); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := v.Peek(); got != 2 {
		t.Fatalf("expected fresh evaluation, got %d", got)
	}
	if _, ok := v.Literal(); ok {
		t.Fatalf("computed value must not report a literal")
	}
}

func TestWatchValueKeepsDeliveringUntilUnsubscribed(t *testing.T) {
	source := NewObservable(1)
	v := Watch[int](source)

	var got []int
	unsubscribe := v.Resolve(func(n int) { got = append(got, n) })
	source.Set(2)
	source.Set(3)
	unsubscribe()
	source.Set(4)

	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Fatalf("unexpected deliveries (-want +got):\n%s", diff)
	}
}

func TestObservableDeliversCurrentOnSubscribe(t *testing.T) {
	source := NewObservable("a")
	source.Set("b")

	var got []string
	unsubscribe := source.Subscribe(func(s string) { got = append(got, s) })
	defer unsubscribe()

	if diff := cmp.Diff([]string{"b"}, got); diff != "" {
		t.Fatalf("unexpected initial delivery (-want +got):\n%s", diff)
	}
	if source.Get() != "b" {
		t.Fatalf("expected current value b, got %q", source.Get())
	}
}

func TestSubscribableFuncAdapts(t *testing.T) {
	v := Watch[int](SubscribableFunc[int](func(callback func(int)) Unsubscribe {
		callback(7)
		return func() {}
	}))
	if got := v.Peek(); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}

func TestColorDimmedBlendsTowardBlack(t *testing.T) {
	dimmed := PrimaryColor.Dimmed(0.5)
	if dimmed == PrimaryColor {
		t.Fatalf("expected dimming to change the color")
	}
	if _, ok := dimmed.Parse(); !ok {
		t.Fatalf("expected dimmed color to stay parseable, got %q", dimmed)
	}
	if got := Color("").Dimmed(0.5); got != "" {
		t.Fatalf("expected empty color to stay empty, got %q", got)
	}
}
