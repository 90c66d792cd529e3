package tests

import (
	"context"
	"testing"

	"github.com/aretw0/venvctl/pkg/ports"
)

// ConfirmerFactory builds a Confirmer that will receive answer as the user's reply.
type ConfirmerFactory func(answer string) ports.Confirmer

// ConfirmerContractTest is a reusable test suite that verifies if an adapter complies with ports.Confirmer.
func ConfirmerContractTest(t *testing.T, factory ConfirmerFactory) {
	t.Helper()

	cases := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{"n", false},
		{"yes", false},
		{"", false},
	}

	for _, tc := range cases {
		t.Run("Answer_"+tc.answer, func(t *testing.T) {
			got, err := factory(tc.answer).Confirm(context.Background(), "Proceed? (y/n): ")
			if err != nil {
				t.Fatalf("unexpected error for answer %q: %v", tc.answer, err)
			}
			if got != tc.want {
				t.Errorf("answer %q: got %v, want %v", tc.answer, got, tc.want)
			}
		})
	}

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := factory("y").Confirm(ctx, "Proceed? (y/n): "); err == nil {
			t.Error("expected error for cancelled context, got nil")
		}
	})
}
