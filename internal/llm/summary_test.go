package llm

import (
	"testing"

	"github.com/xpenseai/expense-tracker/internal/entity"
)

func TestDecodeSummaryHappyPath(t *testing.T) {
	raw := []byte(`{"subtotal":"20.67","tax":"1.80","total":"22.47","store":"ACME MARKET"}`)
	got := DecodeSummary(raw, nil)
	want := entity.ReceiptSummary{Subtotal: "20.67", Tax: "1.80", Total: "22.47", Store: "ACME MARKET"}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestDecodeSummaryCoercesNumbersAndFences(t *testing.T) {
	raw := []byte("```json\n{\"subtotal\":20.666,\"tax\":\"$1.80\",\"total\":22.47,\"store\":\" ACME \"}\n```")
	got := DecodeSummary(raw, nil)
	if got.Subtotal != "20.67" || got.Tax != "1.80" || got.Total != "22.47" || got.Store != "ACME" {
		t.Fatalf("got %+v", got)
	}
}

func TestDecodeSummaryDegradesToZero(t *testing.T) {
	zero := entity.ZeroSummary()
	for _, raw := range []string{
		`garbage`,
		`[1,2,3]`,
		`{"subtotal":null,"tax":"n/a","total":{},"store":""}`,
		``,
	} {
		if got := DecodeSummary([]byte(raw), nil); got != zero {
			t.Fatalf("payload %q: got %+v, want zero summary", raw, got)
		}
	}
}

func TestZeroSummaryShape(t *testing.T) {
	z := entity.ZeroSummary()
	if z.Subtotal != "0.00" || z.Tax != "0.00" || z.Total != "0.00" || z.Store != "" {
		t.Fatalf("zero summary drifted: %+v", z)
	}
}
