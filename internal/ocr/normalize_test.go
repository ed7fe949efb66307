package ocr

import "testing"

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Fatalf("empty input should stay empty, got %q", got)
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got := Normalize("MILK   2%    3.49\n\n\nBREAD  2.99")
	want := "MILK 2 3.49\nBREAD 2.99"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalizeStripsTaxFlagSuffix(t *testing.T) {
	got := Normalize("KIT KAT MINI DUOS 1.49F")
	want := "KIT KAT MINI DUOS 1.49"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalizeFixesSpacedDollarSigns(t *testing.T) {
	got := Normalize("TOTAL $ 5")
	want := "TOTAL $5"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalizeBreaksMergedItemLines(t *testing.T) {
	// OCR often glues the next item's name onto the previous price token.
	got := Normalize("MILK 3.49 BREAD 2.99")
	want := "MILK 3.49\nBREAD 2.99"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalizeStripsNoiseCharacters(t *testing.T) {
	got := Normalize("COFFEE* ~4.99")
	want := "COFFEE 4.99"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"MILK   2%    3.49\n\n\nBREAD  2.99",
		"1 KIT KAT MINI DUOS 1.5Z 1.49F SUBTOTAL 10.47",
		"TOTAL $ 5\nTAX 0.40",
		"ACME   STORE\n\nMILK 3.49 BREAD 2.99 EGGS 4.29",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("normalize not idempotent for %q:\nonce:  %q\ntwice: %q", in, once, twice)
		}
	}
}
