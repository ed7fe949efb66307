package llm

import (
	"testing"
	"time"
)

var itemsReq = ItemsRequest{Date: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)}

func TestDecodeItemsEnvelope(t *testing.T) {
	raw := []byte(`{"items":[
		{"description":"MILK 2 PCT","amount":3.49},
		{"description":"WHOLE WHEAT BREAD","amount":"2.99"}
	]}`)
	items := DecodeItems(raw, itemsReq, nil)
	if len(items) != 2 {
		t.Fatalf("want 2 items, got %d", len(items))
	}
	if items[0].Amount != "3.49" || items[1].Amount != "2.99" {
		t.Fatalf("amounts not normalized: %q %q", items[0].Amount, items[1].Amount)
	}
	if items[0].ID == items[1].ID {
		t.Fatal("items share an ID")
	}
	if !items[0].Date.Equal(itemsReq.Date) {
		t.Fatalf("date not stamped: %v", items[0].Date)
	}
	if items[0].Source != "receipt-scan" {
		t.Fatalf("source not stamped: %q", items[0].Source)
	}
}

func TestDecodeItemsToleratesSummarySibling(t *testing.T) {
	raw := []byte(`{"items":[{"description":"ORANGE JUICE","amount":4.29}],
		"receiptSummary":{"subtotal":4.29,"tax":0.30,"total":4.59,"store":"ACME"}}`)
	items := DecodeItems(raw, itemsReq, nil)
	if len(items) != 1 || items[0].Description != "ORANGE JUICE" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestDecodeItemsBareArrayAndFence(t *testing.T) {
	raw := []byte("```json\n[{\"description\":\"ORANGE JUICE\",\"amount\":4.29}]\n```")
	items := DecodeItems(raw, itemsReq, nil)
	if len(items) != 1 || items[0].Description != "ORANGE JUICE" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestDecodeItemsProseWrappedFence(t *testing.T) {
	raw := []byte("Here is the extracted JSON:\n```json\n{\"items\":[{\"description\":\"ORANGE JUICE\",\"amount\":4.29}]}\n```\nHope this helps!")
	items := DecodeItems(raw, itemsReq, nil)
	if len(items) != 1 || items[0].Description != "ORANGE JUICE" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestDecodeItemsFiltersImplausibleRows(t *testing.T) {
	raw := []byte(`{"items":[
		{"description":"GROUND COFFEE","amount":8.99},
		{"description":"SUBTOTAL LINE","amount":22.47},
		{"description":"SALES TAX","amount":1.80},
		{"description":"CHANGE DUE","amount":5.00},
		{"description":"1234","amount":9.99},
		{"description":"AB12","amount":9.99},
		{"description":"PENNY CANDY STICK","amount":0.05},
		{"description":"FLAT SCREEN TELEVISION","amount":499.99},
		{"description":"FREE SAMPLE ITEM","amount":0},
		{"description":"BAD AMOUNT ROW","amount":"n/a"},
		{"amount":1.99}
	]}`)
	items := DecodeItems(raw, itemsReq, nil)
	if len(items) != 1 {
		t.Fatalf("want 1 surviving item, got %d: %+v", len(items), items)
	}
	if items[0].Description != "GROUND COFFEE" {
		t.Fatalf("wrong survivor: %q", items[0].Description)
	}
}

func TestDecodeItemsAmountBounds(t *testing.T) {
	raw := []byte(`{"items":[
		{"description":"EXACTLY A DIME","amount":0.10},
		{"description":"JUST OVER A DIME","amount":0.11},
		{"description":"EXACTLY A HUNDRED","amount":100.00},
		{"description":"OVER A HUNDRED","amount":100.01}
	]}`)
	items := DecodeItems(raw, itemsReq, nil)
	if len(items) != 2 {
		t.Fatalf("want 2 items, got %d: %+v", len(items), items)
	}
	if items[0].Description != "JUST OVER A DIME" || items[1].Description != "EXACTLY A HUNDRED" {
		t.Fatalf("wrong survivors: %+v", items)
	}
}

func TestDecodeItemsDollarPrefixedAmount(t *testing.T) {
	raw := []byte(`{"items":[{"description":"CHICKEN BREAST","amount":"$7.50"}]}`)
	items := DecodeItems(raw, itemsReq, nil)
	if len(items) != 1 || items[0].Amount != "7.50" {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestDecodeItemsDegradesOnMalformedPayload(t *testing.T) {
	for _, raw := range []string{
		`not json`,
		`I'm sorry, I could not find any items on this receipt.`,
		`{"rows":[]}`,
		`{"items":"none"}`,
		`{"items":[{"description":"MILK"`,
	} {
		if items := DecodeItems([]byte(raw), itemsReq, nil); len(items) != 0 {
			t.Fatalf("payload %q should degrade to zero items, got %+v", raw, items)
		}
	}
}

func TestDecodeItemsEmptyArrayYieldsNoItems(t *testing.T) {
	items := DecodeItems([]byte(`{"items":[]}`), itemsReq, nil)
	if len(items) != 0 {
		t.Fatalf("want no items, got %+v", items)
	}
}
