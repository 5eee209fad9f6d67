package entities

import (
	"encoding/json"
	"testing"
)

func TestCustomerSplitName(t *testing.T) {
	cases := []struct {
		nome, first, last string
	}{
		{"Maria Silva", "Maria", "Silva"},
		{"Maria da Silva Santos", "Maria", "da Silva Santos"},
		{"Maria", "Maria", "Cliente"},
		{"  Ana  Paula ", "Ana", "Paula"},
	}
	for _, tc := range cases {
		first, last := Customer{Nome: tc.nome}.SplitName()
		if first != tc.first || last != tc.last {
			t.Fatalf("SplitName(%q) = %q, %q; want %q, %q", tc.nome, first, last, tc.first, tc.last)
		}
	}
}

func TestNumericStringUnmarshal(t *testing.T) {
	var p OrderPayload
	if err := json.Unmarshal([]byte(`{"total":"49.90"}`), &p); err != nil || p.Total != "49.90" {
		t.Fatalf("quoted total: got %q err=%v", p.Total, err)
	}
	if err := json.Unmarshal([]byte(`{"total":49.9}`), &p); err != nil || p.Total != "49.9" {
		t.Fatalf("bare total: got %q err=%v", p.Total, err)
	}
	if err := json.Unmarshal([]byte(`{"total":null}`), &p); err != nil || p.Total != "" {
		t.Fatalf("null total: got %q err=%v", p.Total, err)
	}
	if err := json.Unmarshal([]byte(`{"total":true}`), &p); err == nil {
		t.Fatalf("expected error for boolean total")
	}
}

func TestResourceIDUnmarshal(t *testing.T) {
	var n WebhookNotification
	if err := json.Unmarshal([]byte(`{"type":"payment","data":{"id":"123"}}`), &n); err != nil || n.Data.ID != "123" {
		t.Fatalf("string id: got %q err=%v", n.Data.ID, err)
	}
	if err := json.Unmarshal([]byte(`{"type":"payment","data":{"id":98765432101}}`), &n); err != nil || n.Data.ID != "98765432101" {
		t.Fatalf("numeric id: got %q err=%v", n.Data.ID, err)
	}
}

func TestOrderStatusRank(t *testing.T) {
	if OrderStatusAwaitingPayment.Rank() >= OrderStatusRejected.Rank() {
		t.Fatalf("awaiting payment must rank below a failed attempt")
	}
	if OrderStatusRejected.Rank() != OrderStatusCancelled.Rank() {
		t.Fatalf("failed attempts must share a rank")
	}
	if OrderStatusPaid.Rank() <= OrderStatusRejected.Rank() {
		t.Fatalf("paid must rank above a failed attempt")
	}
	if OrderStatusRefunded.Rank() <= OrderStatusPaid.Rank() {
		t.Fatalf("refunded must rank above paid")
	}
	if OrderStatus("weird").Rank() != 0 {
		t.Fatalf("unknown status must rank 0")
	}
}

func TestOrderStatusReplaces(t *testing.T) {
	cases := []struct {
		name        string
		next        OrderStatus
		stored      OrderStatus
		samePayment bool
		want        bool
	}{
		{"same payment moves forward", OrderStatusPaid, OrderStatusAwaitingPayment, true, true},
		{"same payment late pending", OrderStatusAwaitingPayment, OrderStatusPaid, true, false},
		{"same payment replayed rejection", OrderStatusRejected, OrderStatusRejected, true, false},
		{"same payment cancelled after rejected", OrderStatusCancelled, OrderStatusRejected, true, false},
		{"retry approved after decline", OrderStatusPaid, OrderStatusRejected, false, true},
		{"retry approved after expired pix", OrderStatusPaid, OrderStatusCancelled, false, true},
		{"retry declined again", OrderStatusRejected, OrderStatusRejected, false, true},
		{"new pix after decline", OrderStatusAwaitingPayment, OrderStatusRejected, false, true},
		{"old attempt declined after paid", OrderStatusRejected, OrderStatusPaid, false, false},
		{"old attempt pending after paid", OrderStatusAwaitingPayment, OrderStatusPaid, false, false},
		{"refund after paid", OrderStatusRefunded, OrderStatusPaid, true, true},
	}
	for _, tc := range cases {
		if got := tc.next.Replaces(tc.stored, tc.samePayment); got != tc.want {
			t.Fatalf("%s: %s.Replaces(%s, %v) = %v, want %v", tc.name, tc.next, tc.stored, tc.samePayment, got, tc.want)
		}
	}
}

func TestOrderPayloadItemsAreOpaque(t *testing.T) {
	var p OrderPayload
	body := `{"total":"49.90","items":[{"id":7,"price":"49.90","quantity":1},{"sku":"x","price":10.5}]}`
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(p.Items))
	}
}

func TestOutcomeFromStatus(t *testing.T) {
	for _, s := range []string{"approved", "pending", "rejected", "cancelled", "refunded"} {
		if got := OutcomeFromStatus(s); string(got) != s {
			t.Fatalf("OutcomeFromStatus(%q) = %q", s, got)
		}
	}
	for _, s := range []string{"", "in_process", "charged_back", "APPROVED"} {
		if got := OutcomeFromStatus(s); got != PaymentOutcomeUnrecognized {
			t.Fatalf("OutcomeFromStatus(%q) = %q, want unrecognized", s, got)
		}
	}
}
