package request

import "testing"

func TestSendQuoteEmailRequest_Resolve(t *testing.T) {
	r := SendQuoteEmailRequest{QuoteID: " Q1 ", ClientEmail: " client@example.com "}
	if got := r.ResolveQuoteID(); got != "Q1" {
		t.Fatalf("expected Q1, got %q", got)
	}
	if got := r.ResolveClientEmail(); got != "client@example.com" {
		t.Fatalf("expected client@example.com, got %q", got)
	}
	if !r.HasRequiredFields() {
		t.Fatalf("expected required fields to be present")
	}
}

func TestSendQuoteEmailRequest_HasRequiredFields(t *testing.T) {
	cases := []SendQuoteEmailRequest{
		{},
		{QuoteID: "Q1"},
		{ClientEmail: "client@example.com"},
		{QuoteID: "   ", ClientEmail: "client@example.com"},
	}
	for _, r := range cases {
		if r.HasRequiredFields() {
			t.Fatalf("expected missing fields for %+v", r)
		}
	}
}

func TestQuoteViewedRequest_ResolveQuoteID(t *testing.T) {
	if got := (QuoteViewedRequest{QuoteID: "\tQ1\n"}).ResolveQuoteID(); got != "Q1" {
		t.Fatalf("expected Q1, got %q", got)
	}
	if got := (QuoteViewedRequest{QuoteID: "  "}).ResolveQuoteID(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
