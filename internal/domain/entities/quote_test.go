package entities

import "testing"

func TestQuote_FormattedTotal(t *testing.T) {
	for _, total := range []string{"250", "1,250.00", "12345678901234567.89", ""} {
		q := Quote{Total: total}
		if got := q.FormattedTotal(); got != total {
			t.Fatalf("expected %q, got %q", total, got)
		}
	}
}

func TestQuote_IsOwnedBy(t *testing.T) {
	q := Quote{CreatedBy: " U1 ", UserID: "U9"}
	if !q.IsOwnedBy("U1") {
		t.Fatalf("expected createdBy owner to match")
	}
	if q.IsOwnedBy("U9") || q.IsOwnedBy("u1") {
		t.Fatalf("expected only the trimmed, case-sensitive createdBy to match")
	}

	fallback := Quote{UserID: "U9"}
	if !fallback.IsOwnedBy(" U9 ") {
		t.Fatalf("expected userId fallback to match")
	}
	if (Quote{}).IsOwnedBy("") {
		t.Fatalf("expected ownerless quote to match nobody")
	}
}
