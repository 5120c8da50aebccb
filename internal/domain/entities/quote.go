package entities

import (
	"strings"
	"time"
)

// Quote is the priced proposal persisted in the quotes table.
//
// Quotes are created and owned by the quoting app; this service only reads
// them and flips the view-tracking fields.
//
// Total keeps the stored N or S value as text so emails carry it unchanged.
//
// Storage model (DynamoDB):
//   - PK: id
//   - viewed / viewedAt are written on every tracked view (last write wins)
type Quote struct {
	ID        string    `json:"id"`
	Total     string    `json:"total"`
	CreatedBy string    `json:"createdBy,omitempty"`
	UserID    string    `json:"userId,omitempty"`
	Viewed    bool      `json:"viewed"`
	ViewedAt  time.Time `json:"viewedAt,omitempty"`
}

// CreatorID resolves the owner of the quote. createdBy wins over userId.
func (q Quote) CreatorID() string {
	if v := strings.TrimSpace(q.CreatedBy); v != "" {
		return v
	}
	return strings.TrimSpace(q.UserID)
}

// IsOwnedBy reports whether subject matches the quote creator (trimmed, case-sensitive).
func (q Quote) IsOwnedBy(subject string) bool {
	creator := q.CreatorID()
	return creator != "" && creator == strings.TrimSpace(subject)
}

// FormattedTotal renders the total exactly as stored.
func (q Quote) FormattedTotal() string {
	return q.Total
}

// ViewSource identifies which entry point recorded a quote view.
type ViewSource string

const (
	ViewSourceExplicit ViewSource = "explicit"
	ViewSourcePixel    ViewSource = "pixel"
)
