package api

import "time"

// TransactionRecord is the wire representation of a single ledger
// transaction exchanged between client and server.
type TransactionRecord struct {
	OccurredAt    time.Time  `json:"occurred_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty"`
	ID            string     `json:"id"`
	Owner         string     `json:"owner"`
	Currency      string     `json:"currency"`
	Memo          string     `json:"memo,omitempty"`
	MediaRef      string     `json:"media_ref,omitempty"`
	MediaLocation string     `json:"media_location,omitempty"`
	Amount        int64      `json:"amount"`
}

// BulkUpsertRequest carries a batch of locally modified transactions
// to the server in a single call. The call is idempotent: re-sending
// the same batch produces the same result.
type BulkUpsertRequest struct {
	Owner   string              `json:"owner"`
	Records []TransactionRecord `json:"records"`
}

// BulkUpsertResponse reports which records the server accepted and
// which it rejected. A record may be rejected when the server already
// holds a strictly newer version.
type BulkUpsertResponse struct {
	SyncedIDs []string `json:"synced_ids"`
	FailedIDs []string `json:"failed_ids"`
}

// QueryResponse is the server reply to a transaction query.
type QueryResponse struct {
	Records []TransactionRecord `json:"records"`
}
