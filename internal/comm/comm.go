package comm

import (
	"encoding/json"
)

// WSMessage is the wrapper for everything pushed to admin feed sockets
// and everything published between services over NATS.
type WSMessage struct {
	Type     string          `json:"type"` // e.g. "transaction-event"
	Data     json.RawMessage `json:"data"`
	SocketId string          `json:"socketid,omitempty"`
}

// TransactionEvent is published on "transaction.events" whenever a deposit
// or withdraw transaction changes status. notifysvc turns it into an email,
// socketsvc broadcasts it to the admin live feed.
type TransactionEvent struct {
	TransactionID   string `json:"transaction_id"`
	TransactionType string `json:"transaction_type"` // DEPOSIT or WITHDRAW
	Status          string `json:"status"`
	Amount          string `json:"amount"`
	UserID          int64  `json:"user_id"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Timestamp       int64  `json:"timestamp"`
}

// DispatchResult is what notifysvc records in the audit log for every
// processed event, whether or not an email went out.
type DispatchResult struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Email         string `json:"email"`
	Subject       string `json:"subject"`
	Sent          bool   `json:"sent"`
	Error         string `json:"error,omitempty"`
	Timestamp     int64  `json:"timestamp"`
}
