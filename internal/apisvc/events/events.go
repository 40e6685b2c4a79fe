package events

import (
	"encoding/json"

	"github.com/finpay/finpay-services/internal/comm"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

// TransactionEventsTopic carries every deposit/withdraw status change.
// notifysvc and socketsvc subscribe to it.
const TransactionEventsTopic = "transaction.events"

type Publisher struct {
	nc *nats.Conn
}

func NewPublisher(nc *nats.Conn) *Publisher {
	return &Publisher{nc: nc}
}

// PublishTransactionEvent is fire-and-forget: a failed publish is
// logged and dropped, the HTTP request does not see it.
func (p *Publisher) PublishTransactionEvent(ev comm.TransactionEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		log.Errorf("unable to marshal TransactionEvent: %v", err)
		return
	}

	msg := &comm.WSMessage{
		Type: "transaction-event",
		Data: data,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("Error marshaling WSMessage: %v", err)
		return
	}

	if err := p.nc.Publish(TransactionEventsTopic, payload); err != nil {
		log.Errorf("Failed to publish transaction event: %v", err)
	}
}
