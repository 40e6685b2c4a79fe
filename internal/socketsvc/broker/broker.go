package broker

import (
	"encoding/json"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/finpay/finpay-services/internal/comm"
)

// Broker relays transaction events from NATS to the connected admin
// dashboard sockets.
type Broker struct {
	Conn      *nats.Conn
	Broadcast func(*comm.WSMessage)
}

func NewBroker(conn *nats.Conn, fncBroadcast func(*comm.WSMessage)) *Broker {
	return &Broker{
		Conn:      conn,
		Broadcast: fncBroadcast,
	}
}

func (b *Broker) Subscribe(topic string) (*nats.Subscription, error) {
	sub, err := b.Conn.Subscribe(topic, b.handleMessages)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func (b *Broker) handleMessages(msgNats *nats.Msg) {
	message := &comm.WSMessage{}
	err := json.Unmarshal(msgNats.Data, &message)
	if err != nil {
		log.Errorf("Error %s", err)
		return
	}

	switch message.Type {
	case "transaction-event":
		b.Broadcast(message)
	default:
		log.Warnf("unknown message type: %s", message.Type)
	}
}
