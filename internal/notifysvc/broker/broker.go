package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"

	"github.com/finpay/finpay-services/internal/comm"
	"github.com/finpay/finpay-services/internal/notifysvc/audit"
	"github.com/finpay/finpay-services/internal/notifysvc/mailer"
	"github.com/finpay/finpay-services/internal/notifysvc/telegram"
)

// Broker consumes transaction events and dispatches the side effects:
// customer email, admin telegram alert, audit record.
type Broker struct {
	Conn     *nats.Conn
	Mailer   *mailer.Mailer
	Telegram *telegram.Notifier
	Audit    *audit.Log
}

func NewBroker(conn *nats.Conn, m *mailer.Mailer, t *telegram.Notifier, a *audit.Log) *Broker {
	return &Broker{
		Conn:     conn,
		Mailer:   m,
		Telegram: t,
		Audit:    a,
	}
}

// QueueSubscribe joins the notify queue group so a scaled-out notifysvc
// sends each email exactly once.
func (b *Broker) QueueSubscribe(topic, queueGroup string) (*nats.Subscription, error) {
	sub, err := b.Conn.QueueSubscribe(topic, queueGroup, b.handleMessages)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func (b *Broker) handleMessages(msgNats *nats.Msg) {
	message := &comm.WSMessage{}
	if err := json.Unmarshal(msgNats.Data, message); err != nil {
		log.Errorf("invalid WSMessage: %v", err)
		return
	}

	switch message.Type {
	case "transaction-event":
		b.handleTransactionEvent(message)
	default:
		log.Warnf("unknown message type: %s", message.Type)
	}
}

func (b *Broker) handleTransactionEvent(msg *comm.WSMessage) {
	var ev comm.TransactionEvent
	if err := json.Unmarshal(msg.Data, &ev); err != nil {
		log.Errorf("invalid TransactionEvent payload: %v", err)
		return
	}

	res := comm.DispatchResult{
		TransactionID: ev.TransactionID,
		Status:        ev.Status,
		Email:         ev.Email,
		Timestamp:     time.Now().Unix(),
	}

	tmpl, ok := mailer.TemplateFor(ev.TransactionType, ev.Status)
	if !ok {
		// PENDING and CANCELLED transitions are silent
		log.Infof("no email for %s transition to %s", ev.TransactionID, ev.Status)
	} else {
		res.Subject = tmpl.Subject
		if err := b.Mailer.Send(ev.Email, ev.FullName, tmpl, ev.TransactionID, ev.Amount); err != nil {
			log.Errorf("dispatch email for %s: %v", ev.TransactionID, err)
			res.Error = err.Error()
		} else {
			res.Sent = true
			log.Infof("sent %q to %s for %s", tmpl.Subject, ev.Email, ev.TransactionID)
		}
	}

	b.Telegram.SendNotification(fmt.Sprintf(
		"*%s* %s `%s`\nuser: %s (%d)\namount: %s",
		ev.TransactionType, ev.Status, ev.TransactionID, ev.FullName, ev.UserID, ev.Amount,
	))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	b.Audit.Record(ctx, res)
}
