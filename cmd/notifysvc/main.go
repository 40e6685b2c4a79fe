package main

import (
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"

	config "github.com/finpay/finpay-services/configs"
	"github.com/finpay/finpay-services/internal/apisvc/events"
	"github.com/finpay/finpay-services/internal/db"
	nats "github.com/finpay/finpay-services/internal/nats"
	"github.com/finpay/finpay-services/internal/notifysvc/audit"
	"github.com/finpay/finpay-services/internal/notifysvc/broker"
	"github.com/finpay/finpay-services/internal/notifysvc/mailer"
	"github.com/finpay/finpay-services/internal/notifysvc/telegram"
)

const SERVICE_NAME = "notify"

func init() {
	instanceId := "001"
	config.Logging(SERVICE_NAME + "_service_" + instanceId)
	config.LoadEnv(SERVICE_NAME)
}

func main() {
	// Connect to NATS
	n, err := nats.Connect()
	if err != nil {
		log.Errorf("Error: unable to connect to NATS server %v", err)
		os.Exit(0)
	}

	defer n.Conn.Close()
	log.Printf("NATS connection established successfully %s", n.Url)

	// SMTP mailer
	m, err := mailer.FromEnv()
	if err != nil {
		log.Fatalf("Failed to configure mailer: %v", err)
	}

	// Telegram admin alerts (optional)
	t := telegram.FromEnv()

	// Mongo audit log with TTL cleanup
	mongoDB, cancelMongo, err := db.ConnectToMongo(os.Getenv("MONGO_URI"))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer cancelMongo()
	db.CreateTTLIndexForCollection(mongoDB, audit.Collection)
	log.Printf("mongo connection established successfully")

	b := broker.NewBroker(n.Conn, m, t, audit.NewLog(mongoDB))

	// queue group so a scaled-out notifysvc sends each email once
	sub, err := b.QueueSubscribe(events.TransactionEventsTopic, "notify")
	if err != nil {
		log.Errorf("Error: unable to subscribe to queue %v", err)
		os.Exit(0)
	}

	log.Infof("%s service consuming %s", SERVICE_NAME, events.TransactionEventsTopic)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	sub.Unsubscribe()
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
