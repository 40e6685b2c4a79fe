// Package audit records every processed transaction event in MongoDB.
// Documents expire via the TTL index on expires_at, so the collection
// stays a rolling window rather than an ever-growing log.
package audit

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/finpay/finpay-services/internal/comm"
)

const Collection = "dispatch_audit"

// retention before the TTL index removes a dispatch record
const retention = 90 * 24 * time.Hour

type Log struct {
	col *mongo.Collection
}

func NewLog(db *mongo.Database) *Log {
	return &Log{col: db.Collection(Collection)}
}

// Record inserts one dispatch result. Failures are logged and dropped;
// a lost audit row must not block notification delivery.
func (l *Log) Record(ctx context.Context, res comm.DispatchResult) {
	doc := bson.M{
		"transaction_id": res.TransactionID,
		"status":         res.Status,
		"email":          res.Email,
		"subject":        res.Subject,
		"sent":           res.Sent,
		"error":          res.Error,
		"timestamp":      res.Timestamp,
		"expires_at":     time.Now().Add(retention),
	}

	if _, err := l.col.InsertOne(ctx, doc); err != nil {
		log.Errorf("failed to record dispatch audit for %s: %v", res.TransactionID, err)
	}
}
