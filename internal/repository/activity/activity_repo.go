// Package activity writes one audit document per mutation to Mongo.
// Recording is best-effort: a failed write is logged and dropped, it never
// blocks or fails the mutation that triggered it.
package activity

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	mg "fenix_office/internal/config/connections/mongo"
	"fenix_office/internal/logger"
)

const collection = "activity_log"

type Repo struct {
	mongo *mg.Mongo
}

func NewRepo(m *mg.Mongo) *Repo {
	return &Repo{mongo: m}
}

func (r *Repo) Record(action, entity, entityID, userID string) {
	if r == nil || r.mongo == nil || r.mongo.Database == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := r.mongo.Database.Collection(collection).InsertOne(ctx, bson.M{
		"action":    action,
		"entity":    entity,
		"entity_id": entityID,
		"user_id":   userID,
		"at":        time.Now(),
	})
	if err != nil {
		log := logger.WithComponent("activity")
		log.Warn().Err(err).
			Str("action", action).
			Str("entity", entity).
			Msg("audit record dropped")
	}
}
