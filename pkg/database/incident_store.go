package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

var ErrIncidentManagerNotInitialized = errors.New("incident data manager not initialized")

// IncidentStore persists every detection in the "antispam_incidents"
// collection. It satisfies antispam.IncidentSink.
type IncidentStore struct {
	dm *DataManager[models.Incident]
	db *Database
}

// NewIncidentStore creates an IncidentStore backed by the global incident
// DataManager
func NewIncidentStore(db *Database) (*IncidentStore, error) {
	if GlobalIncidentDM == nil {
		return nil, ErrIncidentManagerNotInitialized
	}
	return &IncidentStore{dm: GlobalIncidentDM, db: db}, nil
}

// PublishIncident writes the incident without blocking the message path.
// A failed write only logs; detection history is best-effort.
func (is *IncidentStore) PublishIncident(inc *models.Incident) {
	record := *inc
	go func() {
		if _, err := is.dm.Set(bson.M{"_id": record.ID}, record); err != nil {
			logger.Error(fmt.Sprintf("Error guardando incidente %s: %v", record.ID, err), "IncidentStore")
		}
	}()
}

// Recent returns the newest incidents for a guild, newest first. An empty
// guildID returns incidents across all guilds.
func (is *IncidentStore) Recent(guildID string, limit int64) ([]*models.Incident, error) {
	if !is.db.Connected() {
		return nil, fmt.Errorf("database not connected")
	}

	col := is.db.GetCollection("antispam_incidents")
	if col == nil {
		return nil, ErrIncidentManagerNotInitialized
	}

	filter := bson.M{}
	if guildID != "" {
		filter["guildId"] = guildID
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.M{"timestamp": -1}).
		SetLimit(limit)

	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var incidents []*models.Incident
	for cursor.Next(ctx) {
		var inc models.Incident
		if err := cursor.Decode(&inc); err != nil {
			continue
		}
		incidents = append(incidents, &inc)
	}

	return incidents, cursor.Err()
}

// CountForGuild returns how many incidents a guild has accumulated
func (is *IncidentStore) CountForGuild(guildID string) (int64, error) {
	if !is.db.Connected() {
		return 0, fmt.Errorf("database not connected")
	}

	col := is.db.GetCollection("antispam_incidents")
	if col == nil {
		return 0, ErrIncidentManagerNotInitialized
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return col.CountDocuments(ctx, bson.M{"guildId": guildID})
}
