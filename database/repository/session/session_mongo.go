package sessionRepo

import (
	"context"
	"fmt"
	"time"

	"terapiku/database"
	"terapiku/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSessionRepo implements SessionRepository using MongoDB.
type MongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo constructs a new instance of MongoSessionRepo.
func NewMongoSessionRepo() SessionRepository {
	db := database.MongoClient.Database("terapiku")
	repo := &MongoSessionRepo{
		coll: db.Collection("therapy_sessions"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("warning: failed to ensure session indexes: %v\n", err)
	}
	return repo
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

// Insert persists a new session document.
func (repo *MongoSessionRepo) Insert(ctx context.Context, session *models.TherapySession) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("error inserting therapy session: %w", err)
	}
	return nil
}

// GetByID retrieves a session document by ID.
func (repo *MongoSessionRepo) GetByID(ctx context.Context, id string) (*models.TherapySession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var session models.TherapySession
	filter := bson.M{"id": id}
	if err := repo.coll.FindOne(ctx, filter).Decode(&session); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("therapy session with id %s not found", id)
		}
		return nil, fmt.Errorf("error fetching therapy session with id %s: %w", id, err)
	}
	return &session, nil
}

// ActiveTimes returns the occupied times for a therapist on a date,
// excluding cancelled sessions.
func (repo *MongoSessionRepo) ActiveTimes(ctx context.Context, therapistID, date string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"therapistId": therapistID,
		"date":        date,
		"status":      bson.M{"$ne": models.StatusCancelled},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding sessions for therapist %s on %s: %w", therapistID, date, err)
	}
	defer cursor.Close(ctx)

	var times []string
	for cursor.Next(ctx) {
		var session models.TherapySession
		if err := cursor.Decode(&session); err != nil {
			return nil, fmt.Errorf("error decoding therapy session: %w", err)
		}
		times = append(times, session.Time)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return times, nil
}

// HasActiveSession checks for a non-cancelled session at the exact
// therapist+date+time triple.
func (repo *MongoSessionRepo) HasActiveSession(ctx context.Context, therapistID, date, timeOfDay string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"therapistId": therapistID,
		"date":        date,
		"time":        timeOfDay,
		"status":      bson.M{"$ne": models.StatusCancelled},
	}
	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("error checking session conflict: %w", err)
	}
	return count > 0, nil
}

// UpdateStatus sets the status and audit stamp on a single session document.
func (repo *MongoSessionRepo) UpdateStatus(ctx context.Context, id, status string, audit models.StatusAudit) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"status":         status,
		"statusDiupdate": audit,
	}}
	result, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating status of session %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("therapy session with id %s not found", id)
	}
	return nil
}

// ListByDate returns every session on the given date.
func (repo *MongoSessionRepo) ListByDate(ctx context.Context, date string) ([]models.TherapySession, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"date": date})
	if err != nil {
		return nil, fmt.Errorf("error listing sessions for %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var sessions []models.TherapySession
	for cursor.Next(ctx) {
		var session models.TherapySession
		if err := cursor.Decode(&session); err != nil {
			return nil, fmt.Errorf("error decoding therapy session: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return sessions, nil
}
