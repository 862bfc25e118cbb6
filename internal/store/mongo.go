package store

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/basilalnjjar47-svg/quran-platform-server/internal/models"
)

// Connect opens the Mongo client and pings it before returning the database.
func Connect(uri, dbName string) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return client.Database(dbName), nil
}

// MongoUserStore keeps user documents in the "users" collection with a
// unique index on the membership id.
type MongoUserStore struct {
	col *mongo.Collection
}

func NewMongoUserStore(db *mongo.Database) (*MongoUserStore, error) {
	col := db.Collection("users")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}
	return &MongoUserStore{col: col}, nil
}

func (s *MongoUserStore) Create(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.Schedule == nil {
		u.Schedule = []models.ScheduleEntry{}
	}
	if u.Attendance == nil {
		u.Attendance = []models.AttendanceEntry{}
	}
	_, err := s.col.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateID
	}
	return err
}

func (s *MongoUserStore) GetByMemberID(ctx context.Context, memberID string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"id": memberID}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *MongoUserStore) All(ctx context.Context) ([]models.User, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoUserStore) FindByRole(ctx context.Context, role string) ([]models.User, error) {
	return s.find(ctx, bson.M{"role": role})
}

func (s *MongoUserStore) FindStudentsByTeacher(ctx context.Context, teacherID string) ([]models.User, error) {
	return s.find(ctx, bson.M{"role": models.RoleStudent, "teacherId": teacherID})
}

func (s *MongoUserStore) find(ctx context.Context, filter bson.M) ([]models.User, error) {
	cursor, err := s.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *MongoUserStore) Delete(ctx context.Context, memberID string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"id": memberID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoUserStore) CountByRole(ctx context.Context, role string) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"role": role})
}

func (s *MongoUserStore) ReplaceSchedule(ctx context.Context, memberID string, entries []models.ScheduleEntry) error {
	if entries == nil {
		entries = []models.ScheduleEntry{}
	}
	res, err := s.col.UpdateOne(ctx,
		bson.M{"id": memberID},
		bson.M{"$set": bson.M{"schedule": entries}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoUserStore) UpdateSessionLink(ctx context.Context, memberID, link string, active bool) error {
	// Only the first schedule entry carries the live session slot.
	res, err := s.col.UpdateOne(ctx,
		bson.M{"id": memberID, "schedule.0": bson.M{"$exists": true}},
		bson.M{"$set": bson.M{
			"schedule.0.sessionLink":   link,
			"schedule.0.sessionActive": active,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing user from an empty schedule.
		n, err := s.col.CountDocuments(ctx, bson.M{"id": memberID})
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
	}
	return nil
}

func (s *MongoUserStore) UpsertAttendance(ctx context.Context, date string, records []AttendanceRecord) error {
	for _, rec := range records {
		res, err := s.col.UpdateOne(ctx,
			bson.M{"id": rec.StudentID},
			bson.M{"$pull": bson.M{"attendance": bson.M{"date": date}}},
		)
		if err != nil {
			log.Printf("attendance pull failed for %s: %v", rec.StudentID, err)
			continue
		}
		if res.MatchedCount == 0 {
			// Unknown student, skip the record.
			continue
		}
		_, err = s.col.UpdateOne(ctx,
			bson.M{"id": rec.StudentID},
			bson.M{"$push": bson.M{"attendance": models.AttendanceEntry{Date: date, Status: rec.Status}}},
		)
		if err != nil {
			log.Printf("attendance push failed for %s: %v", rec.StudentID, err)
		}
	}
	return nil
}

// MongoSlideStore keeps announcement slides in the "slides" collection.
type MongoSlideStore struct {
	col *mongo.Collection
}

func NewMongoSlideStore(db *mongo.Database) *MongoSlideStore {
	return &MongoSlideStore{col: db.Collection("slides")}
}

func (s *MongoSlideStore) Create(ctx context.Context, slide *models.Slide) error {
	if slide.ID.IsZero() {
		slide.ID = primitive.NewObjectID()
	}
	_, err := s.col.InsertOne(ctx, slide)
	return err
}

func (s *MongoSlideStore) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Slide, error) {
	var slide models.Slide
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&slide)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &slide, nil
}

func (s *MongoSlideStore) All(ctx context.Context) ([]models.Slide, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoSlideStore) Active(ctx context.Context) ([]models.Slide, error) {
	return s.find(ctx, bson.M{"isActive": true})
}

func (s *MongoSlideStore) find(ctx context.Context, filter bson.M) ([]models.Slide, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	slides := []models.Slide{}
	if err := cursor.All(ctx, &slides); err != nil {
		return nil, err
	}
	return slides, nil
}

func (s *MongoSlideStore) Update(ctx context.Context, slide *models.Slide) error {
	res, err := s.col.ReplaceOne(ctx, bson.M{"_id": slide.ID}, slide)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoSlideStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
