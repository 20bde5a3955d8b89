package store

import (
	"context"
	"time"

	"learning-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoLearnerStore struct {
	Col *mongo.Collection
}

func NewMongoLearnerStore(db *mongo.Database) *MongoLearnerStore {
	return &MongoLearnerStore{Col: db.Collection("learners")}
}

func (s *MongoLearnerStore) Create(ctx context.Context, learner *models.Learner) error {
	_, err := s.Col.InsertOne(ctx, learner)
	return err
}

func (s *MongoLearnerStore) Get(ctx context.Context, id string) (*models.Learner, error) {
	var learner models.Learner
	err := s.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&learner)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &learner, nil
}

func (s *MongoLearnerStore) List(ctx context.Context) ([]models.Learner, error) {
	cur, err := s.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var learners []models.Learner
	for cur.Next(ctx) {
		var l models.Learner
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		learners = append(learners, l)
	}
	return learners, cur.Err()
}

func (s *MongoLearnerStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Learner, error) {
	fields["updated_at"] = time.Now().UTC()
	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)
	var learner models.Learner
	err := s.Col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&learner)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &learner, nil
}

func (s *MongoLearnerStore) AppendActivity(ctx context.Context, id string, activity models.Activity) error {
	update := bson.M{
		"$push": bson.M{"activities": activity},
		"$inc":  bson.M{"activity_count": 1},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	}
	res, err := s.Col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoLearnerStore) Delete(ctx context.Context, id string) error {
	res, err := s.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type MongoContentStore struct {
	Col *mongo.Collection
}

func NewMongoContentStore(db *mongo.Database) *MongoContentStore {
	return &MongoContentStore{Col: db.Collection("contents")}
}

func (s *MongoContentStore) Create(ctx context.Context, content *models.Content) error {
	_, err := s.Col.InsertOne(ctx, content)
	return err
}

func (s *MongoContentStore) Get(ctx context.Context, id string) (*models.Content, error) {
	var content models.Content
	err := s.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&content)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// List returns the catalog ordered by creation time so ranking ties
// resolve the same way across calls.
func (s *MongoContentStore) List(ctx context.Context) ([]models.Content, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var contents []models.Content
	for cur.Next(ctx) {
		var c models.Content
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		contents = append(contents, c)
	}
	return contents, cur.Err()
}

func (s *MongoContentStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Content, error) {
	fields["updated_at"] = time.Now().UTC()
	after := options.After
	opts := options.FindOneAndUpdate().SetReturnDocument(after)
	var content models.Content
	err := s.Col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&content)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

func (s *MongoContentStore) Delete(ctx context.Context, id string) error {
	res, err := s.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type MongoEngagementStore struct {
	Col *mongo.Collection
}

func NewMongoEngagementStore(db *mongo.Database) *MongoEngagementStore {
	return &MongoEngagementStore{Col: db.Collection("engagements")}
}

func (s *MongoEngagementStore) Create(ctx context.Context, engagement *models.Engagement) error {
	_, err := s.Col.InsertOne(ctx, engagement)
	return err
}

func (s *MongoEngagementStore) Get(ctx context.Context, id string) (*models.Engagement, error) {
	var engagement models.Engagement
	err := s.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&engagement)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &engagement, nil
}

func (s *MongoEngagementStore) List(ctx context.Context) ([]models.Engagement, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoEngagementStore) ListByLearner(ctx context.Context, learnerID string) ([]models.Engagement, error) {
	return s.find(ctx, bson.M{"learner_id": learnerID})
}

func (s *MongoEngagementStore) find(ctx context.Context, filter bson.M) ([]models.Engagement, error) {
	cur, err := s.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var engagements []models.Engagement
	for cur.Next(ctx) {
		var e models.Engagement
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		engagements = append(engagements, e)
	}
	return engagements, cur.Err()
}
