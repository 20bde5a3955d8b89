package store

import (
	"context"
	"sync"
	"time"

	"learning-service/internal/models"
)

// MemoryLearnerStore is the in-memory fallback used when MongoDB is not
// configured. Listing preserves insertion order.
type MemoryLearnerStore struct {
	mu       sync.RWMutex
	learners map[string]*models.Learner
	order    []string
}

func NewMemoryLearnerStore() *MemoryLearnerStore {
	return &MemoryLearnerStore{learners: make(map[string]*models.Learner)}
}

func (s *MemoryLearnerStore) Create(ctx context.Context, learner *models.Learner) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.learners[learner.ID]; !exists {
		s.order = append(s.order, learner.ID)
	}
	s.learners[learner.ID] = learner
	return nil
}

func (s *MemoryLearnerStore) Get(ctx context.Context, id string) (*models.Learner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	learner, ok := s.learners[id]
	if !ok {
		return nil, ErrNotFound
	}
	return learner, nil
}

func (s *MemoryLearnerStore) List(ctx context.Context) ([]models.Learner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	learners := make([]models.Learner, 0, len(s.order))
	for _, id := range s.order {
		learners = append(learners, *s.learners[id])
	}
	return learners, nil
}

func (s *MemoryLearnerStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Learner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	learner, ok := s.learners[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyLearnerFields(learner, fields)
	learner.UpdatedAt = time.Now().UTC()
	return learner, nil
}

func (s *MemoryLearnerStore) AppendActivity(ctx context.Context, id string, activity models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	learner, ok := s.learners[id]
	if !ok {
		return ErrNotFound
	}
	learner.Activities = append(learner.Activities, activity)
	learner.ActivityCount++
	learner.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *MemoryLearnerStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.learners[id]; !ok {
		return ErrNotFound
	}
	delete(s.learners, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Field update maps come straight out of JSON binding, so numbers may
// arrive as float64 and arrays as []interface{}.
func applyLearnerFields(learner *models.Learner, fields map[string]interface{}) {
	for key, value := range fields {
		switch key {
		case "name":
			if v, ok := value.(string); ok {
				learner.Name = v
			}
		case "age":
			if v, ok := toInt(value); ok {
				learner.Age = v
			}
		case "gender":
			if v, ok := value.(string); ok {
				learner.Gender = v
			}
		case "learning_style":
			if v, ok := value.(string); ok {
				learner.LearningStyle = v
			}
		case "preferences":
			if v, ok := toStringSlice(value); ok {
				learner.Preferences = v
			}
		}
	}
}

func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	}
	return 0, false
}

func toStringSlice(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

type MemoryContentStore struct {
	mu       sync.RWMutex
	contents map[string]*models.Content
	order    []string
}

func NewMemoryContentStore() *MemoryContentStore {
	return &MemoryContentStore{contents: make(map[string]*models.Content)}
}

func (s *MemoryContentStore) Create(ctx context.Context, content *models.Content) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.contents[content.ID]; !exists {
		s.order = append(s.order, content.ID)
	}
	s.contents[content.ID] = content
	return nil
}

func (s *MemoryContentStore) Get(ctx context.Context, id string) (*models.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.contents[id]
	if !ok {
		return nil, ErrNotFound
	}
	return content, nil
}

func (s *MemoryContentStore) List(ctx context.Context) ([]models.Content, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	contents := make([]models.Content, 0, len(s.order))
	for _, id := range s.order {
		contents = append(contents, *s.contents[id])
	}
	return contents, nil
}

func (s *MemoryContentStore) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Content, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.contents[id]
	if !ok {
		return nil, ErrNotFound
	}
	applyContentFields(content, fields)
	content.UpdatedAt = time.Now().UTC()
	return content, nil
}

func (s *MemoryContentStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.contents[id]; !ok {
		return ErrNotFound
	}
	delete(s.contents, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func applyContentFields(content *models.Content, fields map[string]interface{}) {
	for key, value := range fields {
		switch key {
		case "title":
			if v, ok := value.(string); ok {
				content.Title = v
			}
		case "description":
			if v, ok := value.(string); ok {
				content.Description = v
			}
		case "content_type":
			if v, ok := value.(string); ok {
				content.ContentType = v
			}
		case "difficulty_level":
			if v, ok := value.(string); ok {
				content.DifficultyLevel = v
			}
		case "tags":
			if v, ok := toStringSlice(value); ok {
				content.Tags = v
			}
		case "estimated_duration":
			if v, ok := toInt(value); ok {
				content.EstimatedDuration = v
			}
		}
	}
}

type MemoryEngagementStore struct {
	mu          sync.RWMutex
	engagements map[string]*models.Engagement
	order       []string
}

func NewMemoryEngagementStore() *MemoryEngagementStore {
	return &MemoryEngagementStore{engagements: make(map[string]*models.Engagement)}
}

func (s *MemoryEngagementStore) Create(ctx context.Context, engagement *models.Engagement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.engagements[engagement.ID]; !exists {
		s.order = append(s.order, engagement.ID)
	}
	s.engagements[engagement.ID] = engagement
	return nil
}

func (s *MemoryEngagementStore) Get(ctx context.Context, id string) (*models.Engagement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	engagement, ok := s.engagements[id]
	if !ok {
		return nil, ErrNotFound
	}
	return engagement, nil
}

func (s *MemoryEngagementStore) List(ctx context.Context) ([]models.Engagement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	engagements := make([]models.Engagement, 0, len(s.order))
	for _, id := range s.order {
		engagements = append(engagements, *s.engagements[id])
	}
	return engagements, nil
}

func (s *MemoryEngagementStore) ListByLearner(ctx context.Context, learnerID string) ([]models.Engagement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var engagements []models.Engagement
	for _, id := range s.order {
		if s.engagements[id].LearnerID == learnerID {
			engagements = append(engagements, *s.engagements[id])
		}
	}
	return engagements, nil
}
