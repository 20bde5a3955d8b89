package service

import (
	"context"

	"learning-service/internal/models"
	"learning-service/internal/store"
)

type ContentService struct {
	Contents store.ContentStore
}

func NewContentService(contents store.ContentStore) *ContentService {
	return &ContentService{Contents: contents}
}

func (s *ContentService) CreateContent(ctx context.Context, content *models.Content) error {
	return s.Contents.Create(ctx, content)
}

func (s *ContentService) GetContent(ctx context.Context, id string) (*models.Content, error) {
	return s.Contents.Get(ctx, id)
}

func (s *ContentService) ListContents(ctx context.Context) ([]models.Content, error) {
	return s.Contents.List(ctx)
}

func (s *ContentService) UpdateContent(ctx context.Context, id string, fields map[string]interface{}) (*models.Content, error) {
	return s.Contents.Update(ctx, id, fields)
}

func (s *ContentService) DeleteContent(ctx context.Context, id string) error {
	return s.Contents.Delete(ctx, id)
}
