package service

import (
	"context"
)

type ImageService struct {
	store ImageStore
}

func NewImageService(store ImageStore) *ImageService {
	return &ImageService{store: store}
}

func (s *ImageService) ImageURL(ctx context.Context, filename string) (string, error) {
	return s.store.PresignGet(ctx, filename)
}

func (s *ImageService) Upload(ctx context.Context, filename, contentType string, body []byte) (string, string, error) {
	return s.store.Upload(ctx, filename, contentType, body)
}

var _ ImageServiceInterface = (*ImageService)(nil)
