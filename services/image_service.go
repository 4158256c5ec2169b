package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"newsroom-cms/models"
	"newsroom-cms/repositories"

	"github.com/rs/zerolog/log"
)

type ImageService interface {
	CreateImage(ctx context.Context, req models.CreateImageRequest) (*models.Image, error)
	DeleteImage(ctx context.Context, id uint) error
}

type imageService struct {
	imageRepo repositories.ImageRepository
	mediaRoot string
}

func NewImageService(imageRepo repositories.ImageRepository, mediaRoot string) ImageService {
	return &imageService{imageRepo: imageRepo, mediaRoot: mediaRoot}
}

func (s *imageService) CreateImage(ctx context.Context, req models.CreateImageRequest) (*models.Image, error) {
	filename := filepath.ToSlash(filepath.Clean(req.Filename))
	if filepath.IsAbs(filename) || strings.HasPrefix(filename, "../") || filename == ".." {
		return nil, models.ErrorValidation{Message: "filename must be relative to the media root"}
	}
	image := &models.Image{Filename: filename, Title: req.Title}
	if err := s.imageRepo.Create(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *imageService) DeleteImage(ctx context.Context, id uint) error {
	return s.imageRepo.Delete(ctx, id, s.removeFiles)
}

// ImageFiles lists the original and every sized variant of an image,
// relative to the media root.
func ImageFiles(image models.Image) []string {
	files := []string{image.Filename}
	base := strings.TrimSuffix(image.Filename, filepath.Ext(image.Filename))
	for size := range models.ImageSizes {
		files = append(files, base+"-"+size+".jpg")
	}
	return files
}

// removeFiles deletes image files after the row is gone. Missing files
// are ignored.
func (s *imageService) removeFiles(image models.Image) error {
	var errs []error
	for _, name := range ImageFiles(image) {
		path := filepath.Join(s.mediaRoot, filepath.FromSlash(name))
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		log.Warn().Err(err).Uint("image_id", image.ID).Msg("removing image files")
	}
	return nil
}
