package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"shelf-assist-be/internal/pkg/apperrors"
	"shelf-assist-be/internal/pkg/logger"
	"shelf-assist-be/internal/repository/memory"
	"shelf-assist-be/pkg/detector"
	"shelf-assist-be/pkg/store"
)

const uploadedImageName = "image_.jpg"

// IExtractionService turns a raw image upload into an ordered list of
// cropped candidate regions, kept as the current session.
type IExtractionService interface {
	// SaveUpload purges the working area and persists the uploaded image,
	// applying the fixed camera-orientation correction when it decodes.
	SaveUpload(ctx context.Context, imageBytes []byte) (imagePath, filename string, err error)

	// ExtractCandidates runs detection on the saved image and materializes
	// one crop per predicted region, in prediction order.
	ExtractCandidates(ctx context.Context, imagePath string) (*store.Session, error)
}

type extractionService struct {
	uploadDir string
	detector  detector.Provider
	sessions  *memory.SessionRepository
	logger    logger.ILogger
}

func NewExtractionService(
	uploadDir string,
	det detector.Provider,
	sessions *memory.SessionRepository,
	sysLogger logger.ILogger,
) IExtractionService {
	return &extractionService{
		uploadDir: uploadDir,
		detector:  det,
		sessions:  sessions,
		logger:    sysLogger,
	}
}

func (s *extractionService) SaveUpload(ctx context.Context, imageBytes []byte) (string, string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", "", apperrors.Wrap(apperrors.KindUnexpected, "image.save", "could not create upload dir", err)
	}

	s.purgeUploadDir()

	imagePath := filepath.Join(s.uploadDir, uploadedImageName)

	// The camera delivers frames upside down; rotate when the bytes decode.
	// Undecodable uploads are persisted as-is rather than rejected.
	img, err := imaging.Decode(bytes.NewReader(imageBytes))
	if err == nil {
		img = imaging.Rotate180(img)
		if saveErr := imaging.Save(img, imagePath); saveErr == nil {
			s.logger.Info("image", "Received and rotated image", map[string]interface{}{"filename": uploadedImageName})
			return imagePath, uploadedImageName, nil
		}
	}

	if writeErr := os.WriteFile(imagePath, imageBytes, 0o644); writeErr != nil {
		return "", "", apperrors.Wrap(apperrors.KindUnexpected, "image.save", "could not persist image", writeErr)
	}
	s.logger.Info("image", "Received unrotated image", map[string]interface{}{"filename": uploadedImageName})
	return imagePath, uploadedImageName, nil
}

func (s *extractionService) ExtractCandidates(ctx context.Context, imagePath string) (*store.Session, error) {
	predictions, err := s.detector.Infer(ctx, imagePath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindCollaborator, "image.detect", "detection failed", err)
	}
	s.logger.Info("image", "Detection finished", map[string]interface{}{"objects": len(predictions)})

	src, err := imaging.Open(imagePath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindCollaborator, "image.crop", "saved image is not decodable", err)
	}

	candidates := make([]string, 0, len(predictions))
	for _, p := range predictions {
		rect := image.Rect(
			int(p.X-p.Width/2),
			int(p.Y-p.Height/2),
			int(p.X+p.Width/2),
			int(p.Y+p.Height/2),
		)
		cropped := imaging.Crop(src, rect)

		randomName := strings.ReplaceAll(uuid.NewString(), "-", "")
		croppedPath := filepath.Join(s.uploadDir, fmt.Sprintf("cropped_object_%s.jpg", randomName))
		if err := imaging.Save(cropped, croppedPath); err != nil {
			return nil, apperrors.Wrap(apperrors.KindCollaborator, "image.crop", "could not save cropped region", err)
		}
		candidates = append(candidates, croppedPath)
	}

	session := &store.Session{
		ID:         uuid.NewString(),
		ImagePath:  imagePath,
		Candidates: candidates,
		CreatedAt:  time.Now(),
	}
	s.sessions.Save(session)

	return session, nil
}

// purgeUploadDir drops the previous session's artifacts. Individual failures
// are logged and skipped; a stale crop is better than a failed upload.
func (s *extractionService) purgeUploadDir() {
	entries, err := os.ReadDir(s.uploadDir)
	if err != nil {
		s.logger.Warn("image", "Could not list upload dir for purge", map[string]interface{}{"error": err.Error()})
		return
	}
	for _, entry := range entries {
		path := filepath.Join(s.uploadDir, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			s.logger.Warn("image", "Failed to delete artifact", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		}
	}
}
