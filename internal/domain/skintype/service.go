package skintype

import (
	"context"
	"log/slog"
)

// Service exposes skin type detection for uploaded photos.
type Service interface {
	Detect(ctx context.Context, image []byte) SkinType
	ModelLoaded() bool
}

// Classifier runs the pretrained model over raw image bytes.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (SkinType, float32, error)
}

type service struct {
	classifier Classifier
	logger     *slog.Logger
}

// NewService wires the classification domain. A nil classifier means the
// checkpoint could not be loaded; every detection then yields the default.
func NewService(classifier Classifier, logger *slog.Logger) Service {
	return &service{classifier: classifier, logger: logger.With("component", "skintype.service")}
}

// Detect never fails: model absence and inference errors both degrade to the
// default label so the caller can keep serving the request.
func (s *service) Detect(ctx context.Context, image []byte) SkinType {
	if s.classifier == nil {
		s.logger.Info("skin model not loaded, using default label", "default", Default)
		return Default
	}

	label, confidence, err := s.classifier.Classify(ctx, image)
	if err != nil {
		s.logger.Warn("skin classification failed, using default label", "default", Default, "error", err)
		return Default
	}
	if !label.Valid() {
		s.logger.Warn("classifier returned unknown label, using default", "label", label)
		return Default
	}
	s.logger.Info("skin type detected", "label", label, "confidence", confidence)
	return label
}

func (s *service) ModelLoaded() bool {
	return s.classifier != nil
}
