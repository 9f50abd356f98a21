package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "finwise/internal/errors"
	"finwise/internal/models"
)

// confessionService owns the append-only confession store. Posts are
// never edited or deleted.
type confessionService struct {
	db *gorm.DB
}

// NewConfessionService creates a new ConfessionServicer.
func NewConfessionService(db *gorm.DB) ConfessionServicer {
	return &confessionService{db: db}
}

// PostConfession appends a post. The conversation must be a non-empty
// sequence of messages that each carry text; the identifier and timestamp
// are backend-assigned.
func (s *confessionService) PostConfession(conversation []models.Message, caption string) (*models.ConfessionPost, error) {
	if len(conversation) == 0 {
		return nil, apperrors.ErrEmptyConversation
	}
	for _, msg := range conversation {
		if strings.TrimSpace(msg.Text) == "" {
			return nil, apperrors.WithMessage(apperrors.ErrEmptyConversation, "Every message needs text")
		}
	}

	post := &models.ConfessionPost{
		Caption:      caption,
		Conversation: conversation,
	}
	if err := s.db.Create(post).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return post, nil
}

// ListConfessionsRaw returns full records including sender attribution.
// Internal use only; never wired to the anonymous forum view.
func (s *confessionService) ListConfessionsRaw() ([]models.ConfessionPost, error) {
	var posts []models.ConfessionPost
	if err := s.db.Order("id ASC").Find(&posts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return posts, nil
}

// ListForumView returns the sender-stripped public rendering of all posts.
func (s *confessionService) ListForumView() ([]models.AnonymizedPost, error) {
	posts, err := s.ListConfessionsRaw()
	if err != nil {
		return nil, err
	}

	anon := make([]models.AnonymizedPost, len(posts))
	for i, post := range posts {
		anon[i] = post.Anonymize()
	}
	return anon, nil
}
