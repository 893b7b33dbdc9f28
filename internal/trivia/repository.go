package trivia

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	// GetTree loads a quiz with its questions ordered by position and each
	// question's answers ordered by id. Returns nil when the quiz is missing.
	GetTree(id uint) (*Trivia, error)
	ListSummaries(scope string, userID uint) ([]TriviaSummary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetTree(id uint) (*Trivia, error) {
	var t Trivia
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id ASC")
		}).
		First(&t, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *repository) ListSummaries(scope string, userID uint) ([]TriviaSummary, error) {
	q := r.db.Model(&Trivia{}).
		Select("id", "title", "description", "is_public", "owner_user_id", "created_at", "updated_at").
		Order("created_at DESC")

	switch scope {
	case "mine":
		if userID != 0 {
			q = q.Where("owner_user_id = ?", userID)
		}
	case "public":
		q = q.Where("is_public = ?", true)
	}

	var summaries []TriviaSummary
	if err := q.Find(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}
