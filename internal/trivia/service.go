package trivia

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mlefevre/quizzlab/internal/apperror"
	"github.com/mlefevre/quizzlab/internal/config"
)

const (
	defaultPoints    = 1000
	defaultTimeLimit = 30
	defaultType      = "multiple_choice"
)

type Service interface {
	Create(ctx context.Context, payload *TriviaPayload, ownerID uint) (*Trivia, error)
	Get(ctx context.Context, id uint) (*Trivia, error)
	List(ctx context.Context, scope string, userID uint) ([]TriviaSummary, error)
	Replace(ctx context.Context, id uint, payload *TriviaPayload, requesterID uint) (*Trivia, error)
	SetVisibility(ctx context.Context, id uint, isPublic bool) (*VisibilityResponse, error)
	Delete(ctx context.Context, id uint, requesterID uint) error
}

type service struct {
	repo Repository
	db   *gorm.DB
}

func NewService(db *gorm.DB, repo Repository) Service {
	return &service{repo: repo, db: db}
}

// Create persists a full quiz tree in one transaction. Nothing is written when
// validation fails, and any mid-insert failure rolls the whole tree back.
func (s *service) Create(ctx context.Context, payload *TriviaPayload, ownerID uint) (*Trivia, error) {
	log := config.WithContext(ctx)

	if err := ValidatePayload(payload); err != nil {
		return nil, err
	}

	// The authenticated account wins; the payload owner is only honored when
	// the route is reached without credentials.
	if ownerID == 0 {
		ownerID = payload.OwnerUserID
	}

	isPublic := true
	if payload.IsPublic != nil {
		isPublic = *payload.IsPublic
	}

	t := Trivia{
		Title:       payload.Title,
		Description: payload.Description,
		Image:       payload.Image,
		IsPublic:    isPublic,
		OwnerUserID: ownerID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&t).Error; err != nil {
			return err
		}
		return insertQuestions(tx, t.ID, payload.Questions)
	})
	if err != nil {
		log.WithError(err).Error("failed to create quiz tree")
		return nil, err
	}

	log.WithField("trivia_id", t.ID).Info("quiz created")
	return s.repo.GetTree(t.ID)
}

func (s *service) Get(ctx context.Context, id uint) (*Trivia, error) {
	t, err := s.repo.GetTree(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperror.NotFound("trivia")
	}
	return t, nil
}

func (s *service) List(ctx context.Context, scope string, userID uint) ([]TriviaSummary, error) {
	return s.repo.ListSummaries(scope, userID)
}

// Replace is a destructive full replace: scalar fields are updated, then every
// existing question and answer is deleted and the payload set is recreated.
// Question and answer ids are regenerated on every call. The whole operation is
// one transaction, including the ownership lookup.
func (s *service) Replace(ctx context.Context, id uint, payload *TriviaPayload, requesterID uint) (*Trivia, error) {
	log := config.WithContext(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t, err := lockTrivia(tx, id)
		if err != nil {
			return err
		}
		if t.OwnerUserID != requesterID {
			return &apperror.ForbiddenError{}
		}
		if err := ValidatePayload(payload); err != nil {
			return err
		}

		// an empty image string counts as omitted, same as an absent key
		image := t.Image
		if payload.Image != nil && *payload.Image != "" {
			image = payload.Image
		}
		isPublic := t.IsPublic
		if payload.IsPublic != nil {
			isPublic = *payload.IsPublic
		}

		updates := map[string]interface{}{
			"title":       payload.Title,
			"description": payload.Description,
			"image":       image,
			"is_public":   isPublic,
			"updated_at":  time.Now(),
		}
		if err := tx.Model(&Trivia{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		if err := deleteQuestions(tx, id); err != nil {
			return err
		}
		return insertQuestions(tx, id, payload.Questions)
	})
	if err != nil {
		return nil, err
	}

	log.WithField("trivia_id", id).Info("quiz replaced")
	return s.repo.GetTree(id)
}

// Delete removes the quiz and every descendant row in one transaction, answers
// first, then questions, then the quiz itself.
func (s *service) Delete(ctx context.Context, id uint, requesterID uint) error {
	log := config.WithContext(ctx)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t, err := lockTrivia(tx, id)
		if err != nil {
			return err
		}
		if t.OwnerUserID != requesterID {
			return &apperror.ForbiddenError{}
		}

		if err := deleteQuestions(tx, id); err != nil {
			return err
		}
		return tx.Delete(&Trivia{}, "id = ?", id).Error
	})
	if err != nil {
		return err
	}

	log.WithField("trivia_id", id).Info("quiz deleted")
	return nil
}

// SetVisibility flips the public flag only. Ownership is intentionally not
// checked here; see DESIGN.md.
func (s *service) SetVisibility(ctx context.Context, id uint, isPublic bool) (*VisibilityResponse, error) {
	var t Trivia
	if err := s.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("trivia")
		}
		return nil, err
	}

	updates := map[string]interface{}{"is_public": isPublic, "updated_at": time.Now()}
	if err := s.db.WithContext(ctx).Model(&t).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &VisibilityResponse{ID: t.ID, IsPublic: isPublic}, nil
}

func lockTrivia(tx *gorm.DB, id uint) (*Trivia, error) {
	var t Trivia
	if err := tx.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("trivia")
		}
		return nil, err
	}
	return &t, nil
}

// insertQuestions writes the payload questions and their answers, preserving
// array order as the default position.
func insertQuestions(tx *gorm.DB, triviaID uint, questions []QuestionPayload) error {
	for i, qp := range questions {
		qType := qp.Type
		if qType == "" {
			qType = defaultType
		}

		q := Question{
			TriviaID:   triviaID,
			Statement:  qp.Statement,
			Type:       qType,
			Points:     qp.Points.Or(defaultPoints),
			TimeLimitS: qp.TimeLimitS.Or(defaultTimeLimit),
			Position:   qp.Position.Or(i + 1),
		}
		if err := tx.Create(&q).Error; err != nil {
			return err
		}

		answers := make([]Answer, 0, len(qp.Answers))
		for _, ap := range qp.Answers {
			answers = append(answers, Answer{
				QuestionID: q.ID,
				Text:       ap.Text,
				IsCorrect:  ap.IsCorrect,
			})
		}
		if err := tx.Create(&answers).Error; err != nil {
			return err
		}
	}
	return nil
}

// deleteQuestions removes all of a quiz's questions and their answers.
func deleteQuestions(tx *gorm.DB, triviaID uint) error {
	var questionIDs []uint
	if err := tx.Model(&Question{}).Where("trivia_id = ?", triviaID).Pluck("id", &questionIDs).Error; err != nil {
		return err
	}
	if len(questionIDs) == 0 {
		return nil
	}

	if err := tx.Where("question_id IN ?", questionIDs).Delete(&Answer{}).Error; err != nil {
		return err
	}
	return tx.Where("trivia_id = ?", triviaID).Delete(&Question{}).Error
}
