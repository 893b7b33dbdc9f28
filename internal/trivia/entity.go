package trivia

import (
	"time"

	"github.com/mlefevre/quizzlab/internal/user"
)

type Trivia struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"size:150;not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description"`
	Image       *string    `gorm:"type:text" json:"image"`
	IsPublic    bool       `gorm:"not null;default:true" json:"is_public"`
	OwnerUserID uint       `gorm:"not null;index" json:"owner_user_id"`
	Owner       user.User  `gorm:"foreignKey:OwnerUserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Questions   []Question `gorm:"foreignKey:TriviaID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type Question struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	TriviaID   uint     `gorm:"not null;index" json:"trivia_id"`
	Statement  string   `gorm:"type:text;not null" json:"statement"`
	Type       string   `gorm:"size:40;not null;default:multiple_choice" json:"type"`
	Points     int      `gorm:"not null;default:1000" json:"points"`
	TimeLimitS int      `gorm:"not null;default:30" json:"time_limit_s"`
	Position   int      `gorm:"not null;default:1" json:"position"`
	Answers    []Answer `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

type Answer struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"question_id"`
	Text       string `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool   `gorm:"not null;default:false" json:"is_correct"`
}
