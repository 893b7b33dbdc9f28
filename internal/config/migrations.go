package config

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

// Schema snapshots frozen at migration time, deliberately independent of the
// live entity types so that entity changes never silently alter the database.

type userV1 struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"size:120;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:255;not null"`
	Name         string    `gorm:"size:60;not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (userV1) TableName() string { return "users" }

type triviaV1 struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"size:150;not null"`
	Description *string `gorm:"type:text"`
	Image       *string `gorm:"type:text"`
	IsPublic    bool    `gorm:"not null;default:true"`
	OwnerUserID uint    `gorm:"not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (triviaV1) TableName() string { return "trivias" }

type questionV1 struct {
	ID         uint   `gorm:"primaryKey"`
	TriviaID   uint   `gorm:"not null;index:idx_questions_trivia_position,priority:1"`
	Statement  string `gorm:"type:text;not null"`
	Type       string `gorm:"size:40;not null;default:multiple_choice"`
	Points     int    `gorm:"not null;default:1000"`
	TimeLimitS int    `gorm:"not null;default:30"`
	Position   int    `gorm:"not null;default:1;index:idx_questions_trivia_position,priority:2"`
}

func (questionV1) TableName() string { return "questions" }

type answerV1 struct {
	ID         uint   `gorm:"primaryKey"`
	QuestionID uint   `gorm:"not null;index"`
	Text       string `gorm:"type:text;not null"`
	IsCorrect  bool   `gorm:"not null;default:false"`
}

func (answerV1) TableName() string { return "answers" }

// Migrate runs the versioned schema migrations.
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250601_0001_create_users",
			Migrate: func(tx *gorm.DB) error {
				return tx.Migrator().CreateTable(&userV1{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("users")
			},
		},
		{
			ID: "20250601_0002_create_trivias",
			Migrate: func(tx *gorm.DB) error {
				return tx.Migrator().CreateTable(&triviaV1{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("trivias")
			},
		},
		{
			ID: "20250601_0003_create_questions",
			Migrate: func(tx *gorm.DB) error {
				return tx.Migrator().CreateTable(&questionV1{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("questions")
			},
		},
		{
			ID: "20250601_0004_create_answers",
			Migrate: func(tx *gorm.DB) error {
				return tx.Migrator().CreateTable(&answerV1{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("answers")
			},
		},
	})

	return m.Migrate()
}
