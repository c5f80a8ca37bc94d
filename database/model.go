package database

import (
	"time"

	_ "github.com/expki/go-constructsim/env"
	"gorm.io/gorm"
)

// Run records one completed comparison: what was embedded, how the axes
// lined up, and the two correlation scores.
type Run struct {
	ID             uint64    `gorm:"primarykey"`
	CreatedAt      time.Time `gorm:"index;not null"`
	EmbedModel     string    `gorm:"not null"`
	ItemCount      int       `gorm:"not null"`
	ConstructCount int       `gorm:"not null"`
	AlignedCount   int       `gorm:"not null"`
	DroppedLabels  StringSlice
	RawScore       float64 `gorm:"not null"`
	AbsoluteScore  float64 `gorm:"not null"`

	Vectors []ConstructVector `gorm:"foreignKey:RunID"`
}

func (m *Run) BeforeCreate(tx *gorm.DB) error {
	m.CreatedAt = time.Now().UTC()
	return nil
}

// ConstructVector is one construct's mean embedding within a run.
type ConstructVector struct {
	ID     uint64      `gorm:"primarykey"`
	RunID  uint64      `gorm:"index;not null"`
	Label  string      `gorm:"not null"`
	Vector VectorField `gorm:"not null"`
}
