package gorm

import (
	"time"

	"github.com/advertisingnotdead/agency/internal/core/model"
)

type CaseStudy struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Title       string
	Description string
	Category    string
	ImageURL    string
}

// TableName keeps the external table contract.
func (CaseStudy) TableName() string {
	return "cases"
}

type wrappedCaseStudy struct {
	c *CaseStudy
}

// ID implements model.CaseStudy.
func (w *wrappedCaseStudy) ID() model.CaseStudyID {
	return model.CaseStudyID(w.c.ID)
}

// Title implements model.CaseStudy.
func (w *wrappedCaseStudy) Title() string {
	return w.c.Title
}

// Description implements model.CaseStudy.
func (w *wrappedCaseStudy) Description() string {
	return w.c.Description
}

// Category implements model.CaseStudy.
func (w *wrappedCaseStudy) Category() string {
	return w.c.Category
}

// ImageURL implements model.CaseStudy.
func (w *wrappedCaseStudy) ImageURL() string {
	return w.c.ImageURL
}

// CreatedAt implements model.CaseStudy.
func (w *wrappedCaseStudy) CreatedAt() time.Time {
	return w.c.CreatedAt
}

// UpdatedAt implements model.CaseStudy.
func (w *wrappedCaseStudy) UpdatedAt() time.Time {
	return w.c.UpdatedAt
}

var _ model.CaseStudy = &wrappedCaseStudy{}
