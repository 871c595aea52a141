package model

import (
	"time"

	"github.com/rs/xid"
)

type CaseStudyID string

func NewCaseStudyID() CaseStudyID {
	return CaseStudyID(xid.New().String())
}

type CaseStudy interface {
	WithID[CaseStudyID]
	WithLifecycle

	Title() string
	Description() string
	Category() string
	ImageURL() string
}

type ReadOnlyCaseStudy struct {
	id          CaseStudyID
	title       string
	description string
	category    string
	imageURL    string
	createdAt   time.Time
	updatedAt   time.Time
}

// ID implements CaseStudy.
func (c *ReadOnlyCaseStudy) ID() CaseStudyID {
	return c.id
}

// Title implements CaseStudy.
func (c *ReadOnlyCaseStudy) Title() string {
	return c.title
}

// Description implements CaseStudy.
func (c *ReadOnlyCaseStudy) Description() string {
	return c.description
}

// Category implements CaseStudy.
func (c *ReadOnlyCaseStudy) Category() string {
	return c.category
}

// ImageURL implements CaseStudy.
func (c *ReadOnlyCaseStudy) ImageURL() string {
	return c.imageURL
}

// CreatedAt implements CaseStudy.
func (c *ReadOnlyCaseStudy) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt implements CaseStudy.
func (c *ReadOnlyCaseStudy) UpdatedAt() time.Time {
	return c.updatedAt
}

var _ CaseStudy = &ReadOnlyCaseStudy{}

func NewReadOnlyCaseStudy(id CaseStudyID, title, description, category, imageURL string, createdAt, updatedAt time.Time) *ReadOnlyCaseStudy {
	return &ReadOnlyCaseStudy{
		id:          id,
		title:       title,
		description: description,
		category:    category,
		imageURL:    imageURL,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}
