package gorm

import (
	"time"

	"github.com/advertisingnotdead/agency/internal/core/model"
)

type Lead struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time

	Name    string
	Email   string
	Phone   string
	Message string
	Status  string `gorm:"index"`
}

// TableName keeps the external table contract.
func (Lead) TableName() string {
	return "leads"
}

type wrappedLead struct {
	l *Lead
}

// ID implements model.Lead.
func (w *wrappedLead) ID() model.LeadID {
	return model.LeadID(w.l.ID)
}

// Name implements model.Lead.
func (w *wrappedLead) Name() string {
	return w.l.Name
}

// Email implements model.Lead.
func (w *wrappedLead) Email() string {
	return w.l.Email
}

// Phone implements model.Lead.
func (w *wrappedLead) Phone() string {
	return w.l.Phone
}

// Message implements model.Lead.
func (w *wrappedLead) Message() string {
	return w.l.Message
}

// Status implements model.Lead.
func (w *wrappedLead) Status() model.LeadStatus {
	return model.LeadStatus(w.l.Status)
}

// CreatedAt implements model.Lead.
func (w *wrappedLead) CreatedAt() time.Time {
	return w.l.CreatedAt
}

var _ model.Lead = &wrappedLead{}
