package model

import (
	"time"

	"github.com/rs/xid"
)

type LeadID string

func NewLeadID() LeadID {
	return LeadID(xid.New().String())
}

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusArchived  LeadStatus = "archived"
)

// LeadStatuses lists every valid status. Transitions between statuses are
// deliberately unconstrained: any status may move to any other.
func LeadStatuses() []LeadStatus {
	return []LeadStatus{LeadStatusNew, LeadStatusContacted, LeadStatusConverted, LeadStatusArchived}
}

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusConverted, LeadStatusArchived:
		return true
	}

	return false
}

type Lead interface {
	WithID[LeadID]

	Name() string
	Email() string
	Phone() string
	Message() string
	Status() LeadStatus
	CreatedAt() time.Time
}

type ReadOnlyLead struct {
	id        LeadID
	name      string
	email     string
	phone     string
	message   string
	status    LeadStatus
	createdAt time.Time
}

// ID implements Lead.
func (l *ReadOnlyLead) ID() LeadID {
	return l.id
}

// Name implements Lead.
func (l *ReadOnlyLead) Name() string {
	return l.name
}

// Email implements Lead.
func (l *ReadOnlyLead) Email() string {
	return l.email
}

// Phone implements Lead.
func (l *ReadOnlyLead) Phone() string {
	return l.phone
}

// Message implements Lead.
func (l *ReadOnlyLead) Message() string {
	return l.message
}

// Status implements Lead.
func (l *ReadOnlyLead) Status() LeadStatus {
	return l.status
}

// CreatedAt implements Lead.
func (l *ReadOnlyLead) CreatedAt() time.Time {
	return l.createdAt
}

var _ Lead = &ReadOnlyLead{}

func NewReadOnlyLead(id LeadID, name, email, phone, message string, status LeadStatus, createdAt time.Time) *ReadOnlyLead {
	return &ReadOnlyLead{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		message:   message,
		status:    status,
		createdAt: createdAt,
	}
}
