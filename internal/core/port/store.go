package port

import (
	"context"

	"github.com/advertisingnotdead/agency/internal/core/model"
)

// CaseStudyStore is the persistence contract for the `cases` table. The store
// assigns identifiers and timestamps on create; callers never set them.
type CaseStudyStore interface {
	CountCaseStudies(ctx context.Context) (int64, error)
	QueryCaseStudies(ctx context.Context, opts QueryOptions) ([]model.CaseStudy, error)
	CreateCaseStudy(ctx context.Context, fields CaseStudyFields) (model.CaseStudy, error)
}

type CaseStudyFields struct {
	Title       string
	Description string
	Category    string
	ImageURL    string
}

// LeadStore is the persistence contract for the `leads` table.
type LeadStore interface {
	CountLeads(ctx context.Context) (int64, error)
	QueryLeads(ctx context.Context, opts QueryOptions) ([]model.Lead, error)
	CreateLead(ctx context.Context, fields LeadFields) (model.Lead, error)
	// UpdateLeadStatus overwrites the status unconditionally, with no
	// prior-status precondition. Returns ErrNotFound for unknown ids.
	UpdateLeadStatus(ctx context.Context, id model.LeadID, status model.LeadStatus) (model.Lead, error)
}

type LeadFields struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// UserStore is the persistence contract for the `users` table.
type UserStore interface {
	CountUsers(ctx context.Context) (int64, error)
	QueryUsers(ctx context.Context, opts QueryOptions) ([]model.User, error)
	CreateUser(ctx context.Context, fields UserFields) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}

type UserFields struct {
	Email        string
	Role         model.UserRole
	PasswordHash string
}

// QueryOptions are shared by every list operation. Results are always ordered
// by creation time, newest first. Nil page/limit load the whole table.
type QueryOptions struct {
	Page  *int
	Limit *int
}

type Store interface {
	CaseStudyStore
	LeadStore
	UserStore
}
