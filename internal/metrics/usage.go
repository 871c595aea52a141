package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTotalContactSubmissions = "total_contact_submissions"
	NameTotalCaseStudyCreates   = "total_case_study_creates"
	NameTotalLeadStatusChanges  = "total_lead_status_changes"
	NameTotalSignIns            = "total_sign_ins"
)

var TotalContactSubmissions = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalContactSubmissions,
		Help:      "Total contact form submissions",
		Namespace: Namespace,
	},
)

var TotalCaseStudyCreates = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalCaseStudyCreates,
		Help:      "Total case studies created",
		Namespace: Namespace,
	},
)

var TotalLeadStatusChanges = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalLeadStatusChanges,
		Help:      "Total lead status changes",
		Namespace: Namespace,
	},
)

var TotalSignIns = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameTotalSignIns,
		Help:      "Total successful sign-ins",
		Namespace: Namespace,
	},
)
