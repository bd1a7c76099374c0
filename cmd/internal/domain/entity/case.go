package entity

import "time"

// Case statuses. A case either advances through the investigation pipeline
// or ends in one of the terminal statuses below.
const (
	StatusOpen               = "open"
	StatusUnderInvestigation = "under_investigation"
	StatusCharged            = "charged"
	StatusSettled            = "settled"
	StatusConvicted          = "convicted"
	StatusDismissed          = "dismissed"
)

// AllStatuses lists every valid case status, in pipeline order.
var AllStatuses = []string{
	StatusOpen,
	StatusUnderInvestigation,
	StatusCharged,
	StatusSettled,
	StatusConvicted,
	StatusDismissed,
}

// IsTerminalStatus reports whether a case with this status is closed.
// Only closed cases may carry a resolution date.
func IsTerminalStatus(status string) bool {
	return status == StatusSettled || status == StatusConvicted || status == StatusDismissed
}

type FraudCase struct {
	ID              int64      `gorm:"primaryKey"`
	CaseNumber      string     `gorm:"uniqueIndex;size:50;not null"`
	Title           string     `gorm:"size:255;not null"`
	Description     string     `gorm:"type:text"`
	SchemeType      string     `gorm:"index;size:50"`
	AmountExposed   float64    `gorm:"not null"`
	AmountRecovered float64    `gorm:"not null"`
	DateFiled       time.Time  `gorm:"index;not null"`
	DateResolved    *time.Time // Only set for terminal statuses
	Status          string     `gorm:"index;size:20;default:open"`
	County          string     `gorm:"index;size:50"`
	City            string     `gorm:"size:100"`
	Latitude        float64    `gorm:"not null"`
	Longitude       float64    `gorm:"not null"`
	SourceURL       string     `gorm:"type:text"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
}
