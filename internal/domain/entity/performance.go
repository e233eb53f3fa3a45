package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// MRTarget is the monthly goal set by an admin for one MR. (mr, month, year) is unique.
type MRTarget struct {
	ID              uuid.UUID `json:"id"`
	MRID            uuid.UUID `json:"mr"`
	Month           int       `json:"month"`
	Year            int       `json:"year"`
	VisitTarget     int       `json:"visitTarget"`
	OrderTarget     int       `json:"orderTarget"`
	SalesTarget     float64   `json:"salesTarget"`
	NewDoctorTarget int       `json:"newDoctorTarget"`
	Notes           string    `json:"notes,omitempty"`
	CreatedBy       uuid.UUID `json:"createdBy"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// MRPerformanceLog is the achieved activity of one MR in one month. (mr, month, year) is unique.
type MRPerformanceLog struct {
	ID                 uuid.UUID `json:"id"`
	MRID               uuid.UUID `json:"mr"`
	Month              int       `json:"month"`
	Year               int       `json:"year"`
	VisitsCompleted    int       `json:"visitsCompleted"`
	OrdersPlaced       int       `json:"ordersPlaced"`
	SalesValue         float64   `json:"salesValue"`
	DoctorsCovered     int       `json:"doctorsCovered"`
	AchievementPercent float64   `json:"achievementPercent"`
	Remarks            string    `json:"remarks,omitempty"`
	ComputedAt         time.Time `json:"computedAt"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ApplyTarget sets AchievementPercent as sales value against the sales target.
// Without a positive target the achievement is zero.
func (l *MRPerformanceLog) ApplyTarget(target *MRTarget) {
	if target == nil || target.SalesTarget <= 0 {
		l.AchievementPercent = 0

		return
	}

	l.AchievementPercent = math.Round(l.SalesValue/target.SalesTarget*10000) / 100
}

// Period is a calendar month.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// PeriodOf returns the month containing t, in UTC.
func PeriodOf(t time.Time) Period {
	t = t.UTC()

	return Period{Month: int(t.Month()), Year: t.Year()}
}

// Previous returns the month before p.
func (p Period) Previous() Period {
	if p.Month <= 1 {
		return Period{Month: 12, Year: p.Year - 1}
	}

	return Period{Month: p.Month - 1, Year: p.Year}
}

// Bounds returns [start, end) of the month in UTC.
func (p Period) Bounds() (time.Time, time.Time) {
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)

	return start, start.AddDate(0, 1, 0)
}

// IsValid checks month range and a plausible year.
func (p Period) IsValid() bool {
	return p.Month >= 1 && p.Month <= 12 && p.Year >= 2000 && p.Year <= 9999
}
