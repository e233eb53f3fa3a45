package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriod(t *testing.T) {
	p := PeriodOf(time.Date(2024, time.January, 15, 23, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)))
	assert.Equal(t, Period{Month: 1, Year: 2024}, p)

	assert.Equal(t, Period{Month: 12, Year: 2023}, p.Previous())
	assert.Equal(t, Period{Month: 2, Year: 2024}, Period{Month: 3, Year: 2024}.Previous())

	start, end := Period{Month: 12, Year: 2024}.Bounds()
	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestPeriod_IsValid(t *testing.T) {
	assert.True(t, Period{Month: 1, Year: 2024}.IsValid())
	assert.False(t, Period{Month: 0, Year: 2024}.IsValid())
	assert.False(t, Period{Month: 13, Year: 2024}.IsValid())
	assert.False(t, Period{Month: 6, Year: 1999}.IsValid())
}

func TestMRPerformanceLog_ApplyTarget(t *testing.T) {
	log := &MRPerformanceLog{SalesValue: 12345, AchievementPercent: 40}

	log.ApplyTarget(&MRTarget{SalesTarget: 50000})
	assert.Equal(t, 24.69, log.AchievementPercent)

	log.ApplyTarget(&MRTarget{SalesTarget: 0})
	assert.Zero(t, log.AchievementPercent)

	log.AchievementPercent = 10
	log.ApplyTarget(nil)
	assert.Zero(t, log.AchievementPercent)
}
