package services

import (
	"testing"
	"time"

	"ca-office-backend/db/models"

	"github.com/google/uuid"
)

func TestBuildEngagementFromRecurring(t *testing.T) {
	rec := models.RecurringEngagement{
		ID:        uuid.New(),
		ClientID:  uuid.New(),
		Type:      "GST Return",
		Frequency: models.FrequencyMonthly,
		DueDay:    20,
		CreatedBy: "ops@example.com",
	}
	now := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	engagement := BuildEngagementFromRecurring(&rec, now)

	if engagement.ClientID != rec.ClientID {
		t.Error("client not carried over")
	}
	if engagement.Period != "2026-08" {
		t.Errorf("Period = %q, want 2026-08", engagement.Period)
	}
	if engagement.Status != models.EngagementPending {
		t.Errorf("Status = %s, want PENDING", engagement.Status)
	}
	if engagement.DueDate == nil || engagement.DueDate.Day() != 20 {
		t.Errorf("DueDate = %v, want the 20th", engagement.DueDate)
	}
	if engagement.RecurringEngagementID == nil || *engagement.RecurringEngagementID != rec.ID {
		t.Error("recurring definition link missing")
	}
}

func TestBuildEngagementPeriodKeys(t *testing.T) {
	tests := []struct {
		frequency models.RecurrenceFrequency
		now       time.Time
		want      string
	}{
		{models.FrequencyMonthly, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), "2026-01"},
		{models.FrequencyQuarterly, time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC), "2026-Q3"},
		{models.FrequencyQuarterly, time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC), "2026-Q4"},
		{models.FrequencyYearly, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), "2026"},
	}

	for _, tt := range tests {
		rec := models.RecurringEngagement{Frequency: tt.frequency}
		engagement := BuildEngagementFromRecurring(&rec, tt.now)
		if engagement.Period != tt.want {
			t.Errorf("%s at %s: Period = %q, want %q", tt.frequency, tt.now.Format("2006-01-02"), engagement.Period, tt.want)
		}
	}
}

func TestBuildEngagementDueDayClamping(t *testing.T) {
	rec := models.RecurringEngagement{Frequency: models.FrequencyMonthly, DueDay: 31}

	// February 2026 has 28 days.
	now := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	engagement := BuildEngagementFromRecurring(&rec, now)

	if engagement.DueDate == nil || engagement.DueDate.Day() != 28 {
		t.Errorf("DueDate = %v, want clamped to Feb 28", engagement.DueDate)
	}
	if engagement.DueDate.Month() != time.February {
		t.Errorf("DueDate rolled into %s", engagement.DueDate.Month())
	}
}

func TestBuildEngagementDefaultDueDay(t *testing.T) {
	rec := models.RecurringEngagement{Frequency: models.FrequencyMonthly, DueDay: 0}
	now := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	engagement := BuildEngagementFromRecurring(&rec, now)

	if engagement.DueDate == nil || engagement.DueDate.Day() != 20 {
		t.Errorf("DueDate = %v, want default day 20", engagement.DueDate)
	}
}
