package utils

import (
	"testing"
	"time"

	"github.com/julianstephens/dashlit/internal/models"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty string returns local", timezone: "", wantErr: false},
		{name: "Local returns local", timezone: "Local", wantErr: false},
		{name: "valid timezone UTC", timezone: "UTC", wantErr: false},
		{name: "valid timezone America/New_York", timezone: "America/New_York", wantErr: false},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
			if got := ValidateTimezone(tt.timezone); got == tt.wantErr {
				t.Errorf("ValidateTimezone(%q) = %v", tt.timezone, got)
			}
		})
	}
}

func TestPreviousDay(t *testing.T) {
	tests := []struct {
		date    string
		want    string
		wantErr bool
	}{
		{date: "2024-01-02", want: "2024-01-01"},
		{date: "2024-01-01", want: "2023-12-31"},
		{date: "2024-03-01", want: "2024-02-29"},
		{date: "2023-03-01", want: "2023-02-28"},
		{date: "2024-03-11", want: "2024-03-10"},
		{date: "not-a-date", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			got, err := PreviousDay(tt.date)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PreviousDay() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("PreviousDay(%q) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestTodayFromSettings(t *testing.T) {
	// 2024-01-02 03:00 UTC is still 2024-01-01 in New York
	now := time.Date(2024, 1, 2, 3, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		timezone string
		want     string
		wantErr  bool
	}{
		{name: "utc", timezone: "UTC", want: "2024-01-02"},
		{name: "new york", timezone: "America/New_York", want: "2024-01-01"},
		{name: "tokyo", timezone: "Asia/Tokyo", want: "2024-01-02"},
		{name: "invalid", timezone: "Nowhere/Town", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TodayFromSettings(now, models.Settings{Timezone: tt.timezone})
			if (err != nil) != tt.wantErr {
				t.Fatalf("TodayFromSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("TodayFromSettings() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDueTime(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    time.Time
		wantErr bool
	}{
		{name: "date and time", value: "2024-01-01 10:00", want: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{name: "rfc3339", value: "2024-01-05T08:30:00Z", want: time.Date(2024, 1, 5, 8, 30, 0, 0, time.UTC)},
		{name: "time only uses today", value: "17:45", want: time.Date(2024, 1, 1, 17, 45, 0, 0, time.UTC)},
		{name: "garbage", value: "tomorrow", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDueTime(tt.value, now, time.UTC)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDueTime() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseDueTime() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[int]string{
		1500: "25:00",
		299:  "04:59",
		0:    "00:00",
		-3:   "00:00",
	}
	for in, want := range tests {
		if got := FormatDuration(in); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", in, got, want)
		}
	}
}
