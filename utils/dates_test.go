package utils

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 14, 30, 12, 0, time.UTC)
}

func TestStartOfDay(t *testing.T) {
	got := StartOfDay(date(2024, time.March, 15))
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfDay = %v, want %v", got, want)
	}
}

func TestEndOfDay(t *testing.T) {
	got := EndOfDay(date(2024, time.March, 15))
	want := time.Date(2024, time.March, 15, 23, 59, 59, 999000000, time.UTC)
	if !got.Equal(want) {
		t.Errorf("EndOfDay = %v, want %v", got, want)
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "wednesday maps to its monday",
			in:   date(2024, time.March, 13),
			want: time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "monday maps to itself",
			in:   date(2024, time.March, 11),
			want: time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday belongs to the week started six days earlier",
			in:   date(2024, time.March, 17),
			want: time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StartOfWeek(tt.in); !got.Equal(tt.want) {
				t.Errorf("StartOfWeek(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEndOfWeek(t *testing.T) {
	got := EndOfWeek(date(2024, time.March, 13))
	want := time.Date(2024, time.March, 17, 23, 59, 59, 999000000, time.UTC)
	if !got.Equal(want) {
		t.Errorf("EndOfWeek = %v, want %v", got, want)
	}
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "leap february",
			in:   date(2024, time.February, 10),
			want: time.Date(2024, time.February, 29, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name: "thirty day month",
			in:   date(2024, time.April, 1),
			want: time.Date(2024, time.April, 30, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name: "december rolls within the year",
			in:   date(2023, time.December, 31),
			want: time.Date(2023, time.December, 31, 23, 59, 59, 999000000, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EndOfMonth(tt.in); !got.Equal(tt.want) {
				t.Errorf("EndOfMonth(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStartOfMonth(t *testing.T) {
	got := StartOfMonth(date(2024, time.July, 19))
	want := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartOfMonth = %v, want %v", got, want)
	}
}
