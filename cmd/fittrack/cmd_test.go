// ABOUTME: Tests for CLI helper functions.
// ABOUTME: Tests greeting, formatTime, padRight, progressBar, and session lookup.
package main

import (
	"testing"

	"github.com/harperreed/fittrack/internal/models"
)

func TestGreeting(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "Good Morning"},
		{6, "Good Morning"},
		{11, "Good Morning"},
		{12, "Good Afternoon"},
		{16, "Good Afternoon"},
		{17, "Good Evening"},
		{23, "Good Evening"},
	}

	for _, tt := range tests {
		if got := greeting(tt.hour); got != tt.want {
			t.Errorf("greeting(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{95, "1:35"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}

	for _, tt := range tests {
		if got := formatTime(tt.seconds); got != tt.want {
			t.Errorf("formatTime(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		s      string
		length int
		want   string
	}{
		{"abc", 5, "abc  "},
		{"abc", 3, "abc"},
		{"abcdef", 3, "abcdef"},
		{"", 3, "   "},
	}

	for _, tt := range tests {
		if got := padRight(tt.s, tt.length); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.s, tt.length, got, tt.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent float64
		width   int
		filled  int
	}{
		{0, 10, 0},
		{50, 10, 5},
		{100, 10, 10},
		{150, 10, 10},
	}

	for _, tt := range tests {
		got := progressBar(tt.percent, tt.width)
		// 2 bracket runes plus width bar runes
		runes := []rune(got)
		if len(runes) != tt.width+2 {
			t.Errorf("progressBar(%f, %d) length = %d, want %d", tt.percent, tt.width, len(runes), tt.width+2)
			continue
		}
		filled := 0
		for _, r := range runes {
			if r == '█' {
				filled++
			}
		}
		if filled != tt.filled {
			t.Errorf("progressBar(%f, %d) filled = %d, want %d", tt.percent, tt.width, filled, tt.filled)
		}
	}
}

func TestFormatSet(t *testing.T) {
	weight := 60.0
	calories := 150.0

	strength := &models.WorkoutSession{BodyPart: "chest"}
	got := formatSet(strength, models.Set{Reps: 8, Weight: &weight})
	if got != "8 reps @ 60 kg" {
		t.Errorf("formatSet strength = %q", got)
	}

	cardio := &models.WorkoutSession{BodyPart: "cardio"}
	got = formatSet(cardio, models.Set{Reps: 1, Calories: &calories})
	if got != "1 reps, 150 kcal" {
		t.Errorf("formatSet cardio = %q", got)
	}

	got = formatSet(strength, models.Set{Reps: 5})
	if got != "5 reps @ 0 kg" {
		t.Errorf("formatSet missing weight = %q", got)
	}
}
