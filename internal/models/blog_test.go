package models

import (
	"testing"
	"time"
)

// TestEffectiveStatus exercises the publication state machine across all
// combinations of requested status and scheduling.
func TestEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name        string
		requested   BlogStatus
		scheduledAt *time.Time
		want        BlogStatus
	}{
		{
			name:      "publish with no schedule goes live immediately",
			requested: BlogStatusPublished,
			want:      BlogStatusPublished,
		},
		{
			name:        "publish with future schedule is deferred",
			requested:   BlogStatusPublished,
			scheduledAt: &future,
			want:        BlogStatusScheduled,
		},
		{
			name:        "publish with elapsed schedule goes live",
			requested:   BlogStatusPublished,
			scheduledAt: &past,
			want:        BlogStatusPublished,
		},
		{
			name:      "draft stays draft",
			requested: BlogStatusDraft,
			want:      BlogStatusDraft,
		},
		{
			name:        "draft with future schedule stays draft",
			requested:   BlogStatusDraft,
			scheduledAt: &future,
			want:        BlogStatusDraft,
		},
		{
			name:        "explicit scheduled request is stored as given",
			requested:   BlogStatusScheduled,
			scheduledAt: &future,
			want:        BlogStatusScheduled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectiveStatus(tt.requested, tt.scheduledAt, now)
			if got != tt.want {
				t.Errorf("EffectiveStatus(%q, %v) = %q, want %q", tt.requested, tt.scheduledAt, got, tt.want)
			}
		})
	}
}

func TestBlogStatusValid(t *testing.T) {
	for _, s := range []BlogStatus{BlogStatusDraft, BlogStatusScheduled, BlogStatusPublished} {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	for _, s := range []BlogStatus{"", "archived", "Published"} {
		if s.Valid() {
			t.Errorf("%q should be invalid", s)
		}
	}
}

func TestIsPublished(t *testing.T) {
	b := &Blog{Status: BlogStatusScheduled}
	if b.IsPublished() {
		t.Error("scheduled post must not report as published")
	}
	b.Status = BlogStatusPublished
	if !b.IsPublished() {
		t.Error("published post must report as published")
	}
}
