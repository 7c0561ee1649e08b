package handlers

import (
	"strings"
	"testing"
	"time"

	"gujarattaxi/internal/models"
)

func TestValidateBlogInput(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		slug        string
		description string
		wantError   bool
	}{
		{"valid", "Ahmedabad to Surat Taxi", "ahmedabad-to-surat-taxi", "Body text", false},
		{"empty title", "", "slug", "body", true},
		{"whitespace title", "   ", "slug", "body", true},
		{"title too long", strings.Repeat("a", 301), "slug", "body", true},
		{"invalid slug", "title", "bad slug!", "body", true},
		{"slug too long", "title", strings.Repeat("a", 301), "body", true},
		{"description too long", "title", "slug", strings.Repeat("a", 200_001), true},
		{"empty description allowed", "title", "slug", "", false},
		{"empty slug allowed", "title", "", "body", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateBlogInput(tt.title, tt.slug, tt.description)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateDirectoryInput(t *testing.T) {
	tests := []struct {
		name      string
		dispName  string
		urlSlug   string
		wantError bool
	}{
		{"valid", "Ahmedabad to Vadodara", "ahmedabad-to-vadodara", false},
		{"empty name", "", "some-url", true},
		{"whitespace name", "   ", "some-url", true},
		{"name too long", strings.Repeat("a", 201), "some-url", true},
		{"empty url", "Name", "", true},
		{"invalid url", "Name", "has spaces", true},
		{"url too long", "Name", strings.Repeat("a", 301), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateDirectoryInput(tt.dispName, tt.urlSlug)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestValidateTaxonomyInput(t *testing.T) {
	tests := []struct {
		name      string
		dispName  string
		slug      string
		wantError bool
	}{
		{"valid", "Travel Tips", "travel-tips", false},
		{"empty slug allowed", "Travel Tips", "", false},
		{"empty name", "", "slug", true},
		{"name too long", strings.Repeat("a", 201), "slug", true},
		{"invalid slug", "Name", "not a slug", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateTaxonomyInput(tt.dispName, tt.slug)
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestBlogInputApplyStatus(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	base := func() blogInput {
		return blogInput{
			Title:       "Status Post",
			Slug:        "status-post",
			Description: "<p>body</p>",
			Image:       "https://cdn.example.com/status.jpg",
		}
	}

	tests := []struct {
		name        string
		status      string
		scheduledAt *time.Time
		wantError   bool
		wantStatus  models.BlogStatus
	}{
		{"empty status goes live", "", nil, false, models.BlogStatusPublished},
		{"explicit draft", "draft", nil, false, models.BlogStatusDraft},
		{"publish with future schedule defers", "published", &future, false, models.BlogStatusScheduled},
		{"publish with elapsed schedule goes live", "published", &past, false, models.BlogStatusPublished},
		{"scheduled with future time", "scheduled", &future, false, models.BlogStatusScheduled},
		{"scheduled without a time rejected", "scheduled", nil, true, ""},
		{"scheduled with elapsed time rejected", "scheduled", &past, true, ""},
		{"unknown status rejected", "someday", nil, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base()
			in.Status = tt.status
			in.ScheduledAt = tt.scheduledAt

			var b models.Blog
			result := in.apply(&b)
			if tt.wantError {
				if result == "" {
					t.Fatalf("expected an error, got stored status %q", b.Status)
				}
				return
			}
			if result != "" {
				t.Fatalf("unexpected error: %s", result)
			}
			if b.Status != tt.wantStatus {
				t.Errorf("status: got %q, want %q", b.Status, tt.wantStatus)
			}
		})
	}
}

func TestBookingInputValidate(t *testing.T) {
	date := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	later := date.Add(48 * time.Hour)
	earlier := date.Add(-48 * time.Hour)

	valid := func() bookingInput {
		return bookingInput{
			TripType:   string(models.TripOneWay),
			From:       "Ahmedabad",
			To:         "Surat",
			Date:       &date,
			Passengers: 4,
			Phone:      "+91 98765 43210",
		}
	}

	tests := []struct {
		name      string
		mutate    func(*bookingInput)
		wantError bool
	}{
		{"valid one-way", func(in *bookingInput) {}, false},
		{"invalid trip type", func(in *bookingInput) { in.TripType = "teleport" }, true},
		{"empty pickup", func(in *bookingInput) { in.From = "  " }, true},
		{"missing date", func(in *bookingInput) { in.Date = nil }, true},
		{"round trip needs return date", func(in *bookingInput) {
			in.TripType = string(models.TripRoundTrip)
		}, true},
		{"round trip return before start", func(in *bookingInput) {
			in.TripType = string(models.TripRoundTrip)
			in.TripEndDate = &earlier
		}, true},
		{"valid round trip", func(in *bookingInput) {
			in.TripType = string(models.TripRoundTrip)
			in.TripEndDate = &later
		}, false},
		{"zero passengers", func(in *bookingInput) { in.Passengers = 0 }, true},
		{"too many passengers", func(in *bookingInput) { in.Passengers = 17 }, true},
		{"empty phone", func(in *bookingInput) { in.Phone = "" }, true},
		{"phone too long", func(in *bookingInput) { in.Phone = strings.Repeat("9", 21) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)
			result := in.validate()
			if tt.wantError && result == "" {
				t.Error("expected an error, got none")
			}
			if !tt.wantError && result != "" {
				t.Errorf("unexpected error: %s", result)
			}
		})
	}
}

func TestRedirectInputNormalize(t *testing.T) {
	tests := []struct {
		name      string
		input     redirectInput
		wantError bool
		wantFrom  string
		wantType  string
	}{
		{
			"valid defaults",
			redirectInput{FromPath: "/old-page", ToPath: "/new-page"},
			false, "/old-page", "301",
		},
		{
			"adds leading slash and defaults type",
			redirectInput{FromPath: "old-page", ToPath: "/new"},
			false, "/old-page", "301",
		},
		{
			"temporary type kept",
			redirectInput{FromPath: "/a", ToPath: "/b", Type: "302"},
			false, "/a", "302",
		},
		{"missing source", redirectInput{ToPath: "/b"}, true, "", ""},
		{"missing target", redirectInput{FromPath: "/a"}, true, "", ""},
		{"self redirect", redirectInput{FromPath: "/same", ToPath: "/same"}, true, "", ""},
		{"bad type", redirectInput{FromPath: "/a", ToPath: "/b", Type: "307"}, true, "", ""},
		{
			"notes too long",
			redirectInput{FromPath: "/a", ToPath: "/b", Notes: strings.Repeat("n", 1_001)},
			true, "", "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.input
			result := in.normalize()
			if tt.wantError {
				if result == "" {
					t.Error("expected an error, got none")
				}
				return
			}
			if result != "" {
				t.Fatalf("unexpected error: %s", result)
			}
			if in.FromPath != tt.wantFrom {
				t.Errorf("fromPath: got %q, want %q", in.FromPath, tt.wantFrom)
			}
			if in.Type != tt.wantType {
				t.Errorf("type: got %q, want %q", in.Type, tt.wantType)
			}
		})
	}
}
