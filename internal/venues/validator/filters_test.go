package validator

import (
	"net/url"
	"testing"
)

func TestParseVenueFiltersDefaults(t *testing.T) {
	filter, errs := ParseVenueFilters(url.Values{})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if filter.Page != 1 {
		t.Errorf("default page = %d, want 1", filter.Page)
	}
	if filter.Limit != 10 {
		t.Errorf("default limit = %d, want 10", filter.Limit)
	}
	if filter.City != "" || filter.MinCapacity != 0 || filter.MaxPrice != 0 {
		t.Errorf("expected unconstrained filter, got %+v", filter)
	}
}

func TestParseVenueFiltersValid(t *testing.T) {
	query := url.Values{
		"city":        {"  austin "},
		"minCapacity": {"40"},
		"maxPrice":    {"900.50"},
		"page":        {"2"},
		"limit":       {"25"},
	}

	filter, errs := ParseVenueFilters(query)
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if filter.City != "austin" {
		t.Errorf("city = %q (should be trimmed)", filter.City)
	}
	if filter.MinCapacity != 40 || filter.MaxPrice != 900.50 {
		t.Errorf("bounds = %d / %v", filter.MinCapacity, filter.MaxPrice)
	}
	if filter.Page != 2 || filter.Limit != 25 {
		t.Errorf("paging = %d / %d", filter.Page, filter.Limit)
	}
}

func TestParseVenueFiltersLimitClamped(t *testing.T) {
	filter, errs := ParseVenueFilters(url.Values{"limit": {"500"}})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if filter.Limit != 50 {
		t.Errorf("limit = %d, want clamp to 50", filter.Limit)
	}
}

func TestParseVenueFiltersInvalid(t *testing.T) {
	tests := []struct {
		name      string
		query     url.Values
		wantField string
	}{
		{"non-numeric minCapacity", url.Values{"minCapacity": {"lots"}}, "minCapacity"},
		{"negative minCapacity", url.Values{"minCapacity": {"-5"}}, "minCapacity"},
		{"zero maxPrice", url.Values{"maxPrice": {"0"}}, "maxPrice"},
		{"non-numeric maxPrice", url.Values{"maxPrice": {"cheap"}}, "maxPrice"},
		{"zero page", url.Values{"page": {"0"}}, "page"},
		{"non-numeric page", url.Values{"page": {"first"}}, "page"},
		{"zero limit", url.Values{"limit": {"0"}}, "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, errs := ParseVenueFilters(tt.query)
			if len(errs) == 0 {
				t.Fatal("expected validation errors")
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("error field = %q, want %q", errs[0].Field, tt.wantField)
			}
			// A failed parse must not yield a usable, partially-defaulted filter.
			if filter.Page != 0 || filter.Limit != 0 {
				t.Errorf("filter must be zero on failure, got %+v", filter)
			}
		})
	}
}

func TestParseVenueFiltersAccumulates(t *testing.T) {
	query := url.Values{
		"minCapacity": {"no"},
		"maxPrice":    {"no"},
		"page":        {"no"},
	}

	_, errs := ParseVenueFilters(query)
	if len(errs) != 3 {
		t.Errorf("expected all 3 violations reported, got %d: %v", len(errs), errs)
	}

	fields := errs.Fields()
	for _, f := range []string{"minCapacity", "maxPrice", "page"} {
		if _, ok := fields[f]; !ok {
			t.Errorf("missing field %q in %v", f, fields)
		}
	}
}
