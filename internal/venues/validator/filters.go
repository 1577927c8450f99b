package validator

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"venuebook/pkg/config"
	"venuebook/pkg/model"
	"venuebook/pkg/sanitizer"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Fields groups messages by field name for the error payload.
func (v ValidationErrors) Fields() map[string]any {
	fields := make(map[string]any, len(v))
	for _, err := range v {
		existing, _ := fields[err.Field].([]string)
		fields[err.Field] = append(existing, err.Message)
	}
	return fields
}

// ParseVenueFilters coerces listing query parameters into a filter.
// Every bad coercion is reported against its parameter; on any failure
// the returned filter must not be used.
func ParseVenueFilters(query url.Values) (model.VenueFilter, ValidationErrors) {
	var errs ValidationErrors

	filter := model.VenueFilter{
		City:  sanitizer.NormalizeCity(query.Get("city")),
		Page:  config.DefaultPage,
		Limit: config.DefaultPageLimit,
	}

	if s := query.Get("minCapacity"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			errs = append(errs, ValidationError{
				Field:   "minCapacity",
				Message: "minCapacity must be a positive integer",
			})
		} else {
			filter.MinCapacity = v
		}
	}

	if s := query.Get("maxPrice"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v <= 0 {
			errs = append(errs, ValidationError{
				Field:   "maxPrice",
				Message: "maxPrice must be a positive number",
			})
		} else {
			filter.MaxPrice = v
		}
	}

	if s := query.Get("page"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			errs = append(errs, ValidationError{
				Field:   "page",
				Message: "page must be a positive integer",
			})
		} else {
			filter.Page = v
		}
	}

	if s := query.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			errs = append(errs, ValidationError{
				Field:   "limit",
				Message: fmt.Sprintf("limit must be an integer between 1 and %d", config.MaxPageLimit),
			})
		} else if v > config.MaxPageLimit {
			filter.Limit = config.MaxPageLimit
		} else {
			filter.Limit = v
		}
	}

	if len(errs) > 0 {
		return model.VenueFilter{}, errs
	}

	return filter, nil
}
