package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"venuebook/pkg/logger"

	"github.com/go-playground/validator/v10"
)

const (
	dateOnlyLayout = "2006-01-02"
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

// CreateInquiryRequest is the raw booking submission. Dates arrive as
// strings and are parsed here; everything downstream works with
// time.Time.
type CreateInquiryRequest struct {
	VenueID       string `json:"venueId" validate:"required"`
	CompanyName   string `json:"companyName" validate:"required,min=2,max=100"`
	Email         string `json:"email" validate:"required,email"`
	StartDate     string `json:"startDate" validate:"required"`
	EndDate       string `json:"endDate" validate:"required"`
	AttendeeCount int    `json:"attendeeCount" validate:"required,gt=0"`
	Message       string `json:"message,omitempty" validate:"omitempty,max=1000"`
}

// DateRange is the parsed candidate span [Start, End).
type DateRange struct {
	Start time.Time
	End   time.Time
}

type InquiryValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
	now      func() time.Time
}

func NewInquiryValidator(log *logger.Logger) *InquiryValidator {
	v := validator.New()

	// Report errors under the wire field names, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &InquiryValidator{
		validate: v,
		logger:   log,
		now:      time.Now,
	}
}

// Validate accumulates every violation rather than stopping at the
// first, so the caller gets the complete field-keyed picture. On
// success it returns the parsed candidate span.
func (v *InquiryValidator) Validate(req *CreateInquiryRequest) (DateRange, ValidationErrors) {
	var errs ValidationErrors

	if err := v.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			errs = v.translateValidationErrors(validationErrs)
		} else {
			errs = append(errs, ValidationError{Field: "request", Message: err.Error()})
		}
	}

	var span DateRange
	startValid, endValid := true, true

	if req.StartDate != "" {
		start, err := parseDate(req.StartDate)
		if err != nil {
			errs = append(errs, ValidationError{
				Field:   "startDate",
				Message: "Start date must be a valid date",
			})
			startValid = false
		} else {
			span.Start = start
			if start.Before(todayMidnight(v.now())) {
				errs = append(errs, ValidationError{
					Field:   "startDate",
					Message: "Start date cannot be in the past",
				})
			}
		}
	} else {
		startValid = false
	}

	if req.EndDate != "" {
		end, err := parseDate(req.EndDate)
		if err != nil {
			errs = append(errs, ValidationError{
				Field:   "endDate",
				Message: "End date must be a valid date",
			})
			endValid = false
		} else {
			span.End = end
		}
	} else {
		endValid = false
	}

	if startValid && endValid && !span.End.After(span.Start) {
		errs = append(errs, ValidationError{
			Field:   "endDate",
			Message: "End date must be after start date",
		})
	}

	if len(errs) > 0 {
		v.logger.Warn("Booking inquiry validation failed", "violations", len(errs))
		return DateRange{}, errs
	}

	return span, nil
}

func (v *InquiryValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		case "email":
			message = "Please provide a valid email address"
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
		}

		// attendeeCount is numeric, character phrasing would be wrong.
		if err.Field() == "attendeeCount" {
			message = "Attendee count must be a positive whole number"
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}

// parseDate accepts a calendar date or a full RFC3339 timestamp.
// Date-only values are taken as midnight UTC.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateOnlyLayout, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}

// todayMidnight truncates the reference instant to the start of its
// UTC day. A booking starting today is allowed; yesterday is not.
func todayMidnight(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
