package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxSummaryLength is counted in characters, not bytes.
const MaxSummaryLength = 500

const dateLayout = "2006-01-02"

var (
	emailPattern    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phonePattern    = regexp.MustCompile(`^\+?[\d\s\-()]{7,15}$`)
	linkedInPattern = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/.*$`)
)

// Date validation messages.
const (
	ErrStartDateRequired = "start date required"
	ErrEndDateRequired   = "end date required"
	ErrStartAfterEnd     = "start date must precede end date"
	ErrDateFormat        = "invalid date format (expected yyyy-mm-dd)"
)

// ValidatePersonalInfo returns one message per invalid field. The map is
// never nil and is empty when everything passes.
func ValidatePersonalInfo(p PersonalInfo) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(p.Name) == "" {
		errs[FieldName] = "name is required"
	}

	if strings.TrimSpace(p.Email) == "" {
		errs[FieldEmail] = "email is required"
	} else if !emailPattern.MatchString(p.Email) {
		errs[FieldEmail] = "invalid email"
	}

	if strings.TrimSpace(p.Phone) != "" && !phonePattern.MatchString(p.Phone) {
		errs[FieldPhone] = "invalid phone number"
	}

	if strings.TrimSpace(p.LinkedIn) != "" && !linkedInPattern.MatchString(p.LinkedIn) {
		errs[FieldLinkedIn] = "invalid LinkedIn URL"
	}

	if utf8.RuneCountInString(p.Summary) > MaxSummaryLength {
		errs[FieldSummary] = fmt.Sprintf("summary must be at most %d characters", MaxSummaryLength)
	}

	return errs
}

// ValidateDates returns the first failing date rule, or "" when the period is
// valid.
func ValidateDates(start string, end *string, isCurrent bool) string {
	if v := DateViolations(start, end, isCurrent); len(v) > 0 {
		return v[0]
	}
	return ""
}

// DateViolations returns every failing date rule in rule order.
func DateViolations(start string, end *string, isCurrent bool) []string {
	var out []string

	endValue := ""
	if end != nil {
		endValue = *end
	}

	if start == "" {
		out = append(out, ErrStartDateRequired)
	}
	if !isCurrent && endValue == "" {
		out = append(out, ErrEndDateRequired)
	}
	if start == "" || endValue == "" {
		return out
	}

	s, errS := time.Parse(dateLayout, start)
	e, errE := time.Parse(dateLayout, endValue)
	if errS != nil || errE != nil {
		return append(out, ErrDateFormat)
	}
	if s.After(e) {
		out = append(out, ErrStartAfterEnd)
	}
	return out
}

// Report is the full validation state of a resume.
type Report struct {
	PersonalInfo map[string]string `json:"personalInfo"`
	Experience   map[string]string `json:"experience"`
	Education    map[string]string `json:"education"`
}

// Valid reports whether nothing failed.
func (r Report) Valid() bool {
	return len(r.PersonalInfo) == 0 && len(r.Experience) == 0 && len(r.Education) == 0
}

// ValidateResume runs every rule. Date errors are keyed by entity id.
func ValidateResume(r Resume) Report {
	rep := Report{
		PersonalInfo: ValidatePersonalInfo(r.PersonalInfo),
		Experience:   map[string]string{},
		Education:    map[string]string{},
	}
	for _, e := range r.Experience {
		if msg := ValidateDates(e.StartDate, e.EndDate, e.IsCurrent); msg != "" {
			rep.Experience[e.ID] = msg
		}
	}
	for _, e := range r.Education {
		if msg := ValidateDates(e.StartDate, e.EndDate, e.IsCurrent); msg != "" {
			rep.Education[e.ID] = msg
		}
	}
	return rep
}
