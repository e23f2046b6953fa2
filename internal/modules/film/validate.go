package film

import (
	"strings"
	"time"

	"filmorate/internal/domain"
)

const maxDescriptionLength = 200

// earliestReleaseDate is the date of the first public film screening;
// nothing can have been released before it.
var earliestReleaseDate = domain.NewDate(1895, time.December, 28)

// validateFilm checks field rules in a fixed order, first failure
// wins. MPA and genre ids are not checked here: they are resolved
// against the reference tables by the service, and a miss there is a
// lookup failure rather than a validation failure.
func validateFilm(f *domain.Film) error {
	if strings.TrimSpace(f.Name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if len([]rune(f.Description)) > maxDescriptionLength {
		return &domain.ValidationError{Field: "description", Reason: "must not exceed 200 characters"}
	}
	if f.ReleaseDate.IsZero() || f.ReleaseDate.Before(earliestReleaseDate) {
		return &domain.ValidationError{Field: "releaseDate", Reason: "must not be before 1895-12-28"}
	}
	if f.Duration <= 0 {
		return &domain.ValidationError{Field: "duration", Reason: "must be a positive number of minutes"}
	}
	return nil
}
