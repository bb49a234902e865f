package series

import (
	"errors"
	"strings"
	"time"
)

// Series groups matches under a tournament or bilateral tour.
type Series struct {
	ID          string
	Name        string
	StartDate   *time.Time
	EndDate     *time.Time
	Description string
	CreatedAt   time.Time
}

func (s Series) Validate() error {
	if s.ID == "" {
		return errors.New("series id is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("series name is required")
	}
	if s.StartDate != nil && s.EndDate != nil && s.EndDate.Before(*s.StartDate) {
		return errors.New("series end date is before start date")
	}
	return nil
}
