package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/moeinteractive/ohtommys-sub000/entity"
	"github.com/moeinteractive/ohtommys-sub000/repository"
)

type EventService struct {
	Repo *repository.EventRepository
}

func NewEventService(repo *repository.EventRepository) *EventService {
	return &EventService{Repo: repo}
}

type SaveEventIn struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	IsRecurring bool             `json:"isRecurring"`
	Date        *time.Time       `json:"date"`
	Days        []entity.Weekday `json:"days"`
	StartTime   string           `json:"startTime"`
	EndTime     string           `json:"endTime"`
}

func (in *SaveEventIn) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalid)
	}
	if in.IsRecurring {
		if in.Date != nil {
			return fmt.Errorf("%w: a recurring event carries weekdays, not a date", ErrInvalid)
		}
		if len(in.Days) == 0 {
			return fmt.Errorf("%w: a recurring event needs at least one day", ErrInvalid)
		}
		for _, day := range in.Days {
			if !day.Valid() {
				return fmt.Errorf("%w: unknown day %q", ErrInvalid, day)
			}
		}
	} else {
		if in.Date == nil {
			return fmt.Errorf("%w: a one-time event needs a date", ErrInvalid)
		}
		if len(in.Days) > 0 {
			return fmt.Errorf("%w: a one-time event carries a date, not weekdays", ErrInvalid)
		}
	}

	start, err := parseClock(in.StartTime)
	if err != nil {
		return err
	}
	end, err := parseClock(in.EndTime)
	if err != nil {
		return err
	}
	if in.StartTime != "" && in.EndTime != "" && !start.Before(end) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalid)
	}
	return nil
}

func parseClock(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q is not HH:MM", ErrInvalid, s)
	}
	return t, nil
}

func (s *EventService) List() ([]entity.Event, error) {
	return s.Repo.FindAll()
}

func (s *EventService) Get(id uint) (*entity.Event, error) {
	return s.Repo.FindByID(id)
}

func (s *EventService) Create(in *SaveEventIn) (*entity.Event, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	ev := entity.Event{
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		IsRecurring: in.IsRecurring,
		Date:        in.Date,
		Days:        in.Days,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
	}
	if err := s.Repo.Create(&ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

func (s *EventService) Update(id uint, in *SaveEventIn) (*entity.Event, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	ev, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, fmt.Errorf("%w: event %d", ErrNotFound, id)
	}
	ev.Title = strings.TrimSpace(in.Title)
	ev.Description = in.Description
	ev.IsRecurring = in.IsRecurring
	ev.Date = in.Date
	ev.Days = in.Days
	ev.StartTime = in.StartTime
	ev.EndTime = in.EndTime
	if err := s.Repo.Update(ev); err != nil {
		return nil, err
	}
	return ev, nil
}

func (s *EventService) Delete(id uint) error {
	ev, err := s.Repo.FindByID(id)
	if err != nil {
		return err
	}
	if ev == nil {
		return fmt.Errorf("%w: event %d", ErrNotFound, id)
	}
	return s.Repo.Delete(id)
}
