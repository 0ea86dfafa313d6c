package services

import (
	"testing"
	"time"

	"github.com/moeinteractive/ohtommys-sub000/entity"
	"github.com/moeinteractive/ohtommys-sub000/repository"

	qt "github.com/frankban/quicktest"
)

func TestEventLifecycle(t *testing.T) {
	c := qt.New(t)
	db := newTestDB(t)
	svc := NewEventService(repository.NewEventRepository(db))

	date := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	oneTime, err := svc.Create(&SaveEventIn{
		Title:     "4th of July Cookout",
		Date:      &date,
		StartTime: "12:00",
		EndTime:   "20:00",
	})
	c.Assert(err, qt.IsNil)

	recurring, err := svc.Create(&SaveEventIn{
		Title:       "Trivia Night",
		IsRecurring: true,
		Days:        []entity.Weekday{entity.Wednesday},
		StartTime:   "19:00",
		EndTime:     "21:00",
	})
	c.Assert(err, qt.IsNil)

	events, err := svc.List()
	c.Assert(err, qt.IsNil)
	c.Assert(events, qt.HasLen, 2)
	// recurring first
	c.Assert(events[0].ID, qt.Equals, recurring.ID)
	c.Assert(events[0].Days, qt.DeepEquals, []entity.Weekday{entity.Wednesday})

	got, err := svc.Update(oneTime.ID, &SaveEventIn{
		Title:     "4th of July Cookout",
		Date:      &date,
		StartTime: "11:00",
		EndTime:   "20:00",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(got.StartTime, qt.Equals, "11:00")

	c.Assert(svc.Delete(oneTime.ID), qt.IsNil)
	missing, err := svc.Get(oneTime.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(missing, qt.IsNil)
}

func TestEventValidation(t *testing.T) {
	c := qt.New(t)
	db := newTestDB(t)
	svc := NewEventService(repository.NewEventRepository(db))
	date := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(&SaveEventIn{Title: ""})
	c.Assert(err, qt.ErrorIs, ErrInvalid)

	// one-time needs a date
	_, err = svc.Create(&SaveEventIn{Title: "Party"})
	c.Assert(err, qt.ErrorIs, ErrInvalid)

	// recurring needs days, not a date
	_, err = svc.Create(&SaveEventIn{Title: "Trivia", IsRecurring: true})
	c.Assert(err, qt.ErrorIs, ErrInvalid)
	_, err = svc.Create(&SaveEventIn{Title: "Trivia", IsRecurring: true, Date: &date, Days: []entity.Weekday{entity.Monday}})
	c.Assert(err, qt.ErrorIs, ErrInvalid)

	// malformed clock and inverted range
	_, err = svc.Create(&SaveEventIn{Title: "Party", Date: &date, StartTime: "7pm"})
	c.Assert(err, qt.ErrorIs, ErrInvalid)
	_, err = svc.Create(&SaveEventIn{Title: "Party", Date: &date, StartTime: "20:00", EndTime: "12:00"})
	c.Assert(err, qt.ErrorIs, ErrInvalid)
}
