package services

import (
	"testing"

	"github.com/moeinteractive/ohtommys-sub000/repository"

	qt "github.com/frankban/quicktest"
)

func TestContentUpsertByKey(t *testing.T) {
	c := qt.New(t)
	db := newTestDB(t)
	svc := NewContentService(repository.NewContentRepository(db))

	missing, err := svc.Get("dressings")
	c.Assert(err, qt.IsNil)
	c.Assert(missing, qt.IsNil)

	first, err := svc.Set("dressings", "Ranch, Italian, French")
	c.Assert(err, qt.IsNil)

	// second write updates the same row
	second, err := svc.Set("dressings", "Ranch, Italian, French, Blue Cheese")
	c.Assert(err, qt.IsNil)
	c.Assert(second.ID, qt.Equals, first.ID)

	got, err := svc.Get("dressings")
	c.Assert(err, qt.IsNil)
	c.Assert(got.Value, qt.Equals, "Ranch, Italian, French, Blue Cheese")

	blocks, err := svc.List()
	c.Assert(err, qt.IsNil)
	c.Assert(blocks, qt.HasLen, 1)

	_, err = svc.Set("  ", "oops")
	c.Assert(err, qt.ErrorIs, ErrInvalid)
}
