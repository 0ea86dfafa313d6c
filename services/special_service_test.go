package services

import (
	"testing"

	"github.com/moeinteractive/ohtommys-sub000/entity"

	qt "github.com/frankban/quicktest"
)

func TestCreateSpecialOneRowPerDay(t *testing.T) {
	c := qt.New(t)
	db := newTestDB(t)
	menuSvc := newMenuService(db)
	svc := newSpecialService(db)

	item, err := menuSvc.Create(&SaveMenuItemIn{
		Name:     "Fish & Chips",
		Category: entity.CategoryEntrees,
	})
	c.Assert(err, qt.IsNil)

	rows, err := svc.Create(&CreateSpecialIn{
		MenuItemID: item.ID,
		PriceCents: 1099,
		Days:       []entity.Weekday{entity.Friday, entity.Saturday},
	})
	c.Assert(err, qt.IsNil)
	c.Assert(rows, qt.HasLen, 2)
	c.Assert(rows[0].Day, qt.Equals, entity.Friday)
	c.Assert(rows[1].Day, qt.Equals, entity.Saturday)

	// friday grouping holds exactly one entry for the item at the override price
	items, err := menuSvc.List()
	c.Assert(err, qt.IsNil)
	groups := SpecialsByDay(items)

	var friday *DayGroup
	for i := range groups {
		if groups[i].Day == entity.Friday {
			friday = &groups[i]
		}
	}
	c.Assert(friday, qt.Not(qt.IsNil))
	c.Assert(friday.Entries, qt.HasLen, 1)
	c.Assert(friday.Entries[0].MenuItem.ID, qt.Equals, item.ID)
	c.Assert(friday.Entries[0].PriceCents, qt.Equals, int64(1099))
}

func TestCreateSpecialRejectsTakenDay(t *testing.T) {
	c := qt.New(t)
	db := newTestDB(t)
	menuSvc := newMenuService(db)
	svc := newSpecialService(db)

	item, err := menuSvc.Create(&SaveMenuItemIn{Name: "Tacos", Category: entity.CategoryEntrees})
	c.Assert(err, qt.IsNil)

	_, err = svc.Create(&CreateSpecialIn{
		MenuItemID: item.ID,
		PriceCents: 899,
		Days:       []entity.Weekday{entity.Tuesday},
	})
	c.Assert(err, qt.IsNil)

	// tuesday is taken; the whole batch is refused, wednesday included
	_, err = svc.Create(&CreateSpecialIn{
		MenuItemID: item.ID,
		PriceCents: 799,
		Days:       []entity.Weekday{entity.Wednesday, entity.Tuesday},
	})
	c.Assert(err, qt.ErrorIs, ErrInvalid)

	specials, err := svc.List()
	c.Assert(err, qt.IsNil)
	c.Assert(specials, qt.HasLen, 1)
}

func TestCreateSpecialValidation(t *testing.T) {
	c := qt.New(t)
	db := newTestDB(t)
	svc := newSpecialService(db)

	_, err := svc.Create(&CreateSpecialIn{MenuItemID: 0, Days: []entity.Weekday{entity.Monday}})
	c.Assert(err, qt.ErrorIs, ErrInvalid)

	_, err = svc.Create(&CreateSpecialIn{MenuItemID: 1, PriceCents: 500})
	c.Assert(err, qt.ErrorIs, ErrInvalid)

	_, err = svc.Create(&CreateSpecialIn{
		MenuItemID: 1,
		PriceCents: 500,
		Days:       []entity.Weekday{"someday"},
	})
	c.Assert(err, qt.ErrorIs, ErrInvalid)

	_, err = svc.Create(&CreateSpecialIn{
		MenuItemID: 9999,
		PriceCents: 500,
		Days:       []entity.Weekday{entity.Monday},
	})
	c.Assert(err, qt.ErrorIs, ErrNotFound)
}

func TestUpdateSpecialKeepsDay(t *testing.T) {
	c := qt.New(t)
	db := newTestDB(t)
	menuSvc := newMenuService(db)
	svc := newSpecialService(db)

	fish, err := menuSvc.Create(&SaveMenuItemIn{Name: "Fish Fry", Category: entity.CategoryEntrees})
	c.Assert(err, qt.IsNil)
	burger, err := menuSvc.Create(&SaveMenuItemIn{Name: "Burger", Category: entity.CategorySandwiches})
	c.Assert(err, qt.IsNil)

	rows, err := svc.Create(&CreateSpecialIn{
		MenuItemID: fish.ID,
		PriceCents: 1099,
		Days:       []entity.Weekday{entity.Friday},
	})
	c.Assert(err, qt.IsNil)

	// move the friday slot to the burger, drop the price
	got, err := svc.Update(rows[0].ID, &UpdateSpecialIn{
		MenuItemID:  burger.ID,
		PriceCents:  899,
		Description: "with fries",
	})
	c.Assert(err, qt.IsNil)
	c.Assert(got.MenuItemID, qt.Equals, burger.ID)
	c.Assert(got.PriceCents, qt.Equals, int64(899))
	c.Assert(got.Description, qt.Equals, "with fries")
	c.Assert(got.Day, qt.Equals, entity.Friday) // day fixed at creation
}

func TestUpdateSpecialRejectsCollision(t *testing.T) {
	c := qt.New(t)
	db := newTestDB(t)
	menuSvc := newMenuService(db)
	svc := newSpecialService(db)

	fish, err := menuSvc.Create(&SaveMenuItemIn{Name: "Fish Fry", Category: entity.CategoryEntrees})
	c.Assert(err, qt.IsNil)
	burger, err := menuSvc.Create(&SaveMenuItemIn{Name: "Burger", Category: entity.CategorySandwiches})
	c.Assert(err, qt.IsNil)

	fishRows, err := svc.Create(&CreateSpecialIn{
		MenuItemID: fish.ID, PriceCents: 1099, Days: []entity.Weekday{entity.Friday},
	})
	c.Assert(err, qt.IsNil)
	_, err = svc.Create(&CreateSpecialIn{
		MenuItemID: burger.ID, PriceCents: 899, Days: []entity.Weekday{entity.Friday},
	})
	c.Assert(err, qt.IsNil)

	// fish's friday row cannot be pointed at the burger, which already runs friday
	_, err = svc.Update(fishRows[0].ID, &UpdateSpecialIn{
		MenuItemID: burger.ID, PriceCents: 799,
	})
	c.Assert(err, qt.ErrorIs, ErrInvalid)
}

func TestDeleteSpecialUnblocksItemDelete(t *testing.T) {
	c := qt.New(t)
	db := newTestDB(t)
	menuSvc := newMenuService(db)
	svc := newSpecialService(db)

	item, err := menuSvc.Create(&SaveMenuItemIn{Name: "Chili", Category: entity.CategorySoupsSalads})
	c.Assert(err, qt.IsNil)
	rows, err := svc.Create(&CreateSpecialIn{
		MenuItemID: item.ID, PriceCents: 599, Days: []entity.Weekday{entity.Monday},
	})
	c.Assert(err, qt.IsNil)

	c.Assert(menuSvc.Delete(item.ID), qt.ErrorIs, ErrHasSpecials)
	c.Assert(svc.Delete(rows[0].ID), qt.IsNil)
	c.Assert(menuSvc.Delete(item.ID), qt.IsNil)
}
