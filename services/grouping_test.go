package services

import (
	"testing"

	"github.com/moeinteractive/ohtommys-sub000/entity"

	qt "github.com/frankban/quicktest"
)

func item(name string, cat entity.Category) entity.MenuItem {
	return entity.MenuItem{Name: name, Category: cat}
}

func TestGroupByCategoryPreservesFirstSeenOrder(t *testing.T) {
	c := qt.New(t)

	items := []entity.MenuItem{
		item("Wings", entity.CategoryAppetizers),
		item("Fish & Chips", entity.CategoryEntrees),
		item("Nachos", entity.CategoryAppetizers),
		item("Mystery Dish", ""),
		item("Brownie", entity.CategoryDesserts),
		item("Steak", entity.CategoryEntrees),
	}

	groups := GroupByCategory(items)

	c.Assert(groups, qt.HasLen, 4)
	c.Assert(groups[0].Category, qt.Equals, entity.CategoryAppetizers)
	c.Assert(groups[1].Category, qt.Equals, entity.CategoryEntrees)
	c.Assert(groups[2].Category, qt.Equals, entity.CategoryUncategorized)
	c.Assert(groups[3].Category, qt.Equals, entity.CategoryDesserts)

	// every input item exactly once
	total := 0
	for _, g := range groups {
		total += len(g.Items)
	}
	c.Assert(total, qt.Equals, len(items))

	c.Assert(groups[0].Items[0].Name, qt.Equals, "Wings")
	c.Assert(groups[0].Items[1].Name, qt.Equals, "Nachos")
	c.Assert(groups[2].Items[0].Name, qt.Equals, "Mystery Dish")
}

func TestGroupByCategoryEmptyInput(t *testing.T) {
	c := qt.New(t)
	c.Assert(GroupByCategory(nil), qt.HasLen, 0)
}

func TestSpecialsByDayWeekOrderAndOverrides(t *testing.T) {
	c := qt.New(t)

	fish := item("Fish Fry", entity.CategoryEntrees)
	fish.Description = "beer battered"
	fish.Specials = []entity.Special{
		{Day: entity.Friday, PriceCents: 1099},
		{Day: entity.Monday, PriceCents: 999, Description: "monday only"},
	}
	burger := item("Burger", entity.CategorySandwiches)
	burger.Specials = []entity.Special{
		{Day: entity.Friday, PriceCents: 899},
	}
	plain := item("Salad", entity.CategorySoupsSalads) // no specials

	groups := SpecialsByDay([]entity.MenuItem{fish, burger, plain})

	// monday before friday, empty days omitted
	c.Assert(groups, qt.HasLen, 2)
	c.Assert(groups[0].Day, qt.Equals, entity.Monday)
	c.Assert(groups[1].Day, qt.Equals, entity.Friday)

	c.Assert(groups[0].Entries, qt.HasLen, 1)
	c.Assert(groups[0].Entries[0].Description, qt.Equals, "monday only")

	c.Assert(groups[1].Entries, qt.HasLen, 2)
	// no override description: fall back to the item's own
	c.Assert(groups[1].Entries[0].Description, qt.Equals, "beer battered")
	c.Assert(groups[1].Entries[0].PriceCents, qt.Equals, int64(1099))
	c.Assert(groups[1].Entries[1].PriceCents, qt.Equals, int64(899))
}
