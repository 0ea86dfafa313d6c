package services

import (
	"github.com/moeinteractive/ohtommys-sub000/entity"
)

// Pure grouping helpers for the public menu and specials views. No store
// access; input order decides category order.

type CategoryGroup struct {
	Category entity.Category   `json:"category"`
	Items    []entity.MenuItem `json:"items"`
}

// GroupByCategory buckets items by category in first-seen order. Items with
// a blank or unknown category land in "uncategorized". Every input item
// appears exactly once.
func GroupByCategory(items []entity.MenuItem) []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	index := make(map[entity.Category]int)

	for _, item := range items {
		cat := item.Category
		if !cat.Valid() {
			cat = entity.CategoryUncategorized
		}
		i, ok := index[cat]
		if !ok {
			i = len(groups)
			index[cat] = i
			groups = append(groups, CategoryGroup{Category: cat})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// SpecialEntry is one item on special for a given day, with the day's
// override price applied and the override description falling back to the
// item's own.
type SpecialEntry struct {
	MenuItem    entity.MenuItem `json:"menuItem"`
	PriceCents  int64           `json:"priceCents"`
	Description string          `json:"description"`
}

type DayGroup struct {
	Day     entity.Weekday `json:"day"`
	Entries []SpecialEntry `json:"entries"`
}

// SpecialsByDay walks the composed items and buckets their special rows by
// weekday, monday first. Days with no specials are omitted.
func SpecialsByDay(items []entity.MenuItem) []DayGroup {
	byDay := make(map[entity.Weekday][]SpecialEntry)
	for _, item := range items {
		for _, sp := range item.Specials {
			desc := sp.Description
			if desc == "" {
				desc = item.Description
			}
			byDay[sp.Day] = append(byDay[sp.Day], SpecialEntry{
				MenuItem:    item,
				PriceCents:  sp.PriceCents,
				Description: desc,
			})
		}
	}

	groups := make([]DayGroup, 0, len(byDay))
	for _, day := range entity.Weekdays {
		if entries, ok := byDay[day]; ok {
			groups = append(groups, DayGroup{Day: day, Entries: entries})
		}
	}
	return groups
}
