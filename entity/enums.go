package entity

// Category is a menu section. The set is fixed; the admin UI offers these and
// nothing else, and saves are rejected for anything outside it.
type Category string

const (
	CategoryAppetizers    Category = "appetizers"
	CategorySoupsSalads   Category = "soups-salads"
	CategorySandwiches    Category = "sandwiches"
	CategoryBaskets       Category = "baskets"
	CategoryEntrees       Category = "entrees"
	CategorySides         Category = "sides"
	CategoryDesserts      Category = "desserts"
	CategoryDrinks        Category = "drinks"
	CategoryKids          Category = "kids"
	CategoryUncategorized Category = "uncategorized"
)

var categories = map[Category]bool{
	CategoryAppetizers:  true,
	CategorySoupsSalads: true,
	CategorySandwiches:  true,
	CategoryBaskets:     true,
	CategoryEntrees:     true,
	CategorySides:       true,
	CategoryDesserts:    true,
	CategoryDrinks:      true,
	CategoryKids:        true,
}

func (c Category) Valid() bool { return categories[c] }

// SideCategory gates which items may offer a side.
type SideCategory string

const (
	SideStandard SideCategory = "standard"
	SidePremium  SideCategory = "premium"
	SideSeasonal SideCategory = "seasonal"
)

func (c SideCategory) Valid() bool {
	switch c {
	case SideStandard, SidePremium, SideSeasonal:
		return true
	}
	return false
}

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays is the full week in display order, monday first.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d Weekday) Valid() bool {
	for _, w := range Weekdays {
		if d == w {
			return true
		}
	}
	return false
}
