package entity

type ItemSide struct {
	MenuItemID uint `gorm:"primaryKey" json:"menuItemId"`
	SideID     uint `gorm:"primaryKey" json:"sideId"`
	IsDefault  bool `gorm:"not null;default:false" json:"isDefault"`

	Side Side `json:"side"`
}
