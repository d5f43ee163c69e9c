package models

type Guest struct {
	ID         int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string `json:"name" gorm:"index"`
	Occupation string `json:"occupation"`
}

func (Guest) TableName() string {
	return "guests"
}
