package models

// Episode is a dated, numbered show. Its appearances are looked up by
// episode_id rather than embedded here.
type Episode struct {
	ID     int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Date   string `json:"date"`
	Number int    `json:"number"`
}

func (Episode) TableName() string {
	return "episodes"
}
