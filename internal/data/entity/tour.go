package entity

import "time"

type Tour struct {
	Base
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Date        time.Time `db:"date"`
	Destination string    `db:"destination"`
	Amount      int       `db:"amount"`
}
