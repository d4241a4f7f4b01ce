package entity

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

type Student struct {
	Base
	Name   string `db:"name"`
	Age    int    `db:"age"`
	Class  string `db:"class"`
	Gender Gender `db:"gender"`
}
