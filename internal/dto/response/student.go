package response

import (
	"tour-booking/internal/data/entity"
)

type StudentResponse struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Age    int           `json:"age"`
	Class  string        `json:"class"`
	Gender entity.Gender `json:"gender"`
}

func StudentToResponse(student *entity.Student) StudentResponse {
	return StudentResponse{
		ID:     student.ID.String(),
		Name:   student.Name,
		Age:    student.Age,
		Class:  student.Class,
		Gender: student.Gender,
	}
}
