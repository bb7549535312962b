package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GradeModel is the persisted grade document. professor_id/professor_name
// come from the validated caller identity, never from the request body.
type GradeModel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	StudentID     string             `bson:"student_id"`
	StudentName   string             `bson:"student_name"`
	CourseID      string             `bson:"course_id"`
	CourseName    string             `bson:"course_name"`
	Grade         float64            `bson:"grade"`
	Semester      string             `bson:"semester"`
	ProfessorID   string             `bson:"professor_id"`
	ProfessorName string             `bson:"professor_name"`
	Comments      *string            `bson:"comments"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}
