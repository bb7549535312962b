package dto

import (
	"strings"
	"time"

	model "grades_backend/internals/features/grades/model"
)

/* =========================
   REQUEST
   ========================= */

// GradeCreateRequest is the professor-supplied payload. Grade is a pointer
// so a literal 0 still satisfies required; range is enforced by the tags.
type GradeCreateRequest struct {
	StudentID   string   `json:"student_id" validate:"required"`
	StudentName string   `json:"student_name" validate:"required"`
	CourseID    string   `json:"course_id" validate:"required"`
	CourseName  string   `json:"course_name" validate:"required"`
	Grade       *float64 `json:"grade" validate:"required,gte=0,lte=100"`
	Semester    string   `json:"semester" validate:"required"`
	Comments    *string  `json:"comments"`
}

func (r *GradeCreateRequest) Normalize() {
	r.StudentID = strings.TrimSpace(r.StudentID)
	r.StudentName = strings.TrimSpace(r.StudentName)
	r.CourseID = strings.TrimSpace(r.CourseID)
	r.CourseName = strings.TrimSpace(r.CourseName)
	r.Semester = strings.TrimSpace(r.Semester)
	if r.Comments != nil {
		v := strings.TrimSpace(*r.Comments)
		if v == "" {
			r.Comments = nil
		} else {
			r.Comments = &v
		}
	}
}

func (r *GradeCreateRequest) ToModel() *model.GradeModel {
	return &model.GradeModel{
		StudentID:   r.StudentID,
		StudentName: r.StudentName,
		CourseID:    r.CourseID,
		CourseName:  r.CourseName,
		Grade:       *r.Grade,
		Semester:    r.Semester,
		Comments:    r.Comments,
	}
}

// GradeUpdateRequest applies only the fields that are present.
type GradeUpdateRequest struct {
	Grade    *float64 `json:"grade" validate:"omitempty,gte=0,lte=100"`
	Comments *string  `json:"comments"`
}

/* =========================
   RESPONSE
   ========================= */

type GradeResponse struct {
	ID            string    `json:"id"`
	StudentID     string    `json:"student_id"`
	StudentName   string    `json:"student_name"`
	CourseID      string    `json:"course_id"`
	CourseName    string    `json:"course_name"`
	Grade         float64   `json:"grade"`
	Semester      string    `json:"semester"`
	ProfessorID   string    `json:"professor_id"`
	ProfessorName string    `json:"professor_name"`
	Comments      *string   `json:"comments"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToGradeResponse(m *model.GradeModel) *GradeResponse {
	return &GradeResponse{
		ID:            m.ID.Hex(),
		StudentID:     m.StudentID,
		StudentName:   m.StudentName,
		CourseID:      m.CourseID,
		CourseName:    m.CourseName,
		Grade:         m.Grade,
		Semester:      m.Semester,
		ProfessorID:   m.ProfessorID,
		ProfessorName: m.ProfessorName,
		Comments:      m.Comments,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func ToGradeResponses(ms []model.GradeModel) []*GradeResponse {
	out := make([]*GradeResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToGradeResponse(&ms[i]))
	}
	return out
}
