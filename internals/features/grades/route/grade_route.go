package route

import (
	"github.com/gofiber/fiber/v2"

	coreauth "grades_backend/internals/auth"
	gradeController "grades_backend/internals/features/grades/controller"
	authmw "grades_backend/internals/middlewares/auth"
)

// GradeRoutes mounts the grade endpoints under /grades.
// Static segments are registered before /:id on purpose.
func GradeRoutes(r fiber.Router, store gradeController.GradeStore, validator coreauth.TokenValidator) {
	ctl := &gradeController.GradeController{Store: store}

	g := r.Group("/grades", authmw.AuthMiddleware(validator))

	// View (students, admins, professors)
	g.Get("/", authmw.RequireView("grade listing"), ctl.GetAll)
	g.Get("/professor/my-grades", authmw.RequireManage("my grades"), ctl.GetMyGrades)
	g.Get("/student/:student_id", authmw.RequireView("student grades"), ctl.GetByStudent)
	g.Get("/course/:course_id", authmw.RequireView("course grades"), ctl.GetByCourse)
	g.Get("/:id", authmw.RequireView("grade detail"), ctl.GetByID)

	// Manage (professors only)
	g.Post("/", authmw.RequireManage("grade creation"), ctl.Create)
	g.Put("/:id", authmw.RequireManage("grade update"), ctl.Update)
	g.Delete("/:id", authmw.RequireManage("grade deletion"), ctl.Delete)
}
