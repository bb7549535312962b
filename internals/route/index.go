package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	coreauth "grades_backend/internals/auth"
	gradeRepository "grades_backend/internals/features/grades/repository"
	gradeRoute "grades_backend/internals/features/grades/route"
)

func SetupRoutes(app *fiber.App, db *mongo.Database, validator coreauth.TokenValidator) {
	api := app.Group("/api")

	log.Println("[INFO] Setting up GradeRoutes...")
	gradeRoute.GradeRoutes(api, gradeRepository.NewGradeRepository(db), validator)
}
