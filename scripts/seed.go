package main

import (
	"log"

	"edtech/config"
	"edtech/database"
	"edtech/middleware"
	"edtech/models"
)

// Seeds the admin account and the starter badge set. Safe to rerun.
func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	admin := models.User{
		Name:  "Platform Admin",
		Email: "admin@edtech.local",
		Role:  models.RoleAdmin,
	}
	if err := db.Where(models.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
	log.Printf("Admin user ready (id=%d)", admin.ID)

	token, err := middleware.GenerateJWT(admin.ID, admin.Role)
	if err != nil {
		log.Fatalf("Failed to issue admin token: %v", err)
	}
	log.Printf("Admin bearer token: %s", token)

	badges := []models.Badge{
		{Name: "First Steps", Description: "Complete your first lesson", Criteria: "lessons_completed >= 1", Icon: "🌱"},
		{Name: "Quiz Rookie", Description: "Pass your first quiz", Criteria: "quizzes_passed >= 1", Icon: "📝"},
		{Name: "Course Finisher", Description: "Complete an entire course", Criteria: "courses_completed >= 1", Icon: "🎓"},
		{Name: "Perfect Score", Description: "Score 100% on a quiz", Criteria: "quiz_score == 100", Icon: "🏆"},
	}
	for _, b := range badges {
		badge := b
		if err := db.Where(models.Badge{Name: badge.Name}).FirstOrCreate(&badge).Error; err != nil {
			log.Printf("Failed to seed badge %q: %v", b.Name, err)
			continue
		}
	}
	log.Printf("Seeded %d starter badges", len(badges))
}
