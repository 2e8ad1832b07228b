package routers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"edtech/config"
	"edtech/database"
	"edtech/logger"
	"edtech/middleware"
	"edtech/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Lesson{},
		&models.Quiz{},
		&models.QuizQuestion{},
		&models.UserProgress{},
		&models.QuizAttempt{},
		&models.Transaction{},
		&models.Rank{},
		&models.Badge{},
		&models.UserBadge{},
		&models.Notification{},
		&models.Team{},
		&models.Membership{},
	))

	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{
		JWTKey:      "testSecret",
		Environment: "development",
	}

	app := fiber.New()
	Setup(app, logger.New("", "development"))
	return app, db
}

func request(app *fiber.App, method, path, body string, userID uint) (*http.Response, map[string]interface{}, error) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		req.Header.Set(middleware.IdentityHeader, strconv.FormatUint(uint64(userID), 10))
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		return nil, nil, err
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, err
	}
	payload := map[string]interface{}{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &payload); err != nil {
			return resp, nil, err
		}
	}
	return resp, payload, nil
}

func seedUser(t *testing.T, db *gorm.DB, role string) models.User {
	t.Helper()
	user := models.User{
		Name:  role + " user",
		Email: fmt.Sprintf("%s-%s@test.local", role, strings.ReplaceAll(t.Name(), "/", "-")),
		Role:  role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestHealth(t *testing.T) {
	app, _ := setupApp(t)

	for _, path := range []string{"/", "/health"} {
		resp, payload, err := request(app, "GET", path, "", 0)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, true, payload["success"])
		assert.Equal(t, "EdTech API is running", payload["message"])
	}
}

func TestPreflightBypassesAuth(t *testing.T) {
	app, _ := setupApp(t)

	req := httptest.NewRequest("OPTIONS", "/courses", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "OK", payload["message"])
}

func TestMissingIdentityFailsBeforeHandlers(t *testing.T) {
	app, db := setupApp(t)

	course := models.Course{Title: "Hidden"}
	require.NoError(t, db.Create(&course).Error)

	resp, payload, err := request(app, "GET", "/courses", "", 0)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, false, payload["success"])
	assert.Nil(t, payload["data"])
}

func TestUnknownIdentityRejected(t *testing.T) {
	app, _ := setupApp(t)

	resp, payload, err := request(app, "GET", "/courses", "", 999)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "User not found!", payload["error"])
}

func TestBearerTokenIdentity(t *testing.T) {
	app, db := setupApp(t)
	admin := seedUser(t, db, models.RoleAdmin)

	token, err := middleware.GenerateJWT(admin.ID, admin.Role)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/courses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestStudentWriteDenials(t *testing.T) {
	app, db := setupApp(t)
	student := seedUser(t, db, models.RoleStudent)

	denied := []struct{ method, path string }{
		{"POST", "/courses"},
		{"PUT", "/courses/1"},
		{"DELETE", "/courses/1"},
		{"POST", "/lessons"},
		{"POST", "/quizzes"},
		{"POST", "/quiz-questions"},
		{"POST", "/transactions"},
		{"POST", "/ranks"},
		{"POST", "/badges"},
		{"POST", "/user-badges"},
		{"POST", "/notifications"},
	}

	for _, tt := range denied {
		resp, payload, err := request(app, tt.method, tt.path, "{}", student.ID)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "%s %s", tt.method, tt.path)
		assert.Equal(t, "You do not have permission to access this resource!", payload["error"])
	}
}

func TestMissingFieldsEnumerated(t *testing.T) {
	app, db := setupApp(t)
	admin := seedUser(t, db, models.RoleAdmin)

	resp, payload, err := request(app, "POST", "/courses", `{"title":"Go 101"}`, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Missing required fields: description, instructorId, category, price", payload["error"])
}

func TestCourseCreateProvisionsTeam(t *testing.T) {
	app, db := setupApp(t)
	admin := seedUser(t, db, models.RoleAdmin)

	body := `{"title":"Go 101","description":"Intro","instructorId":"instr-1","category":"programming","price":49.99}`
	resp, payload, err := request(app, "POST", "/courses", body, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := payload["data"].(map[string]interface{})
	assert.Equal(t, "Go 101", data["title"])
	assert.Equal(t, float64(0), data["enrollmentCount"])
	assert.Equal(t, false, data["isPublished"])

	courseID := uint(data["ID"].(float64))
	var team models.Team
	require.NoError(t, db.Where("team_id = ?", models.CourseTeamID(courseID)).First(&team).Error)
	assert.Equal(t, "Go 101", team.Name)
}

func TestCourseGetInlinesOrderedLessons(t *testing.T) {
	app, db := setupApp(t)
	admin := seedUser(t, db, models.RoleAdmin)

	course := models.Course{Title: "Go 101"}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&models.Lesson{CourseID: course.ID, Title: "Second", OrderIndex: 2}).Error)
	require.NoError(t, db.Create(&models.Lesson{CourseID: course.ID, Title: "First", OrderIndex: 1}).Error)

	resp, payload, err := request(app, "GET", fmt.Sprintf("/courses/%d", course.ID), "", admin.ID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := payload["data"].(map[string]interface{})
	lessons := data["lessons"].([]interface{})
	require.Len(t, lessons, 2)
	assert.Equal(t, "First", lessons[0].(map[string]interface{})["title"])
	assert.Equal(t, "Second", lessons[1].(map[string]interface{})["title"])
}

func TestEnrollmentLifecycle(t *testing.T) {
	app, db := setupApp(t)
	student := seedUser(t, db, models.RoleStudent)

	course := models.Course{Title: "Go 101", Price: 20}
	require.NoError(t, db.Create(&course).Error)

	body := fmt.Sprintf(`{"userId":%d,"courseId":%d}`, student.ID, course.ID)

	// first enrollment succeeds
	resp, _, err := request(app, "POST", "/enroll", body, student.ID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// duplicate enrollment is rejected
	resp, payload, err := request(app, "POST", "/enroll", body, student.ID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User already enrolled in this course!", payload["error"])

	// counter bumped exactly once
	var saved models.Course
	require.NoError(t, db.First(&saved, course.ID).Error)
	assert.Equal(t, 1, saved.EnrollmentCount)

	// enrollment transaction recorded with the course price
	var tx models.Transaction
	require.NoError(t, db.Where("user_id = ? AND type = ?", student.ID, "enrollment").First(&tx).Error)
	assert.Equal(t, 20.0, tx.Amount)
	assert.Equal(t, "completed", tx.Status)
	assert.NotEmpty(t, tx.Reference)

	// welcome notification created
	var note models.Notification
	require.NoError(t, db.Where("user_id = ? AND type = ?", student.ID, "enrollment").First(&note).Error)
	assert.False(t, note.IsRead)

	// enrolled course list resolves the course
	resp, payload, err = request(app, "GET", fmt.Sprintf("/enroll?userId=%d", student.ID), "", student.ID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := payload["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Go 101", data[0].(map[string]interface{})["title"])
}

func TestEnrollUnknownCourse(t *testing.T) {
	app, db := setupApp(t)
	student := seedUser(t, db, models.RoleStudent)

	body := fmt.Sprintf(`{"userId":%d,"courseId":12345}`, student.ID)
	resp, payload, err := request(app, "POST", "/enroll", body, student.ID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Course not found!", payload["error"])
}

func TestUnenrollFloorsCounterAtZero(t *testing.T) {
	app, db := setupApp(t)
	admin := seedUser(t, db, models.RoleAdmin)
	student := seedUser(t, db, models.RoleStudent)

	// counter already at zero despite an existing membership
	course := models.Course{Title: "Go 101", EnrollmentCount: 0}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&models.Membership{
		TeamID: models.CourseTeamID(course.ID),
		UserID: student.ID,
		Role:   models.RoleStudent,
	}).Error)

	body := fmt.Sprintf(`{"userId":%d,"courseId":%d}`, student.ID, course.ID)
	resp, _, err := request(app, "DELETE", "/enroll", body, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var saved models.Course
	require.NoError(t, db.First(&saved, course.ID).Error)
	assert.Equal(t, 0, saved.EnrollmentCount)

	// membership gone
	var count int64
	db.Model(&models.Membership{}).Where("user_id = ? AND is_deleted = ?", student.ID, false).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestProgressUpsert(t *testing.T) {
	app, db := setupApp(t)
	student := seedUser(t, db, models.RoleStudent)

	body := fmt.Sprintf(`{"userId":%d,"courseId":1,"lessonId":2}`, student.ID)

	resp, _, err := request(app, "POST", "/progress", body, student.ID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _, err = request(app, "POST", "/progress", body, student.ID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	db.Model(&models.UserProgress{}).
		Where("user_id = ? AND course_id = ? AND lesson_id = ?", student.ID, 1, 2).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func seedQuiz(t *testing.T, db *gorm.DB, courseID uint, correct []string) models.Quiz {
	t.Helper()
	quiz := models.Quiz{CourseID: courseID, Title: "Checkpoint", TimeLimit: 10}
	require.NoError(t, db.Create(&quiz).Error)
	for i, answer := range correct {
		require.NoError(t, db.Create(&models.QuizQuestion{
			QuizID:        quiz.ID,
			Question:      fmt.Sprintf("Question %d", i+1),
			Options:       []byte(`["A","B","C"]`),
			CorrectAnswer: answer,
			OrderIndex:    i + 1,
		}).Error)
	}
	return quiz
}

func TestQuizAttemptScoring(t *testing.T) {
	app, db := setupApp(t)
	student := seedUser(t, db, models.RoleStudent)

	course := models.Course{Title: "Go 101"}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&models.Membership{
		TeamID: models.CourseTeamID(course.ID),
		UserID: student.ID,
		Role:   models.RoleStudent,
	}).Error)

	quiz := seedQuiz(t, db, course.ID, []string{"A", "C", "B"})

	body := fmt.Sprintf(`{"userId":%d,"quizId":%d,"answers":["A","B","B"]}`, student.ID, quiz.ID)
	resp, payload, err := request(app, "POST", "/quiz-attempts", body, student.ID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := payload["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["score"])
	assert.Equal(t, float64(3), data["totalQuestions"])
	assert.Equal(t, true, data["passed"])
	assert.InDelta(t, 66.67, payload["percentage"].(float64), 0.01)

	// attempt counter bumped best-effort
	var saved models.Quiz
	require.NoError(t, db.First(&saved, quiz.ID).Error)
	assert.Equal(t, 1, saved.AttemptCount)
}

func TestQuizAttemptRequiresEnrollment(t *testing.T) {
	app, db := setupApp(t)
	student := seedUser(t, db, models.RoleStudent)

	course := models.Course{Title: "Go 101"}
	require.NoError(t, db.Create(&course).Error)
	quiz := seedQuiz(t, db, course.ID, []string{"A"})

	body := fmt.Sprintf(`{"userId":%d,"quizId":%d,"answers":["A"]}`, student.ID, quiz.ID)
	resp, payload, err := request(app, "POST", "/quiz-attempts", body, student.ID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Contains(t, payload["error"], "enrolled")
}

func TestQuizAttemptAnswerCountMismatch(t *testing.T) {
	app, db := setupApp(t)
	student := seedUser(t, db, models.RoleStudent)

	course := models.Course{Title: "Go 101"}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&models.Membership{
		TeamID: models.CourseTeamID(course.ID),
		UserID: student.ID,
		Role:   models.RoleStudent,
	}).Error)
	quiz := seedQuiz(t, db, course.ID, []string{"A", "B", "C"})

	body := fmt.Sprintf(`{"userId":%d,"quizId":%d,"answers":["A","B"]}`, student.ID, quiz.ID)
	resp, payload, err := request(app, "POST", "/quiz-attempts", body, student.ID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, payload["error"], "expected 3")
	assert.Contains(t, payload["error"], "received 2")
}

func TestQuizAttemptEmptyQuestionSet(t *testing.T) {
	app, db := setupApp(t)
	student := seedUser(t, db, models.RoleStudent)

	course := models.Course{Title: "Go 101"}
	require.NoError(t, db.Create(&course).Error)
	require.NoError(t, db.Create(&models.Membership{
		TeamID: models.CourseTeamID(course.ID),
		UserID: student.ID,
		Role:   models.RoleStudent,
	}).Error)
	quiz := seedQuiz(t, db, course.ID, nil)

	body := fmt.Sprintf(`{"userId":%d,"quizId":%d,"answers":["A"]}`, student.ID, quiz.ID)
	resp, payload, err := request(app, "POST", "/quiz-attempts", body, student.ID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Quiz has no questions!", payload["error"])
}

func TestNotificationMarkReadOnly(t *testing.T) {
	app, db := setupApp(t)
	student := seedUser(t, db, models.RoleStudent)

	note := models.Notification{UserID: student.ID, Title: "Welcome", Message: "Hi", Type: "system"}
	require.NoError(t, db.Create(&note).Error)

	// body attempting to overwrite other fields is ignored
	body := `{"title":"hacked","message":"hacked","isRead":false}`
	resp, payload, err := request(app, "PUT", fmt.Sprintf("/notifications/%d", note.ID), body, student.ID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := payload["data"].(map[string]interface{})
	assert.Equal(t, true, data["isRead"])
	assert.NotNil(t, data["readAt"])
	assert.Equal(t, "Welcome", data["title"])
}

func TestUploadNotImplemented(t *testing.T) {
	app, db := setupApp(t)
	admin := seedUser(t, db, models.RoleAdmin)

	resp, payload, err := request(app, "POST", "/upload", "{}", admin.ID)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotImplemented, resp.StatusCode)
	assert.Equal(t, false, payload["success"])
}

func TestUnknownRouteListsEndpoints(t *testing.T) {
	app, _ := setupApp(t)

	resp, payload, err := request(app, "GET", "/does-not-exist", "", 0)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Endpoint not found", payload["error"])

	endpoints := payload["availableEndpoints"].([]interface{})
	assert.NotEmpty(t, endpoints)
}

func TestDiscordDiagnosticRoute(t *testing.T) {
	app, _ := setupApp(t)

	resp, payload, err := request(app, "GET", "/test-discord", "", 0)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, payload["success"])
	assert.Equal(t, false, payload["webhookEnabled"])
}
