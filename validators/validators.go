package validators

import (
	"encoding/json"
	"sort"
	"strings"

	"edtech/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// requiredFields declares, per resource, the body fields a create request
// must carry. Checked by one generic validator instead of ad-hoc per-handler
// presence tests.
var requiredFields = map[string][]string{
	"courses":        {"title", "description", "instructorId", "category", "price"},
	"lessons":        {"courseId", "title", "content", "order"},
	"quizzes":        {"courseId", "title", "description", "timeLimit"},
	"quiz-questions": {"quizId", "question", "options", "correctAnswer", "order"},
	"progress":       {"userId", "courseId", "lessonId"},
	"quiz-attempts":  {"userId", "quizId", "answers"},
	"transactions":   {"userId", "type", "amount", "description"},
	"ranks":          {"userId", "courseId", "score", "rank"},
	"badges":         {"name", "description", "criteria", "icon"},
	"user-badges":    {"userId", "badgeId"},
	"notifications":  {"userId", "title", "message", "type"},
	"enroll":         {"userId", "courseId"},
}

// MissingFields returns the required fields of resource that are absent or
// empty in body, in declaration order
func MissingFields(resource string, body map[string]interface{}) []string {
	var missing []string
	for _, field := range requiredFields[resource] {
		if isMissing(body[field]) {
			missing = append(missing, field)
		}
	}
	return missing
}

func isMissing(v interface{}) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return validate.Var(val, "required") != nil
	case []interface{}:
		return len(val) == 0
	case map[string]interface{}:
		return len(val) == 0
	}
	// Numbers and booleans count as present, including zero values: an
	// order of 0 or a price of 0 is a legitimate submission.
	return false
}

// RequireBody validates a create/update body against the resource's
// declared required fields. On failure it answers 400 enumerating the
// missing field names; on success the parsed body map is stashed in the
// request context for handlers that need raw access.
func RequireBody(resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := map[string]interface{}{}
		if len(c.Body()) > 0 {
			if err := json.Unmarshal(c.Body(), &body); err != nil {
				return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
			}
		}

		if missing := MissingFields(resource, body); len(missing) > 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest,
				"Missing required fields: "+strings.Join(missing, ", "))
		}

		c.Locals("body", body)
		return c.Next()
	}
}

// RequiredFor exposes the declared schema for a resource, sorted, mainly
// for diagnostics and tests
func RequiredFor(resource string) []string {
	fields := append([]string(nil), requiredFields[resource]...)
	sort.Strings(fields)
	return fields
}
