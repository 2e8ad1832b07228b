package controllers

import (
	"encoding/json"

	"edtech/models"
)

// PassThreshold is the fixed pass mark: score/totalQuestions >= 0.6 passes
const PassThreshold = 0.6

// AnswerBreakdown is the per-question grading detail stored with an attempt
type AnswerBreakdown struct {
	QuestionID    uint     `json:"questionId"`
	Question      string   `json:"question"`
	StudentAnswer string   `json:"studentAnswer"`
	CorrectAnswer string   `json:"correctAnswer"`
	IsCorrect     bool     `json:"isCorrect"`
	Options       []string `json:"options"`
}

// ScoreResult is the outcome of grading one submission
type ScoreResult struct {
	Score          int
	TotalQuestions int
	Passed         bool
	Breakdown      []AnswerBreakdown
}

// ScoreAnswers grades a submission against the quiz's questions. Answers
// are matched to questions positionally: the caller must submit answers in
// the same order the questions were fetched (ascending by order). The
// answer sequence length must equal the question count; callers enforce
// that before grading.
func ScoreAnswers(questions []models.QuizQuestion, answers []string) ScoreResult {
	result := ScoreResult{
		TotalQuestions: len(questions),
		Breakdown:      make([]AnswerBreakdown, 0, len(questions)),
	}

	for i, q := range questions {
		isCorrect := answers[i] == q.CorrectAnswer
		if isCorrect {
			result.Score++
		}

		var options []string
		if len(q.Options) > 0 {
			// Malformed stored options degrade to an empty list
			_ = json.Unmarshal(q.Options, &options)
		}

		result.Breakdown = append(result.Breakdown, AnswerBreakdown{
			QuestionID:    q.ID,
			Question:      q.Question,
			StudentAnswer: answers[i],
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     isCorrect,
			Options:       options,
		})
	}

	if result.TotalQuestions > 0 {
		result.Passed = float64(result.Score)/float64(result.TotalQuestions) >= PassThreshold
	}
	return result
}

// Percentage returns the score as a percentage of the question count
func (r ScoreResult) Percentage() float64 {
	if r.TotalQuestions == 0 {
		return 0
	}
	return float64(r.Score) / float64(r.TotalQuestions) * 100
}
