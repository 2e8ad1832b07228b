package controllers

import (
	"testing"

	"edtech/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func question(id uint, text, correct string, options ...string) models.QuizQuestion {
	opts := []byte(`[]`)
	if len(options) > 0 {
		opts = []byte(`["` + options[0] + `"`)
		for _, o := range options[1:] {
			opts = append(opts, []byte(`,"`+o+`"`)...)
		}
		opts = append(opts, ']')
	}
	return models.QuizQuestion{
		Model:         gorm.Model{ID: id},
		Question:      text,
		CorrectAnswer: correct,
		Options:       datatypes.JSON(opts),
	}
}

func TestScoreAnswersWorkedExample(t *testing.T) {
	// Three questions with correct answers A, C, B; submission A, B, B.
	// 2/3 ≈ 0.667 which is over the 0.6 threshold, so the attempt passes.
	questions := []models.QuizQuestion{
		question(1, "Q1", "A", "A", "B", "C"),
		question(2, "Q2", "C", "A", "B", "C"),
		question(3, "Q3", "B", "A", "B", "C"),
	}

	result := ScoreAnswers(questions, []string{"A", "B", "B"})

	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 3, result.TotalQuestions)
	assert.True(t, result.Passed)
	assert.InDelta(t, 66.67, result.Percentage(), 0.01)

	require.Len(t, result.Breakdown, 3)
	assert.True(t, result.Breakdown[0].IsCorrect)
	assert.False(t, result.Breakdown[1].IsCorrect)
	assert.True(t, result.Breakdown[2].IsCorrect)

	assert.Equal(t, uint(2), result.Breakdown[1].QuestionID)
	assert.Equal(t, "B", result.Breakdown[1].StudentAnswer)
	assert.Equal(t, "C", result.Breakdown[1].CorrectAnswer)
	assert.Equal(t, []string{"A", "B", "C"}, result.Breakdown[1].Options)
}

func TestScoreAnswersThresholdBoundary(t *testing.T) {
	tests := []struct {
		name    string
		correct []string
		answers []string
		score   int
		passed  bool
	}{
		{
			name:    "exactly 0.6 passes",
			correct: []string{"A", "A", "A", "A", "A"},
			answers: []string{"A", "A", "A", "B", "B"},
			score:   3,
			passed:  true,
		},
		{
			name:    "just under 0.6 fails",
			correct: []string{"A", "A", "A", "A", "A"},
			answers: []string{"A", "A", "B", "B", "B"},
			score:   2,
			passed:  false,
		},
		{
			name:    "all correct passes",
			correct: []string{"A", "B"},
			answers: []string{"A", "B"},
			score:   2,
			passed:  true,
		},
		{
			name:    "all wrong fails",
			correct: []string{"A", "B"},
			answers: []string{"B", "A"},
			score:   0,
			passed:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions := make([]models.QuizQuestion, len(tt.correct))
			for i, ans := range tt.correct {
				questions[i] = question(uint(i+1), "Q", ans)
			}

			result := ScoreAnswers(questions, tt.answers)
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.passed, result.Passed)
		})
	}
}

func TestScoreAnswersComparesByExactValue(t *testing.T) {
	questions := []models.QuizQuestion{question(1, "Q1", "Paris")}

	result := ScoreAnswers(questions, []string{"paris"})
	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Passed)
}

func TestPercentageEmpty(t *testing.T) {
	assert.Equal(t, 0.0, ScoreResult{}.Percentage())
}
