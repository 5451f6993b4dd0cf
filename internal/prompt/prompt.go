// Package prompt holds the questions asked before and after a run and the
// parsing rules for their answers.
package prompt

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
)

// Field names used in InputError.
const (
	FieldStudy  = "study minutes"
	FieldBreak  = "break minutes"
	FieldCycles = "break count"
)

const (
	StudyQuestion   = "For how many minutes do you want to study?"
	BreakQuestion   = "How long should your break be?"
	CyclesQuestion  = "How many breaks do you want to take?"
	RestartQuestion = "Do you want to rerun the program? (Answer with either 'yes' or 'no')"
	InvalidAnswer   = "Invalid input. Please enter either 'yes' or 'no'."
	Marker          = "> "
)

// MaxCount is the largest answer whose minutes still fit in a time.Duration.
const MaxCount = math.MaxInt64 / int64(time.Minute)

// ParseCount converts a numeric answer. Zero is allowed; anything above
// MaxCount is rejected.
func ParseCount(field, text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	n, err := strconv.Atoi(trimmed)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(trimmed, "-") {
			return 0, &InputError{Field: field, Input: text, Err: ErrNegative}
		}
		return 0, &InputError{Field: field, Input: text, Err: ErrTooLarge}
	}
	if err != nil {
		return 0, &InputError{Field: field, Input: text, Err: ErrNotANumber}
	}
	if int64(n) > MaxCount {
		return 0, &InputError{Field: field, Input: text, Err: ErrTooLarge}
	}
	if n < 0 {
		return 0, &InputError{Field: field, Input: text, Err: ErrNegative}
	}
	return n, nil
}

// ParseAnswer accepts "yes" or "no" in any letter case.
func ParseAnswer(text string) (models.Answer, error) {
	switch models.Answer(strings.ToLower(text)) {
	case models.AnswerYes:
		return models.AnswerYes, nil
	case models.AnswerNo:
		return models.AnswerNo, nil
	}
	return "", ErrInvalidAnswer
}

// Question returns the prompt text for a numeric field.
func Question(field string) string {
	switch field {
	case FieldStudy:
		return StudyQuestion
	case FieldBreak:
		return BreakQuestion
	case FieldCycles:
		return CyclesQuestion
	}
	return ""
}
