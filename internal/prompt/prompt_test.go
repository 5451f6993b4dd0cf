package prompt

import (
	"errors"
	"testing"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{"plain", "25", 25, nil},
		{"surrounding spaces", "  5 ", 5, nil},
		{"zero", "0", 0, nil},
		{"large", "100000", 100000, nil},
		{"explicit plus", "+3", 3, nil},
		{"empty", "", 0, ErrNotANumber},
		{"letters", "ten", 0, ErrNotANumber},
		{"decimal", "2.5", 0, ErrNotANumber},
		{"negative", "-1", 0, ErrNegative},
		{"largest break", "153722867", 153722867, nil},
		{"break overflows duration", "153722868", 0, ErrTooLarge},
		{"wraps to positive duration", "307445735", 0, ErrTooLarge},
		{"beyond int range", "99999999999999999999", 0, ErrTooLarge},
		{"negative beyond int range", "-99999999999999999999", 0, ErrNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCount(FieldStudy, tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseCount(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCount(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseCount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCountLongInputNotTruncated(t *testing.T) {
	if _, err := ParseCount(FieldBreak, "1234567890123"); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge for a 13 digit answer, got %v", err)
	}
}

func TestMaxCountFitsDuration(t *testing.T) {
	d := time.Duration(MaxCount) * time.Minute
	if d <= 0 || int64(d/time.Minute) != MaxCount {
		t.Fatalf("MaxCount minutes overflow: %s", d)
	}
}

func TestParseCountInputError(t *testing.T) {
	_, err := ParseCount(FieldCycles, "x")
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected *InputError, got %T", err)
	}
	if inputErr.Field != FieldCycles || inputErr.Input != "x" {
		t.Fatalf("unexpected InputError fields: %+v", inputErr)
	}
	if inputErr.Error() == "" {
		t.Fatalf("expected error text")
	}
}

func TestInputErrorNil(t *testing.T) {
	var e *InputError
	if e.Error() != "" {
		t.Fatalf("expected empty message for nil error")
	}
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		input   string
		want    models.Answer
		wantErr bool
	}{
		{"yes", models.AnswerYes, false},
		{"YES", models.AnswerYes, false},
		{"Yes", models.AnswerYes, false},
		{"no", models.AnswerNo, false},
		{"No", models.AnswerNo, false},
		{"y", "", true},
		{"", "", true},
		{"maybe", "", true},
		{" yes", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAnswer(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAnswer) {
					t.Fatalf("ParseAnswer(%q) error = %v, want ErrInvalidAnswer", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAnswer(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Fatalf("ParseAnswer(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestQuestion(t *testing.T) {
	for _, field := range []string{FieldStudy, FieldBreak, FieldCycles} {
		if Question(field) == "" {
			t.Fatalf("expected question for %s", field)
		}
	}
	if Question("other") != "" {
		t.Fatalf("expected empty question for unknown field")
	}
}
