package testutil

import "github.com/akyairhashvil/pomo/internal/models"

// ParamsBuilder provides fluent API for creating session parameters.
type ParamsBuilder struct {
	params models.SessionParameters
}

// NewParams starts from a classic 25/5 x4 session.
func NewParams() *ParamsBuilder {
	return &ParamsBuilder{
		params: models.SessionParameters{
			StudyMinutes: 25,
			BreakMinutes: 5,
			CycleCount:   4,
		},
	}
}

func (b *ParamsBuilder) WithStudy(minutes int) *ParamsBuilder {
	b.params.StudyMinutes = minutes
	return b
}

func (b *ParamsBuilder) WithBreak(minutes int) *ParamsBuilder {
	b.params.BreakMinutes = minutes
	return b
}

func (b *ParamsBuilder) WithCycles(n int) *ParamsBuilder {
	b.params.CycleCount = n
	return b
}

func (b *ParamsBuilder) Build() models.SessionParameters {
	return b.params
}
