package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medagenda/clinica-api/internal/domain/entity"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{entity.AppointmentProgramada, entity.AppointmentConfirmada, true},
		{entity.AppointmentProgramada, entity.AppointmentCompletada, true},
		{entity.AppointmentProgramada, entity.AppointmentCancelada, true},
		{entity.AppointmentConfirmada, entity.AppointmentCompletada, true},
		{entity.AppointmentConfirmada, entity.AppointmentCancelada, true},
		{entity.AppointmentConfirmada, entity.AppointmentProgramada, false},
		{entity.AppointmentCompletada, entity.AppointmentCancelada, false},
		{entity.AppointmentCancelada, entity.AppointmentConfirmada, false},
		{entity.AppointmentCompletada, entity.AppointmentProgramada, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, entity.CanTransition(c.from, c.to),
			"transición %s → %s", c.from, c.to)
	}
}
