package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Las consultas del detector de duplicados trabajan solo sobre pacientes
// activos: excluyen tanto la baja lógica (deleted_at) como la inactivación
// manual vía Update (active = FALSE).

func TestFindByContactNumber_ConsultaSoloPacientesActivos(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewPatientRepository(q)

	_, err := repo.FindByContactNumber(context.Background(), "org-1", "3001234567")
	require.NoError(t, err)

	assert.Contains(t, q.lastSQL, "deleted_at IS NULL")
	assert.Contains(t, q.lastSQL, "AND active",
		"un paciente inactivado manualmente no debe contar como duplicado")
}

func TestDuplicateCandidates_ConsultaSoloPacientesActivos(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewPatientRepository(q)

	_, err := repo.DuplicateCandidates(context.Background(), "org-1")
	require.NoError(t, err)

	assert.Contains(t, q.lastSQL, "p.deleted_at IS NULL")
	assert.Contains(t, q.lastSQL, "AND p.active",
		"el detector solo recibe candidatos activos")
}

func TestList_ExcluyeBajasLogicas(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewPatientRepository(q)

	_, err := repo.List(context.Background(), "org-1", "", 20, 0)
	require.NoError(t, err)

	assert.Contains(t, q.lastSQL, "deleted_at IS NULL")
}
