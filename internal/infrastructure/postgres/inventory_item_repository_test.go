package postgres

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El filtro de estado se resuelve en el WHERE, antes del LIMIT: paginar primero
// y filtrar después dejaría páginas cortas y coincidencias perdidas.
func TestListByOrganization_FiltraEstadoAntesDelLimit(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewInventoryItemRepository(q)

	_, err := repo.ListByOrganization(context.Background(), "org-1", "critico", 20, 0)
	require.NoError(t, err)

	assert.Contains(t, q.lastSQL, "current_stock <= 0")
	assert.Contains(t, q.lastSQL, "current_stock <= min_stock")
	assert.Contains(t, q.lastSQL, "current_stock > min_stock")

	wherePos := strings.Index(q.lastSQL, "WHERE")
	statusPos := strings.Index(q.lastSQL, "current_stock <= 0")
	limitPos := strings.Index(q.lastSQL, "LIMIT")
	require.True(t, wherePos >= 0 && statusPos >= 0 && limitPos >= 0)
	assert.Less(t, wherePos, statusPos)
	assert.Less(t, statusPos, limitPos)

	require.Len(t, q.lastArgs, 4)
	assert.Equal(t, "critico", q.lastArgs[1], "el estado viaja como parámetro, no interpolado")
}
