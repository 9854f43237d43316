package patient_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medagenda/clinica-api/internal/domain/patient"
)

func candidate(id, code, name, phone, whatsapp string, createdOffsetMin int) patient.Candidate {
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	return patient.Candidate{
		ID:        id,
		Code:      code,
		FullName:  name,
		Phone:     phone,
		Whatsapp:  whatsapp,
		CreatedAt: base.Add(time.Duration(createdOffsetMin) * time.Minute),
	}
}

func TestNormalizeNumber(t *testing.T) {
	assert.Equal(t, "3001111111", patient.NormalizeNumber("300-111-1111"))
	assert.Equal(t, "573001111111", patient.NormalizeNumber("+57 300 111 1111"))
	assert.Equal(t, "", patient.NormalizeNumber(""))
	assert.Equal(t, "", patient.NormalizeNumber("sin número"))
}

// Dos pacientes con el mismo teléfono en formatos distintos: se reporta solo el
// más reciente, referenciando al más antiguo como canónico.
func TestDetectDuplicates_MismoTelefonoFormatosDistintos(t *testing.T) {
	dups := patient.DetectDuplicates([]patient.Candidate{
		candidate("a", "MDA-0001", "Ana Pérez", "300-111-1111", "", 0),
		candidate("b", "MDA-0002", "Ana P. García", "3001111111", "", 10),
	})

	require.Len(t, dups, 1)
	assert.Equal(t, "b", dups[0].ID)
	assert.Equal(t, "MDA-0002", dups[0].Code)
	assert.Equal(t, "Ana Pérez", dups[0].DuplicateOf)
}

func TestDetectDuplicates_SinNumerosCompartidos(t *testing.T) {
	dups := patient.DetectDuplicates([]patient.Candidate{
		candidate("a", "MDA-0001", "Ana", "3001111111", "", 0),
		candidate("b", "MDA-0002", "Luis", "3002222222", "", 5),
		candidate("c", "MDA-0003", "Marta", "", "3003333333", 9),
	})
	assert.Empty(t, dups)
}

// Tres pacientes con el mismo número: dos duplicados (no tres), ambos apuntando
// al más antiguo.
func TestDetectDuplicates_TresConElMismoNumero(t *testing.T) {
	dups := patient.DetectDuplicates([]patient.Candidate{
		candidate("a", "MDA-0001", "Original", "3009999999", "", 0),
		candidate("b", "MDA-0002", "Copia 1", "3009999999", "", 5),
		candidate("c", "MDA-0003", "Copia 2", "300 999 9999", "", 9),
	})

	require.Len(t, dups, 2)
	for _, d := range dups {
		assert.Equal(t, "Original", d.DuplicateOf)
	}
	// Orden final por código ascendente
	assert.Equal(t, "MDA-0002", dups[0].Code)
	assert.Equal(t, "MDA-0003", dups[1].Code)
}

// El whatsapp igual al propio teléfono no genera un segundo grupo bajo el mismo número.
func TestDetectDuplicates_WhatsappIgualAlTelefonoNoDuplicaGrupo(t *testing.T) {
	dups := patient.DetectDuplicates([]patient.Candidate{
		candidate("a", "MDA-0001", "Ana", "3001111111", "3001111111", 0),
		candidate("b", "MDA-0002", "Ana G.", "3001111111", "3001111111", 5),
	})
	// Un solo reporte, no uno por teléfono y otro por whatsapp.
	require.Len(t, dups, 1)
	assert.Equal(t, "b", dups[0].ID)
}

// Coincidencia solo por whatsapp también se detecta.
func TestDetectDuplicates_CoincidenciaPorWhatsapp(t *testing.T) {
	dups := patient.DetectDuplicates([]patient.Candidate{
		candidate("a", "MDA-0001", "Ana", "3001111111", "3105555555", 0),
		candidate("b", "MDA-0002", "Ana G.", "3002222222", "310-555-5555", 5),
	})
	require.Len(t, dups, 1)
	assert.Equal(t, "b", dups[0].ID)
	assert.Equal(t, "Ana", dups[0].DuplicateOf)
}

// Un paciente que coincide por teléfono con uno y por whatsapp con otro se
// reporta una sola vez, asociado al grupo de teléfono (se procesa primero).
func TestDetectDuplicates_FlagUnicoConDobleColision(t *testing.T) {
	dups := patient.DetectDuplicates([]patient.Candidate{
		candidate("a", "MDA-0001", "Dueño Teléfono", "3001111111", "", 0),
		candidate("b", "MDA-0002", "Dueño Whatsapp", "3004444444", "3102222222", 2),
		candidate("x", "MDA-0003", "Colisiona Ambos", "3001111111", "3102222222", 8),
	})

	require.Len(t, dups, 1)
	assert.Equal(t, "x", dups[0].ID)
	assert.Equal(t, "Dueño Teléfono", dups[0].DuplicateOf)
}
