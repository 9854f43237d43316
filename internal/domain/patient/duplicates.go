// Package patient contiene la lógica de dominio de pacientes que no depende
// de la persistencia: normalización de números de contacto y detección de
// posibles pacientes duplicados para revisión manual.
package patient

import (
	"sort"
	"strings"
	"time"
)

// Candidate es un paciente activo con teléfono o whatsapp, enriquecido con el
// conteo de citas. Es la entrada del detector de duplicados.
type Candidate struct {
	ID               string
	Code             string
	FullName         string
	Phone            string
	Whatsapp         string
	AppointmentCount int
	CreatedAt        time.Time
}

// Duplicate es un paciente reportado como posible duplicado de otro.
// DuplicateOf es el nombre del paciente canónico (el más antiguo del grupo).
type Duplicate struct {
	ID               string
	Code             string
	FullName         string
	Phone            string
	Whatsapp         string
	AppointmentCount int
	DuplicateOf      string
}

// NormalizeNumber deja solo los dígitos de un número de contacto.
// "300-111-1111" y "3001111111" normalizan al mismo valor.
func NormalizeNumber(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DetectDuplicates agrupa candidatos por teléfono y por whatsapp normalizados y
// reporta los grupos con más de un miembro. El miembro más antiguo (CreatedAt)
// de cada grupo es el canónico; el resto se reporta como duplicado suyo.
//
// Los grupos por teléfono se procesan antes que los de whatsapp: un paciente ya
// reportado (o canónico) por teléfono no vuelve a aparecer por whatsapp. Es una
// regla de desempate documentada, no un orden arbitrario. El resultado final se
// ordena por código ascendente (lexicográfico = numérico por el ancho fijo).
func DetectDuplicates(candidates []Candidate) []Duplicate {
	phoneGroups := make(map[string][]Candidate)
	whatsappGroups := make(map[string][]Candidate)

	for _, c := range candidates {
		phone := NormalizeNumber(c.Phone)
		whatsapp := NormalizeNumber(c.Whatsapp)
		if phone != "" {
			phoneGroups[phone] = append(phoneGroups[phone], c)
		}
		// Si el whatsapp del propio paciente es su mismo teléfono, no se agrupa
		// dos veces bajo el mismo número.
		if whatsapp != "" && whatsapp != phone {
			whatsappGroups[whatsapp] = append(whatsappGroups[whatsapp], c)
		}
	}

	processed := make(map[string]bool)
	var report []Duplicate
	collect := func(groups map[string][]Candidate) {
		for _, group := range groups {
			if len(group) < 2 {
				continue
			}
			sort.Slice(group, func(i, j int) bool {
				if group[i].CreatedAt.Equal(group[j].CreatedAt) {
					return group[i].Code < group[j].Code
				}
				return group[i].CreatedAt.Before(group[j].CreatedAt)
			})
			canonical := group[0]
			for _, member := range group[1:] {
				if processed[member.ID] {
					continue
				}
				report = append(report, Duplicate{
					ID:               member.ID,
					Code:             member.Code,
					FullName:         member.FullName,
					Phone:            member.Phone,
					Whatsapp:         member.Whatsapp,
					AppointmentCount: member.AppointmentCount,
					DuplicateOf:      canonical.FullName,
				})
				processed[member.ID] = true
			}
			processed[canonical.ID] = true
		}
	}

	collect(phoneGroups)
	collect(whatsappGroups)

	sort.Slice(report, func(i, j int) bool { return report[i].Code < report[j].Code })
	return report
}
