package domain

// LegalNature enumera as naturezas jurídicas aceitas no cadastro.
type LegalNature string

const (
	LegalNatureEmpresarioIndividual LegalNature = "EMPRESARIO_INDIVIDUAL"
	LegalNatureEIRELI               LegalNature = "EIRELI"
	LegalNatureLTDA                 LegalNature = "LTDA"
	LegalNatureSA                   LegalNature = "SA"
	LegalNatureMEI                  LegalNature = "MEI"
)

func (n LegalNature) IsValid() bool {
	switch n {
	case LegalNatureEmpresarioIndividual, LegalNatureEIRELI, LegalNatureLTDA, LegalNatureSA, LegalNatureMEI:
		return true
	}
	return false
}
