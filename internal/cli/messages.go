package cli

import (
	"github.com/modu-ai/modularizer/internal/scaffold"
)

// messages holds the console strings of one locale.
type messages struct {
	ValidProject     string
	Cancelled        string
	CreatingModule   string // %s: module name
	StructureTitle   string
	Steps            map[scaffold.Step]string
	SummaryTitle     string // %s: module name
	SummaryPartial   string // %s: module name, %d: failures
	LabelLocation    string
	LabelGenerated   string
	LabelFailed      string
	LabelOverwritten string
	LayoutOldCLI     string // %s: detected version
	NextStepsTitle   string
	NextService      string // %s: type name, %s: import path
	NextModels       string // %s: import path
	NextGuard        string
	NextLayout       string
	ConfigWritten    string // %s: path
}

var catalog = map[string]messages{
	"en": {
		ValidProject:   "Angular project detected",
		Cancelled:      "Generation cancelled.",
		CreatingModule: "Creating module %s",
		StructureTitle: "Module structure",
		Steps: map[scaffold.Step]string{
			scaffold.StepStructure:              "Creating directory structure",
			scaffold.Step(scaffold.KindService): "Generating service",
			scaffold.Step(scaffold.KindGuard):   "Generating guard",
			scaffold.Step(scaffold.KindLayout):  "Generating layout",
			scaffold.Step(scaffold.KindModels):  "Generating models",
		},
		SummaryTitle:     "Module %s generated",
		SummaryPartial:   "Module %s generated with %d failure(s)",
		LabelLocation:    "Location",
		LabelGenerated:   "Generated",
		LabelFailed:      "Failed",
		LabelOverwritten: "Overwritten",
		LayoutOldCLI:     "Angular CLI %s detected; layout generation uses --type=layout, which needs Angular CLI 20 or newer",
		NextStepsTitle:   "Next steps",
		NextService:      "Inject `%sService` from `%s`",
		NextModels:       "Import the model types from `%s`",
		NextGuard:        "Register the guard in your route configuration",
		NextLayout:       "Use the layout component as a parent route",
		ConfigWritten:    "Configuration written to %s",
	},
	"pt": {
		ValidProject:   "Projeto Angular válido detectado",
		Cancelled:      "Geração cancelada.",
		CreatingModule: "Criando módulo %s",
		StructureTitle: "Estrutura do módulo",
		Steps: map[scaffold.Step]string{
			scaffold.StepStructure:              "Criando estrutura de pastas",
			scaffold.Step(scaffold.KindService): "Gerando service",
			scaffold.Step(scaffold.KindGuard):   "Gerando guard",
			scaffold.Step(scaffold.KindLayout):  "Gerando layout",
			scaffold.Step(scaffold.KindModels):  "Gerando models",
		},
		SummaryTitle:     "Módulo %s gerado com sucesso",
		SummaryPartial:   "Módulo %s gerado com %d falha(s)",
		LabelLocation:    "Local",
		LabelGenerated:   "Gerados",
		LabelFailed:      "Falhas",
		LabelOverwritten: "Sobrescritos",
		LayoutOldCLI:     "Angular CLI %s detectado; o layout usa --type=layout, que requer Angular CLI 20 ou superior",
		NextStepsTitle:   "Próximos passos",
		NextService:      "Injete `%sService` de `%s`",
		NextModels:       "Importe os tipos do model de `%s`",
		NextGuard:        "Registre o guard na configuração de rotas",
		NextLayout:       "Use o componente de layout como rota pai",
		ConfigWritten:    "Configuração gravada em %s",
	},
}

// messagesFor returns the catalog entry for locale, falling back to English.
func messagesFor(locale string) messages {
	if m, ok := catalog[locale]; ok {
		return m
	}
	return catalog["en"]
}

// stepTitle returns the localized title of step.
func (m messages) stepTitle(step scaffold.Step) string {
	if t, ok := m.Steps[step]; ok {
		return t
	}
	return string(step)
}
