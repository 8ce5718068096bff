package cuestionario

import (
	"github.com/goliatone/go-cuestionario/pkg/catalog"
)

// FlowState holds the UI flags of a session.
type FlowState struct {
	IsAcademicRole   bool
	SelectedUnitID   catalog.ID
	IsUnlocked       bool
	IsSubmitting     bool
	SubmitSucceeded  bool
	SubmitFailed     bool
	IsLoading        bool
	LoadErrorMessage string
	ShowDebugJSON    bool
}

// FormAnswers holds what the respondent has filled in. Respuestas has one
// slot per question.
type FormAnswers struct {
	SelectedResearcherID catalog.ID
	Respuestas           []string
}

// Snapshot is a copy of the whole controller state. Slices are owned by the
// snapshot and may be kept or modified by the reader.
type Snapshot struct {
	FlowState
	FormAnswers

	Unidades   []catalog.AcademicUnit
	Academicos []catalog.Researcher
	Preguntas  []catalog.SurveyQuestion
}

// PostData is the submission body.
type PostData struct {
	NombreInvestigador catalog.ID `json:"nombre_investigador" yaml:"nombre_investigador"`
	Escuela            catalog.ID `json:"escuela" yaml:"escuela"`
	Respuestas         []string   `json:"respuestas" yaml:"respuestas"`
}

// Sources locates the three reference datasets.
type Sources struct {
	Unidades      catalog.Source
	Academicos    catalog.Source
	Cuestionarios catalog.Source
}

func (s Sources) complete() bool {
	return s.Unidades != nil && s.Academicos != nil && s.Cuestionarios != nil
}

func emptyAnswers(n int) []string {
	return make([]string, n)
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append(make([]T, 0, len(in)), in...)
}
