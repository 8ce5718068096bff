package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-faster/errors"

	"github.com/goliatone/go-cuestionario/pkg/catalog"
	"github.com/goliatone/go-cuestionario/pkg/cuestionario"
)

// Controller is the part of *cuestionario.Controller the flow drives.
type Controller interface {
	Snapshot() cuestionario.Snapshot
	SetAcademico(v bool)
	SelectUnidad(id catalog.ID)
	VerificarAcceso()
	SelectInvestigador(id catalog.ID)
	UpdateRespuesta(index int, value string) error
	SetShowJSON(v bool)
	GeneratePostData() cuestionario.PostData
	EnviarCuestionario(ctx context.Context) error
	NombreInvestigadorSeleccionado() string
	NombreEscuelaSeleccionada() string
}

var _ Controller = (*cuestionario.Controller)(nil)

// Result describes a completed submission.
type Result struct {
	Payload      cuestionario.PostData
	Investigador string
	Escuela      string
	Answered     int
}

// Flow walks a respondent through a loaded controller in the terminal.
type Flow struct {
	driver      PromptDriver
	debugFormat DebugFormat
	theme       Theme
	multiline   bool
}

// New constructs a Flow with defaults (survey driver on stdout, JSON preview).
func New(options ...Option) *Flow {
	f := &Flow{
		debugFormat: DebugFormatJSON,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	if f.driver == nil {
		f.driver = NewSurveyDriver(nil)
	}
	return f
}

// Run asks for role, unit, researcher and one answer per question, shows
// the optional payload preview and submits. The controller must already be
// initialised.
func (f *Flow) Run(ctx context.Context, ctrl Controller) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("tui: context is required")
	}
	if ctrl == nil {
		return Result{}, errors.New("tui: controller is required")
	}

	snap := ctrl.Snapshot()
	if snap.LoadErrorMessage != "" {
		_ = f.error(ctx, snap.LoadErrorMessage)
		return Result{}, ErrLoadFailed
	}

	if err := f.unlock(ctx, ctrl, snap); err != nil {
		return Result{}, err
	}
	if err := f.promptResearcher(ctx, ctrl, snap); err != nil {
		return Result{}, err
	}
	if err := f.promptAnswers(ctx, ctrl, snap); err != nil {
		return Result{}, err
	}
	if err := f.preview(ctx, ctrl); err != nil {
		return Result{}, err
	}

	send, err := f.driver.Confirm(ctx, ConfirmConfig{
		Message: "¿Enviar cuestionario?",
		Default: true,
	})
	if err != nil {
		return Result{}, err
	}
	if !send {
		return Result{}, ErrAborted
	}

	res := Result{
		Payload:      ctrl.GeneratePostData(),
		Investigador: ctrl.NombreInvestigadorSeleccionado(),
		Escuela:      ctrl.NombreEscuelaSeleccionada(),
	}
	res.Answered = countAnswered(res.Payload.Respuestas)

	if err := ctrl.EnviarCuestionario(ctx); err != nil {
		_ = f.error(ctx, "Error al enviar el cuestionario. Por favor intente nuevamente.")
		return Result{}, err
	}

	summary, err := renderSummary(res)
	if err != nil {
		return res, err
	}
	return res, f.info(ctx, summary)
}

func (f *Flow) unlock(ctx context.Context, ctrl Controller, snap cuestionario.Snapshot) error {
	academic, err := f.driver.Confirm(ctx, ConfirmConfig{
		Message: "¿Es usted académico/a?",
	})
	if err != nil {
		return err
	}
	ctrl.SetAcademico(academic)

	if academic {
		if len(snap.Unidades) == 0 {
			_ = f.error(ctx, "No hay unidades académicas disponibles.")
		} else {
			labels := make([]string, len(snap.Unidades))
			defaultIdx := -1
			for i, u := range snap.Unidades {
				labels[i] = optionLabel(u.Nombre, u.ID)
				if u.ID == snap.SelectedUnitID && !u.ID.IsZero() {
					defaultIdx = i
				}
			}
			idx, err := f.driver.Select(ctx, SelectConfig{
				Message:      "Unidad académica",
				Options:      labels,
				DefaultIndex: defaultIdx,
			})
			if err != nil {
				return err
			}
			if idx < 0 || idx >= len(snap.Unidades) {
				return errors.Errorf("tui: unit selection %d out of range", idx)
			}
			ctrl.SelectUnidad(snap.Unidades[idx].ID)
		}
	}

	ctrl.VerificarAcceso()
	if !ctrl.Snapshot().IsUnlocked {
		_ = f.error(ctx, "El cuestionario está disponible solo para académicos con una unidad seleccionada.")
		return ErrAccessDenied
	}
	return nil
}

func (f *Flow) promptResearcher(ctx context.Context, ctrl Controller, snap cuestionario.Snapshot) error {
	if len(snap.Academicos) == 0 {
		return f.info(ctx, "No hay investigadores disponibles; el cuestionario se enviará sin investigador.")
	}
	labels := make([]string, len(snap.Academicos))
	defaultIdx := -1
	for i, a := range snap.Academicos {
		labels[i] = optionLabel(a.Nombre, a.ID)
		if a.ID == snap.SelectedResearcherID && !a.ID.IsZero() {
			defaultIdx = i
		}
	}
	idx, err := f.driver.Select(ctx, SelectConfig{
		Message:      "Investigador/a",
		Options:      labels,
		DefaultIndex: defaultIdx,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(snap.Academicos) {
		return errors.Errorf("tui: researcher selection %d out of range", idx)
	}
	ctrl.SelectInvestigador(snap.Academicos[idx].ID)
	return nil
}

func (f *Flow) promptAnswers(ctx context.Context, ctrl Controller, snap cuestionario.Snapshot) error {
	total := len(snap.Preguntas)
	for i, q := range snap.Preguntas {
		label := catalog.PlainText(q.Text())
		if label == "" {
			label = "Pregunta"
		}
		message := fmt.Sprintf("(%d/%d) %s", i+1, total, label)

		current := ""
		if i < len(snap.Respuestas) {
			current = snap.Respuestas[i]
		}

		var (
			answer string
			err    error
		)
		if f.multiline {
			answer, err = f.driver.TextArea(ctx, TextAreaConfig{Message: message, Default: current})
		} else {
			answer, err = f.driver.Input(ctx, InputConfig{Message: message, Default: current})
		}
		if err != nil {
			return err
		}
		if err := ctrl.UpdateRespuesta(i, answer); err != nil {
			return err
		}
	}
	return nil
}

func (f *Flow) preview(ctx context.Context, ctrl Controller) error {
	show, err := f.driver.Confirm(ctx, ConfirmConfig{
		Message: "¿Ver los datos que se enviarán?",
	})
	if err != nil {
		return err
	}
	ctrl.SetShowJSON(show)
	if !show {
		return nil
	}
	out, err := renderDebug(ctrl.GeneratePostData(), f.debugFormat)
	if err != nil {
		return err
	}
	return f.info(ctx, out)
}

func (f *Flow) info(ctx context.Context, msg string) error {
	return f.driver.Info(ctx, f.theme.InfoPrefix+msg)
}

func (f *Flow) error(ctx context.Context, msg string) error {
	return f.driver.Info(ctx, f.theme.ErrorPrefix+msg)
}

func optionLabel(nombre string, id catalog.ID) string {
	label := catalog.PlainText(nombre)
	if label == "" {
		return id.String()
	}
	return label
}

func countAnswered(answers []string) int {
	n := 0
	for _, a := range answers {
		if strings.TrimSpace(a) != "" {
			n++
		}
	}
	return n
}
