package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-cuestionario/internal/catalog/loader"
	"github.com/goliatone/go-cuestionario/pkg/catalog"
	"github.com/goliatone/go-cuestionario/pkg/cuestionario"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	textAreas    []string
	infoMessages []string
	inputPos     int
	selectPos    int
	confirmPos   int
	textPos      int
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

type recordingSubmitter struct {
	mu       sync.Mutex
	payloads []any
	err      error
}

func (r *recordingSubmitter) Send(_ context.Context, payload any) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, payload)
	return "req-1", r.err
}

var testFiles = fstest.MapFS{
	"ua.json": &fstest.MapFile{Data: []byte(`{"success": true, "data": [
		{"id_unidad": 1, "nombre": "Ingeniería"},
		{"id_unidad": 2, "nombre": "<b>Medicina</b>"}
	]}`)},
	"academicos.json": &fstest.MapFile{Data: []byte(`{"success": true, "data": [
		{"id_academico": "a-7", "nombre": "Ana Pérez"}
	]}`)},
	"preguntas.json": &fstest.MapFile{Data: []byte(`{"success": true, "data": [
		{"id_pregunta": 1, "pregunta": "¿Cuántos proyectos?"},
		{"id_pregunta": 2, "pregunta": "¿Colaboraciones?"}
	]}`)},
}

func newController(t *testing.T, files fstest.MapFS, sub cuestionario.Submitter) *cuestionario.Controller {
	t.Helper()
	l := loader.New(catalog.NewLoaderOptions(catalog.WithFileSystem(files)))
	ctrl := cuestionario.New(l, cuestionario.Sources{
		Unidades:      catalog.SourceFromFS("ua.json"),
		Academicos:    catalog.SourceFromFS("academicos.json"),
		Cuestionarios: catalog.SourceFromFS("preguntas.json"),
	}, cuestionario.WithSubmitter(sub))
	return ctrl
}

func TestFlow_RunSubmits(t *testing.T) {
	sub := &recordingSubmitter{}
	ctrl := newController(t, testFiles, sub)
	require.NoError(t, ctrl.Initialize(context.Background()))

	driver := &stubDriver{
		confirm:   []bool{true, true, true},
		selectIdx: []int{1, 0},
		inputs:    []string{"3", ""},
	}
	flow := New(WithPromptDriver(driver))

	res, err := flow.Run(context.Background(), ctrl)
	require.NoError(t, err)

	assert.Equal(t, "Ana Pérez", res.Investigador)
	assert.Equal(t, "<b>Medicina</b>", res.Escuela)
	assert.Equal(t, 1, res.Answered)
	assert.Equal(t, catalog.IntID(2), res.Payload.Escuela)
	assert.Equal(t, catalog.NewID("a-7"), res.Payload.NombreInvestigador)
	assert.Equal(t, []string{"3", ""}, res.Payload.Respuestas)

	require.Len(t, sub.payloads, 1)
	snap := ctrl.Snapshot()
	assert.True(t, snap.SubmitSucceeded)
	assert.True(t, snap.SelectedUnitID.IsZero())
	assert.False(t, snap.ShowDebugJSON)

	require.Len(t, driver.infoMessages, 2)
	assert.Contains(t, driver.infoMessages[0], `"escuela": 2`)
	assert.Contains(t, driver.infoMessages[1], "Respuestas completadas: 1 de 2")
	assert.Contains(t, driver.infoMessages[1], "Ana Pérez")
}

func TestFlow_RunMultilineYAMLPreview(t *testing.T) {
	ctrl := newController(t, testFiles, &recordingSubmitter{})
	require.NoError(t, ctrl.Initialize(context.Background()))

	driver := &stubDriver{
		confirm:   []bool{true, true, true},
		selectIdx: []int{0, 0},
		textAreas: []string{"uno\ndos", "tres"},
	}
	flow := New(
		WithPromptDriver(driver),
		WithMultilineAnswers(true),
		WithDebugFormat(DebugFormatYAML),
	)

	_, err := flow.Run(context.Background(), ctrl)
	require.NoError(t, err)
	assert.Equal(t, 0, driver.inputPos)
	assert.Equal(t, 2, driver.textPos)
	assert.Contains(t, driver.infoMessages[0], "escuela: 1")
	assert.Contains(t, driver.infoMessages[0], "nombre_investigador: a-7")
}

func TestFlow_RunAccessDenied(t *testing.T) {
	ctrl := newController(t, testFiles, &recordingSubmitter{})
	require.NoError(t, ctrl.Initialize(context.Background()))

	driver := &stubDriver{confirm: []bool{false}}
	_, err := New(WithPromptDriver(driver)).Run(context.Background(), ctrl)
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, ctrl.Snapshot().IsUnlocked)
	require.Len(t, driver.infoMessages, 1)
}

func TestFlow_RunLoadFailed(t *testing.T) {
	files := fstest.MapFS{"ua.json": testFiles["ua.json"]}
	ctrl := newController(t, files, &recordingSubmitter{})
	require.Error(t, ctrl.Initialize(context.Background()))

	driver := &stubDriver{}
	flow := New(WithPromptDriver(driver), WithTheme(Theme{ErrorPrefix: "! "}))
	_, err := flow.Run(context.Background(), ctrl)
	require.ErrorIs(t, err, ErrLoadFailed)
	require.Len(t, driver.infoMessages, 1)
	assert.Equal(t, "! "+cuestionario.LoadErrorMessage, driver.infoMessages[0])
}

func TestFlow_RunDeclinedSubmit(t *testing.T) {
	sub := &recordingSubmitter{}
	ctrl := newController(t, testFiles, sub)
	require.NoError(t, ctrl.Initialize(context.Background()))

	driver := &stubDriver{
		confirm:   []bool{true, false, false},
		selectIdx: []int{0, 0},
		inputs:    []string{"a", "b"},
	}
	_, err := New(WithPromptDriver(driver)).Run(context.Background(), ctrl)
	require.ErrorIs(t, err, ErrAborted)
	assert.Empty(t, sub.payloads)
	assert.Equal(t, []string{"a", "b"}, ctrl.Snapshot().Respuestas)
}

func TestFlow_RunSubmitFailure(t *testing.T) {
	sub := &recordingSubmitter{err: errors.New("boom")}
	ctrl := newController(t, testFiles, sub)
	require.NoError(t, ctrl.Initialize(context.Background()))

	driver := &stubDriver{
		confirm:   []bool{true, false, true},
		selectIdx: []int{0, 0},
		inputs:    []string{"a", "b"},
	}
	_, err := New(WithPromptDriver(driver)).Run(context.Background(), ctrl)
	require.Error(t, err)
	snap := ctrl.Snapshot()
	assert.True(t, snap.SubmitFailed)
	assert.Equal(t, []string{"a", "b"}, snap.Respuestas)
	require.NotEmpty(t, driver.infoMessages)
	assert.True(t, strings.HasPrefix(driver.infoMessages[len(driver.infoMessages)-1], "Error al enviar"))
}

func TestRenderDebugJSON(t *testing.T) {
	out, err := renderDebug(cuestionario.PostData{Respuestas: []string{"x"}}, DebugFormatJSON)
	require.NoError(t, err)
	assert.Contains(t, out, `"nombre_investigador": null`)
	assert.Contains(t, out, `"escuela": null`)
}

func TestRenderSummaryDefaults(t *testing.T) {
	out, err := renderSummary(Result{Payload: cuestionario.PostData{Respuestas: []string{"", ""}}})
	require.NoError(t, err)
	assert.Contains(t, out, "Investigador/a: (sin seleccionar)")
	assert.Contains(t, out, "Respuestas completadas: 0 de 2")
}
