package catalog

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_KeepsJSONKind(t *testing.T) {
	var payload struct {
		Numeric ID `json:"numeric"`
		Text    ID `json:"text"`
		Missing ID `json:"missing"`
	}
	err := json.Unmarshal([]byte(`{"numeric": 12, "text": "u-7", "missing": null}`), &payload)
	require.NoError(t, err)

	assert.True(t, payload.Numeric.Numeric())
	assert.Equal(t, "12", payload.Numeric.String())
	assert.False(t, payload.Text.Numeric())
	assert.Equal(t, "u-7", payload.Text.String())
	assert.True(t, payload.Missing.IsZero())

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"numeric": 12, "text": "u-7", "missing": null}`, string(out))
}

func TestID_RejectsObjects(t *testing.T) {
	var id ID
	err := json.Unmarshal([]byte(`{"id": 1}`), &id)
	require.Error(t, err)
}

func TestID_Constructors(t *testing.T) {
	assert.Equal(t, IntID(5), func() ID {
		var id ID
		require.NoError(t, json.Unmarshal([]byte("5"), &id))
		return id
	}())
	assert.True(t, NewID("").IsZero())
	assert.NotEqual(t, IntID(5), NewID("5"))
}

func TestDecodeEnvelope_JSON(t *testing.T) {
	doc := MustNewDocument(SourceFromURL("https://api.example.test/ua"), []byte(`{
		"success": true,
		"data": [
			{"id_unidad": 1, "nombre": "Escuela de Ingeniería"},
			{"id_unidad": "fac-2", "nombre": "Facultad de Ciencias"}
		]
	}`))

	env, err := DecodeEnvelope[AcademicUnit](doc)
	require.NoError(t, err)

	want := Envelope[AcademicUnit]{
		Success: true,
		Data: []AcademicUnit{
			{ID: IntID(1), Nombre: "Escuela de Ingeniería"},
			{ID: NewID("fac-2"), Nombre: "Facultad de Ciencias"},
		},
	}
	if diff := cmp.Diff(want, env, cmp.AllowUnexported(ID{})); diff != "" {
		t.Fatalf("envelope mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeEnvelope_YAML(t *testing.T) {
	doc := MustNewDocument(SourceFromFile("testdata/academicos.yaml"), []byte(`
success: true
data:
  - id_academico: 10
    nombre: Ana Pérez
  - id_academico: "r-11"
    nombre: Luis Soto
`))

	env, err := DecodeEnvelope[Researcher](doc)
	require.NoError(t, err)
	require.True(t, env.Success)
	require.Len(t, env.Data, 2)
	assert.Equal(t, IntID(10), env.Data[0].ID)
	assert.Equal(t, NewID("r-11"), env.Data[1].ID)
	assert.Equal(t, "Luis Soto", env.Data[1].Nombre)
}

func TestDecodeEnvelope_SuccessFalse(t *testing.T) {
	doc := MustNewDocument(SourceFromFile("preguntas.json"), []byte(`{"success": false, "message": "sin datos"}`))

	env, err := DecodeEnvelope[SurveyQuestion](doc)
	require.NoError(t, err)
	assert.False(t, env.Success)
	assert.Empty(t, env.Data)
	assert.Equal(t, "sin datos", env.Message)
}

func TestDecodeEnvelope_Malformed(t *testing.T) {
	doc := MustNewDocument(SourceFromFile("preguntas.json"), []byte(`<html>502</html>`))

	_, err := DecodeEnvelope[SurveyQuestion](doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preguntas.json")
}

func TestDetectFormat(t *testing.T) {
	cases := map[string]Format{
		"data/ua.yaml":                          FormatYAML,
		"data/ua.YML":                           FormatYAML,
		"data/ua.json":                          FormatJSON,
		"https://api.example.test/ua":           FormatJSON,
		"https://api.example.test/ua.yaml?x=1":  FormatYAML,
		"https://api.example.test/list?f=.yaml": FormatJSON,
	}
	for location, want := range cases {
		assert.Equal(t, want, DetectFormat(location), location)
	}
}

func TestSurveyQuestion_TextAndKey(t *testing.T) {
	var questions []SurveyQuestion
	err := json.Unmarshal([]byte(`[
		{"id_pregunta": 3, "pregunta": "¿Cuántos proyectos dirige?"},
		{"id": "q2", "texto": "Describa su línea de investigación"},
		"Pregunta libre",
		42
	]`), &questions)
	require.NoError(t, err)
	require.Len(t, questions, 4)

	assert.Equal(t, "¿Cuántos proyectos dirige?", questions[0].Text())
	assert.Equal(t, "3", questions[0].Key())
	assert.Equal(t, "Describa su línea de investigación", questions[1].Text())
	assert.Equal(t, "q2", questions[1].Key())
	assert.Equal(t, "Pregunta libre", questions[2].Text())
	assert.Equal(t, "", questions[2].Key())
	assert.Equal(t, "", questions[3].Text())

	out, err := json.Marshal(questions[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": "q2", "texto": "Describa su línea de investigación"}`, string(out))
}

func TestParseSource(t *testing.T) {
	src, err := ParseSource(" https://api.example.test/academicos ")
	require.NoError(t, err)
	assert.Equal(t, SourceKindURL, src.Kind())
	assert.Equal(t, "https://api.example.test/academicos", src.Location())

	src, err = ParseSource("./data/../data/ua.json")
	require.NoError(t, err)
	assert.Equal(t, SourceKindFile, src.Kind())
	assert.Equal(t, "data/ua.json", src.Location())

	_, err = ParseSource("   ")
	require.Error(t, err)

	_, err = ParseSource("https://")
	require.Error(t, err)
}

func TestNewDocument_Validation(t *testing.T) {
	_, err := NewDocument(nil, []byte("{}"))
	require.Error(t, err)

	_, err = NewDocument(SourceFromFS("ua.json"), nil)
	require.Error(t, err)
}

func TestPlainText(t *testing.T) {
	cases := map[string]string{
		"<p>¿Cuál es <b>su</b> área?</p>":  "¿Cuál es su área?",
		"Tom &amp; Jerry":                   "Tom & Jerry",
		"  Ingeniería\n   Civil  ":          "Ingeniería Civil",
		"<script>alert(1)</script>Historia": "Historia",
		"":                                  "",
	}
	for in, want := range cases {
		assert.Equal(t, want, PlainText(in), in)
	}
}
