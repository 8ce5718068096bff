package cuestionario

import (
	"context"
	"slices"
	"sync"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-cuestionario/pkg/catalog"
	"github.com/goliatone/go-cuestionario/pkg/logging"
	"github.com/goliatone/go-cuestionario/pkg/submit"
)

// Controller is the state owner of a survey session.
type Controller struct {
	loader    catalog.Loader
	sources   Sources
	submitter Submitter
	logger    logrus.FieldLogger

	mu         sync.RWMutex
	flow       FlowState
	answers    FormAnswers
	unidades   []catalog.AcademicUnit
	academicos []catalog.Researcher
	preguntas  []catalog.SurveyQuestion

	obsMu     sync.Mutex
	observers map[int]func(Snapshot)
	nextObs   int
}

// New constructs a Controller reading the datasets behind sources through
// loader. Submissions go to DefaultSubmitURL unless an option says otherwise.
func New(loader catalog.Loader, sources Sources, options ...Option) *Controller {
	c := &Controller{
		loader:    loader,
		sources:   sources,
		submitter: submit.New(DefaultSubmitURL),
		logger:    logging.Nop(),
		observers: make(map[int]func(Snapshot)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// Initialize fetches the three datasets concurrently and fills the lists
// whose envelope reports success. If any fetch fails the lists stay as they
// were, LoadErrorMessage is set and the cause is returned. IsLoading is
// raised for the duration of the call.
func (c *Controller) Initialize(ctx context.Context) error {
	c.update(func() {
		c.flow.IsLoading = true
		c.flow.LoadErrorMessage = ""
	})
	defer c.update(func() {
		c.flow.IsLoading = false
	})

	if c.loader == nil || !c.sources.complete() {
		c.failLoad(ErrNoSources)
		return ErrNoSources
	}

	var (
		unidades   catalog.Envelope[catalog.AcademicUnit]
		academicos catalog.Envelope[catalog.Researcher]
		preguntas  catalog.Envelope[catalog.SurveyQuestion]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		env, err := fetch[catalog.AcademicUnit](gctx, c.loader, c.sources.Unidades)
		unidades = env
		return err
	})
	g.Go(func() error {
		env, err := fetch[catalog.Researcher](gctx, c.loader, c.sources.Academicos)
		academicos = env
		return err
	})
	g.Go(func() error {
		env, err := fetch[catalog.SurveyQuestion](gctx, c.loader, c.sources.Cuestionarios)
		preguntas = env
		return err
	})
	if err := g.Wait(); err != nil {
		c.failLoad(err)
		return errors.Wrap(err, "cuestionario: load datasets")
	}

	c.warnUnsuccessful("unidades", c.sources.Unidades, unidades.Success, unidades.Message)
	c.warnUnsuccessful("academicos", c.sources.Academicos, academicos.Success, academicos.Message)
	c.warnUnsuccessful("preguntas", c.sources.Cuestionarios, preguntas.Success, preguntas.Message)

	c.update(func() {
		if unidades.Success {
			c.unidades = unidades.Data
		}
		if academicos.Success {
			c.academicos = academicos.Data
		}
		if preguntas.Success {
			c.preguntas = preguntas.Data
			c.answers.Respuestas = emptyAnswers(len(preguntas.Data))
		}
	})

	c.logger.WithFields(logrus.Fields{
		"unidades":   len(unidades.Data),
		"academicos": len(academicos.Data),
		"preguntas":  len(preguntas.Data),
	}).Debug("datasets loaded")
	return nil
}

func fetch[T any](ctx context.Context, loader catalog.Loader, src catalog.Source) (catalog.Envelope[T], error) {
	doc, err := loader.Load(ctx, src)
	if err != nil {
		return catalog.Envelope[T]{}, err
	}
	return catalog.DecodeEnvelope[T](doc)
}

func (c *Controller) failLoad(err error) {
	c.logger.WithError(err).Error("Error al cargar datos")
	c.update(func() {
		c.flow.LoadErrorMessage = LoadErrorMessage
	})
}

// A success:false envelope leaves its list empty without failing the load.
func (c *Controller) warnUnsuccessful(name string, src catalog.Source, ok bool, message string) {
	if ok {
		return
	}
	c.logger.WithFields(logrus.Fields{
		"dataset": name,
		"source":  src.Location(),
		"message": message,
	}).Warn("dataset reported success=false, list left empty")
}

// VerificarAcceso unlocks the questionnaire when the respondent declared an
// academic role and picked a unit. It never locks it again.
func (c *Controller) VerificarAcceso() {
	c.mu.RLock()
	allowed := c.flow.IsAcademicRole && !c.flow.SelectedUnitID.IsZero()
	already := c.flow.IsUnlocked
	c.mu.RUnlock()
	if !allowed || already {
		return
	}
	c.update(func() {
		c.flow.IsUnlocked = true
	})
}

// GeneratePostData builds the submission body from the current selection
// and answers. Nothing is validated; empty answers are sent as is.
func (c *Controller) GeneratePostData() PostData {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return PostData{
		NombreInvestigador: c.answers.SelectedResearcherID,
		Escuela:            c.flow.SelectedUnitID,
		Respuestas:         cloneSlice(c.answers.Respuestas),
	}
}

// EnviarCuestionario posts the current answers. A transport error or a
// non-2xx reply sets SubmitFailed and is returned. On success the
// selection and answers are cleared, SubmitSucceeded is set and the debug
// view closes. IsSubmitting is raised for the duration of the call.
func (c *Controller) EnviarCuestionario(ctx context.Context) error {
	c.update(func() {
		c.flow.IsSubmitting = true
		c.flow.SubmitFailed = false
	})
	defer c.update(func() {
		c.flow.IsSubmitting = false
	})

	payload := c.GeneratePostData()
	requestID, err := c.submitter.Send(ctx, payload)
	log := c.logger.WithField("request_id", requestID)
	if err != nil {
		log.WithError(err).Error("Error al enviar el cuestionario")
		c.update(func() {
			c.flow.SubmitFailed = true
		})
		return err
	}

	c.update(func() {
		c.flow.SubmitSucceeded = true
		c.answers = FormAnswers{Respuestas: emptyAnswers(len(c.preguntas))}
		c.flow.SelectedUnitID = catalog.ID{}
		c.flow.ShowDebugJSON = false
	})
	log.WithField("respuestas", len(payload.Respuestas)).Info("cuestionario enviado")
	return nil
}

// UpdateRespuesta stores value as the answer to question index.
func (c *Controller) UpdateRespuesta(index int, value string) error {
	var err error
	c.update(func() {
		if index < 0 || index >= len(c.answers.Respuestas) {
			err = errors.Wrapf(ErrIndexOutOfRange, "index %d of %d", index, len(c.answers.Respuestas))
			return
		}
		c.answers.Respuestas[index] = value
	})
	return err
}

// SetAcademico records whether the respondent declared an academic role.
func (c *Controller) SetAcademico(v bool) {
	c.update(func() {
		c.flow.IsAcademicRole = v
	})
}

// SelectUnidad records the chosen academic unit. The zero ID clears it.
func (c *Controller) SelectUnidad(id catalog.ID) {
	c.update(func() {
		c.flow.SelectedUnitID = id
	})
}

// SelectInvestigador records the researcher the survey is attributed to.
func (c *Controller) SelectInvestigador(id catalog.ID) {
	c.update(func() {
		c.answers.SelectedResearcherID = id
	})
}

// SetShowJSON shows or hides the debug view of the payload.
func (c *Controller) SetShowJSON(v bool) {
	c.update(func() {
		c.flow.ShowDebugJSON = v
	})
}

// ToggleShowJSON flips the debug view flag.
func (c *Controller) ToggleShowJSON() {
	c.update(func() {
		c.flow.ShowDebugJSON = !c.flow.ShowDebugJSON
	})
}

// NombreInvestigadorSeleccionado returns the name of the selected
// researcher, or "" when none matches.
func (c *Controller) NombreInvestigadorSeleccionado() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, a := range c.academicos {
		if a.ID == c.answers.SelectedResearcherID {
			return a.Nombre
		}
	}
	return ""
}

// NombreEscuelaSeleccionada returns the name of the selected unit, or ""
// when none matches.
func (c *Controller) NombreEscuelaSeleccionada() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, u := range c.unidades {
		if u.ID == c.flow.SelectedUnitID {
			return u.Nombre
		}
	}
	return ""
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// Subscribe registers fn to receive a Snapshot after every state change.
// The returned function removes the subscription.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	if fn == nil {
		return func() {}
	}
	c.obsMu.Lock()
	id := c.nextObs
	c.nextObs++
	c.observers[id] = fn
	c.obsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.obsMu.Lock()
			delete(c.observers, id)
			c.obsMu.Unlock()
		})
	}
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		FlowState: c.flow,
		FormAnswers: FormAnswers{
			SelectedResearcherID: c.answers.SelectedResearcherID,
			Respuestas:           cloneSlice(c.answers.Respuestas),
		},
		Unidades:   cloneSlice(c.unidades),
		Academicos: cloneSlice(c.academicos),
		Preguntas:  cloneSlice(c.preguntas),
	}
}

// update applies fn under the write lock and notifies observers outside it.
func (c *Controller) update(fn func()) {
	c.mu.Lock()
	fn()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

func (c *Controller) notify(snap Snapshot) {
	c.obsMu.Lock()
	if len(c.observers) == 0 {
		c.obsMu.Unlock()
		return
	}
	ids := make([]int, 0, len(c.observers))
	for id := range c.observers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(Snapshot), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, c.observers[id])
	}
	c.obsMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
