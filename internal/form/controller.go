package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ytget/tracker-launcher/internal/model"
	"github.com/ytget/tracker-launcher/internal/tracker"
)

// Deps bundles the collaborators of a Controller
type Deps struct {
	Fields     Fields
	Picker     Picker
	Notifier   Notifier
	Translator Translator
	Store      Store
	Runner     tracker.Runner

	// StartDir is where the file and directory pickers open
	StartDir string

	// Dispatch runs fn on the UI goroutine. Nil runs fn inline.
	Dispatch func(fn func())

	Logger zerolog.Logger
}

// Controller is the launcher's application state. Field widgets and the
// settings file are only touched from the UI goroutine; a tracker started
// with Start runs on its own goroutine and reports back through Dispatch.
type Controller struct {
	fields   Fields
	picker   Picker
	notifier Notifier
	texts    Translator
	store    Store
	runner   tracker.Runner
	startDir string
	dispatch func(fn func())
	log      zerolog.Logger

	runMutex sync.Mutex
	running  bool
	cancel   context.CancelFunc
}

// NewController creates the form controller
func NewController(deps Deps) *Controller {
	dispatch := deps.Dispatch
	if dispatch == nil {
		dispatch = func(fn func()) { fn() }
	}

	return &Controller{
		fields:   deps.Fields,
		picker:   deps.Picker,
		notifier: deps.Notifier,
		texts:    deps.Translator,
		store:    deps.Store,
		runner:   deps.Runner,
		startDir: deps.StartDir,
		dispatch: dispatch,
		log:      deps.Logger,
	}
}

// Populate fills every field from the last saved record. Fields stay blank
// when nothing was saved or the file cannot be read.
func (c *Controller) Populate() error {
	settings, err := c.store.Load()
	if err != nil {
		c.log.Error().Err(err).Msg("failed to load settings")
		c.notifier.ShowError(c.text(MsgTitleError), fmt.Sprintf(c.text(MsgLoadFailed), err))
		return err
	}

	if settings.IsZero() {
		c.log.Debug().Msg("no saved settings, starting blank")
	}
	for _, f := range model.Fields {
		c.fields.SetValue(f, settings.Get(f))
	}
	return nil
}

// Values returns a snapshot of the six fields
func (c *Controller) Values() model.Settings {
	var settings model.Settings
	for _, f := range model.Fields {
		settings.Set(f, c.fields.Value(f))
	}
	return settings
}

// Save persists all current field values
func (c *Controller) Save() error {
	if err := c.store.Save(c.Values()); err != nil {
		c.log.Error().Err(err).Msg("failed to save settings")
		c.notifier.ShowError(c.text(MsgTitleError), fmt.Sprintf(c.text(MsgSaveFailed), err))
		return err
	}
	return nil
}

// ChooseFile lets the user pick a file for field. All values are saved
// afterwards, also when the picker was cancelled.
func (c *Controller) ChooseFile(field model.Field) {
	c.picker.PickFile(c.startDir, func(path string) {
		if path != "" {
			c.fields.SetValue(field, path)
		}
		_ = c.Save() // Save shows its own error dialog
	})
}

// ChooseDir lets the user pick a directory for field. The chosen path always
// ends with a separator. All values are saved afterwards.
func (c *Controller) ChooseDir(field model.Field) {
	c.picker.PickDirectory(c.startDir, func(path string) {
		if path != "" {
			c.fields.SetValue(field, model.NormalizeDir(path))
		}
		_ = c.Save() // Save shows its own error dialog
	})
}

// Run validates the form, saves it and runs the tracker, blocking until it exits
func (c *Controller) Run(ctx context.Context) (*model.Run, error) {
	if !c.acquire() {
		return nil, c.rejectBusy()
	}
	defer c.release()

	settings, err := c.prepare()
	if err != nil {
		return nil, err
	}

	run, err := c.runner.Run(ctx, settings)
	c.report(run, err)
	return run, err
}

// Start validates and saves synchronously, then runs the tracker on a
// goroutine. done is called on the UI goroutine after the result dialog.
func (c *Controller) Start(ctx context.Context, done func(*model.Run, error)) error {
	if !c.acquire() {
		return c.rejectBusy()
	}

	settings, err := c.prepare()
	if err != nil {
		c.release()
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.runMutex.Lock()
	c.cancel = cancel
	c.runMutex.Unlock()

	go func() {
		defer cancel()

		run, err := c.runner.Run(runCtx, settings)
		c.release()

		c.dispatch(func() {
			c.report(run, err)
			if done != nil {
				done(run, err)
			}
		})
	}()
	return nil
}

// Cancel stops the tracker started with Start. It reports whether a run was active.
func (c *Controller) Cancel() bool {
	c.runMutex.Lock()
	defer c.runMutex.Unlock()

	if c.cancel == nil {
		return false
	}
	c.log.Info().Msg("cancelling tracker run")
	c.cancel()
	return true
}

// Busy reports whether a tracker run is in progress
func (c *Controller) Busy() bool {
	c.runMutex.Lock()
	defer c.runMutex.Unlock()
	return c.running
}

// prepare validates the fields, checks the executable and saves the values
func (c *Controller) prepare() (model.Settings, error) {
	settings := c.Values()

	if missing := settings.Missing(); len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, f := range missing {
			names = append(names, f.Key())
		}
		c.log.Warn().Strs("missing", names).Msg("run rejected: empty fields")
		c.notifier.ShowError(c.text(MsgTitleError), c.text(MsgFillAllFields))
		return settings, fmt.Errorf("%w: %s", model.ErrMissingFields, strings.Join(names, ", "))
	}

	if err := c.runner.CheckExecutable(); err != nil {
		c.log.Error().Err(err).Msg("run rejected")
		c.notifier.ShowError(c.text(MsgTitleError), c.text(MsgExecutableMissing))
		return settings, err
	}

	if err := c.Save(); err != nil {
		return settings, err
	}
	return settings, nil
}

// report shows the outcome of a run
func (c *Controller) report(run *model.Run, err error) {
	switch {
	case err == nil:
		c.notifier.ShowInfo(c.text(MsgTitleSuccess), c.text(MsgRunSucceeded))

	case errors.Is(err, context.Canceled):
		c.notifier.ShowInfo(c.text(MsgTitleCancelled), c.text(MsgRunCancelled))

	case errors.Is(err, model.ErrExecutableNotFound):
		c.notifier.ShowError(c.text(MsgTitleError), c.text(MsgExecutableMissing))

	case errors.Is(err, model.ErrTrackerFailed):
		diagnostic := ""
		if run != nil {
			diagnostic = run.Diagnostic()
		}
		c.notifier.ShowError(c.text(MsgTitleError), fmt.Sprintf(c.text(MsgRunFailed), diagnostic))

	default:
		c.notifier.ShowError(c.text(MsgTitleError), fmt.Sprintf(c.text(MsgLaunchFailed), launchCause(run, err)))
	}
}

// acquire marks a run as in progress, false if one already is
func (c *Controller) acquire() bool {
	c.runMutex.Lock()
	defer c.runMutex.Unlock()
	if c.running {
		return false
	}
	c.running = true
	return true
}

// release clears the in-progress mark
func (c *Controller) release() {
	c.runMutex.Lock()
	c.running = false
	c.cancel = nil
	c.runMutex.Unlock()
}

func (c *Controller) rejectBusy() error {
	c.notifier.ShowError(c.text(MsgTitleError), c.text(MsgRunInProgress))
	return model.ErrRunInProgress
}

func (c *Controller) text(key string) string {
	if c.texts == nil {
		if text, ok := defaultTexts[key]; ok {
			return text
		}
		return key
	}
	return c.texts.GetText(key)
}

// launchCause returns the OS error behind a launch failure without the
// sentinel prefix the dialog text already carries
func launchCause(run *model.Run, err error) string {
	if run != nil && run.LastError != "" {
		return run.LastError
	}
	return strings.TrimPrefix(err.Error(), model.ErrLaunchFailed.Error()+": ")
}
