package viewer

import (
	"context"
	"errors"
	"log"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/ytget/xkcd-viewer/internal/config"
	"github.com/ytget/xkcd-viewer/internal/fetch"
	"github.com/ytget/xkcd-viewer/internal/model"
	"github.com/ytget/xkcd-viewer/internal/store"
)

// UnknownError is shown when a fetch error carries no message
const UnknownError = "unknown error"

// Options configures a Controller. Dispatch defaults to Immediate and
// Context to context.Background().
type Options struct {
	Fetcher       fetch.Fetcher
	Store         store.Store
	View          View
	Notifier      Notifier
	Dispatch      Dispatcher
	RestorePolicy config.RestorePolicy
	Context       context.Context
}

// Controller drives the comic screen. At most one fetch is in flight; submits
// made while one is pending are rejected with NoticeBusy.
type Controller struct {
	presenter *Presenter
	view      View
	notifier  Notifier
	dispatch  Dispatcher
	ctx       context.Context

	inflight *semaphore.Weighted
	pending  sync.WaitGroup

	mu         sync.RWMutex
	fetcher    fetch.Fetcher
	store      store.Store
	policy     config.RestorePolicy
	state      model.ScreenState
	current    model.Comic
	hasCurrent bool
}

// NewController creates a controller in the Idle state
func NewController(opts Options) *Controller {
	dispatch := opts.Dispatch
	if dispatch == nil {
		dispatch = Immediate
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	policy := opts.RestorePolicy
	if policy == "" {
		policy = config.DefaultRestorePolicy
	}

	return &Controller{
		presenter: NewPresenter(opts.View),
		view:      opts.View,
		notifier:  opts.Notifier,
		dispatch:  dispatch,
		ctx:       ctx,
		inflight:  semaphore.NewWeighted(1),
		fetcher:   opts.Fetcher,
		store:     opts.Store,
		policy:    policy,
		state:     model.StateIdle,
	}
}

// Restore shows the saved comic, if any. An empty slot is not an error.
// Other failures are logged, reported per the restore policy, and returned.
func (c *Controller) Restore() error {
	c.mu.RLock()
	st, policy := c.store, c.policy
	c.mu.RUnlock()

	comic, err := st.Load()
	switch {
	case err == nil:
		log.Printf("Restored comic %d from storage", comic.Number)
		c.show(comic)
		return nil
	case errors.Is(err, store.ErrNotFound):
		log.Printf("No saved comic to restore")
		return nil
	default:
		log.Printf("Failed to restore saved comic: %v", err)
		if policy == config.RestoreNotify {
			c.notify(NoticeRestoreFailed, err.Error())
		}
		return err
	}
}

// Submit validates input and fetches the comic it names
func (c *Controller) Submit(input string) error {
	number, err := ParseComicNumber(input)
	if err != nil {
		c.notifyValidation(err)
		return err
	}
	return c.start(number)
}

// ShowLatest fetches the most recent comic
func (c *Controller) ShowLatest() error {
	return c.start(0)
}

// ShowPrevious fetches the comic before the current one
func (c *Controller) ShowPrevious() error {
	return c.showRelative(-1)
}

// ShowNext fetches the comic after the current one
func (c *Controller) ShowNext() error {
	return c.showRelative(1)
}

// Current returns the comic on screen
func (c *Controller) Current() (model.Comic, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current, c.hasCurrent
}

// State returns the controller state
func (c *Controller) State() model.ScreenState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Wait blocks until every fetch goroutine has handed its result to the
// dispatcher. With a synchronous dispatcher the result is applied by then.
func (c *Controller) Wait() {
	c.pending.Wait()
}

// SetFetcher replaces the fetcher used by later fetches
func (c *Controller) SetFetcher(f fetch.Fetcher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetcher = f
}

// SetStore replaces the store used by later saves and restores
func (c *Controller) SetStore(s store.Store) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = s
}

// SetRestorePolicy changes how restore failures are reported
func (c *Controller) SetRestorePolicy(policy config.RestorePolicy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.policy = policy
}

func (c *Controller) showRelative(delta int) error {
	current, ok := c.Current()
	if !ok || !current.HasNumber() || current.Number+delta < 1 {
		c.notifyValidation(ErrInvalidNumber)
		return ErrInvalidNumber
	}
	return c.start(current.Number + delta)
}

// start begins a fetch; number zero means the latest comic
func (c *Controller) start(number int) error {
	if !c.inflight.TryAcquire(1) {
		log.Printf("Ignoring request for comic %d: fetch already in flight", number)
		c.notify(NoticeBusy, "")
		return ErrBusy
	}

	c.mu.Lock()
	c.state = model.StateAwaitingFetch
	fetcher := c.fetcher
	c.mu.Unlock()
	c.view.SetBusy(true)

	task := fetch.Start(c.ctx, fetcher, number)
	log.Printf("Started fetch task %s for comic %d", task.ID, number)

	c.pending.Add(1)
	go func() {
		// The dispatcher may drop fn during shutdown
		defer c.pending.Done()
		comic, err := task.Wait(c.ctx)
		c.dispatch(func() {
			c.finish(task, comic, err)
		})
	}()
	return nil
}

// finish runs on the display goroutine once a fetch resolves
func (c *Controller) finish(task *fetch.Task, comic model.Comic, err error) {
	defer func() {
		c.mu.Lock()
		c.state = model.StateIdle
		c.mu.Unlock()
		c.view.SetBusy(false)
		c.inflight.Release(1)
	}()

	if err != nil {
		log.Printf("Fetch task %s failed: %v", task.ID, err)
		message := err.Error()
		if message == "" {
			message = UnknownError
		}
		c.notify(NoticeFetchFailed, message)
		return
	}

	c.show(comic)

	c.mu.RLock()
	st := c.store
	c.mu.RUnlock()
	if err := st.Save(comic); err != nil {
		log.Printf("Failed to save comic %d: %v", comic.Number, err)
		c.notify(NoticeSaveFailed, err.Error())
		return
	}
	log.Printf("Saved comic %d", comic.Number)
}

func (c *Controller) show(comic model.Comic) {
	c.presenter.Render(comic)

	c.mu.Lock()
	c.current = comic
	c.hasCurrent = true
	c.mu.Unlock()
}

func (c *Controller) notifyValidation(err error) {
	if errors.Is(err, ErrEmptyInput) {
		c.notify(NoticeEmptyInput, "")
		return
	}
	c.notify(NoticeInvalidNumber, "")
}

func (c *Controller) notify(kind NoticeKind, detail string) {
	if c.notifier == nil {
		return
	}
	c.notifier.Notify(Notice{Kind: kind, Detail: detail})
}
