package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/chewol/internal/engine/buffer"
	"github.com/dshills/chewol/internal/filetype"
	"github.com/dshills/chewol/internal/logging"
	"github.com/dshills/chewol/internal/renderer"
)

const (
	helpMessage    = "HELP: Ctrl-F = find | Ctrl-S = save | Ctrl-Q = quit"
	defaultTimeout = 5 * time.Second
)

// Options configures the application.
type Options struct {
	// Filename is opened on startup. Empty starts with an unnamed document.
	Filename string

	// Registry detects language profiles. Nil selects the built-ins.
	Registry *filetype.Registry

	// Theme styles the view. Nil selects the default theme.
	Theme *renderer.Theme

	// QuitTimes is how many extra Ctrl-Q presses a dirty document needs.
	QuitTimes int

	// MessageTimeout is how long status messages stay visible.
	MessageTimeout time.Duration

	// Version is shown on the welcome line.
	Version string

	// Logger receives diagnostics. Nil discards them.
	Logger *logging.Logger
}

type statusMessage struct {
	text string
	at   time.Time
}

// Application is the editor: one document, one cursor, one screen.
type Application struct {
	screen tcell.Screen
	view   *renderer.View
	doc    *buffer.Document
	logger *logging.Logger

	cursor buffer.Position
	offset buffer.Position

	status         statusMessage
	messageTimeout time.Duration
	quitTimes      int
	maxQuitTimes   int
	quit           bool

	now func() time.Time
}

// New creates an application drawing on screen, which must already be
// initialized. A file that cannot be opened leaves an empty unnamed
// document and an error in the status bar.
func New(screen tcell.Screen, opts Options) *Application {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Null()
	}
	registry := opts.Registry
	if registry == nil {
		registry = filetype.Default()
	}
	timeout := opts.MessageTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	a := &Application{
		screen:         screen,
		view:           renderer.NewView(screen, opts.Theme),
		logger:         logger.WithComponent("app"),
		messageTimeout: timeout,
		quitTimes:      max(0, opts.QuitTimes),
		maxQuitTimes:   max(0, opts.QuitTimes),
		now:            time.Now,
	}
	a.view.SetWelcome(fmt.Sprintf("chewol editor -- version %s", opts.Version))
	a.setStatus(helpMessage)

	docOpts := []buffer.Option{buffer.WithRegistry(registry), buffer.WithLogger(logger.WithComponent("buffer"))}
	a.doc = buffer.New(docOpts...)
	if opts.Filename != "" {
		doc, err := buffer.Open(opts.Filename, docOpts...)
		if err != nil {
			a.logger.Error("%v", NewOperationError("open", opts.Filename, err))
			a.setStatus("ERR: could not open file: " + opts.Filename)
		} else {
			a.doc = doc
		}
	}
	return a
}

// Document returns the document being edited.
func (a *Application) Document() *buffer.Document {
	return a.doc
}

// Cursor returns the cursor position.
func (a *Application) Cursor() buffer.Position {
	return a.cursor
}

// Run draws the screen and processes keys until the user quits.
func (a *Application) Run() error {
	for {
		a.refresh()
		if a.quit {
			return nil
		}
		ev, err := a.readKey()
		if err != nil {
			return err
		}
		if err := a.handleKey(ev); err != nil {
			return err
		}
	}
}

// readKey blocks until a key arrives. Resizes and posted events are handled
// while waiting.
func (a *Application) readKey() (*tcell.EventKey, error) {
	for {
		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return nil, ErrScreenClosed
		case *tcell.EventKey:
			return ev, nil
		case *tcell.EventResize:
			a.screen.Sync()
			a.scroll()
			a.refresh()
		case *tcell.EventInterrupt:
			a.handleInterrupt(ev)
			a.refresh()
		}
	}
}

func (a *Application) refresh() {
	a.view.Draw(renderer.Frame{
		Document: a.doc,
		Cursor:   a.cursor,
		Offset:   a.offset,
		Message:  a.message(),
	})
}

func (a *Application) setStatus(text string) {
	a.status = statusMessage{text: text, at: a.now()}
}

// message returns the status text while it is still fresh.
func (a *Application) message() string {
	if a.now().Sub(a.status.at) < a.messageTimeout {
		return a.status.text
	}
	return ""
}
