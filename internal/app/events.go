package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/chewol/internal/filetype"
)

// RegistryEvent carries a reloaded profile registry into the event loop.
type RegistryEvent struct {
	Registry *filetype.Registry
	// Err lists profile files that failed to load. Registry still holds
	// every profile that loaded.
	Err error
}

// PostRegistry hands a reloaded registry to the application running on
// screen. It is safe to call from any goroutine and matches
// filetype.ReloadHandler when bound to a screen.
func PostRegistry(screen tcell.Screen, reg *filetype.Registry, err error) error {
	return screen.PostEvent(tcell.NewEventInterrupt(RegistryEvent{Registry: reg, Err: err}))
}

func (a *Application) handleInterrupt(ev *tcell.EventInterrupt) {
	re, ok := ev.Data().(RegistryEvent)
	if !ok {
		return
	}
	if re.Err != nil {
		a.logger.Warn("profile reload: %v", re.Err)
		a.setStatus("ERR: some language profiles failed to load")
	}
	if re.Registry == nil {
		return
	}
	before := a.doc.FileTypeName()
	a.doc.SetRegistry(re.Registry)
	a.logger.Info("profiles reloaded: %d profiles, filetype %s", re.Registry.Len(), a.doc.FileTypeName())
	if re.Err == nil && before != a.doc.FileTypeName() {
		a.setStatus("Filetype: " + a.doc.FileTypeName())
	}
}
