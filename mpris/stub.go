//go:build !linux

package mpris

// Adapter only records status on platforms without a session bus.
type Adapter struct {
	*controller
}

// New returns an adapter that never receives bus requests.
func New(post func(Action)) (*Adapter, error) {
	return &Adapter{controller: newController(post)}, nil
}

func (a *Adapter) Close() error {
	return nil
}
