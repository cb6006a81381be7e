package form

import (
	"context"
	"sync"

	fiberlog "github.com/gofiber/fiber/v2/log"
)

// Controller owns the State of one mounted form. All transitions go through Dispatch and
// are applied one at a time.
type Controller struct {
	auth Authenticator

	mu      sync.Mutex
	state   State
	settled chan struct{}
}

func NewController(auth Authenticator) *Controller {
	settled := make(chan struct{})
	close(settled)
	return &Controller{
		auth:    auth,
		settled: settled,
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dispatch applies ev and returns the resulting state. An accepted Submit starts the
// authentication call in the background; its SubmitCompleted is dispatched when the call
// returns, whatever the form has done in the meantime. The call is never cancelled.
func (c *Controller) Dispatch(ev Event) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := Reduce(c.state, ev)
	if err != nil {
		return c.state, err
	}
	c.state = next

	if _, ok := ev.(Submit); ok {
		c.settled = make(chan struct{})
		go c.authenticate(next.Email, next.Password, c.settled)
	}

	return next, nil
}

// Settled returns a channel that is closed once the most recently submitted call has
// been applied. It is already closed when nothing was submitted.
func (c *Controller) Settled() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settled
}

func (c *Controller) authenticate(email, password string, done chan struct{}) {
	defer close(done)

	result := c.auth.Authenticate(context.Background(), email, password)
	fiberlog.Debugf("authentication resolved: %s", result)

	if _, err := c.Dispatch(SubmitCompleted{Result: result}); err != nil {
		fiberlog.Error("applying authentication result: ", err)
	}
}
