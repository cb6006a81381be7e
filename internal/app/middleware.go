package app

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	ownerLocalsKey    = "form.owner"
	sessionStartedKey = "started_at"
)

// SetOwner makes sure the browser has a session and exposes its id as the owner of the
// forms it mounts.
func SetOwner(sessionStore *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessionStore.Get(c)
		if err != nil {
			return err
		}

		// Save hands the session back to the pool, read the id first
		id := sess.ID()

		if sess.Fresh() {
			sess.Set(sessionStartedKey, time.Now().Unix())
			if err := sess.Save(); err != nil {
				return err
			}
		}

		c.Locals(ownerLocalsKey, id)
		return c.Next()
	}
}

func owner(c *fiber.Ctx) string {
	id, _ := c.Locals(ownerLocalsKey).(string)
	return id
}
