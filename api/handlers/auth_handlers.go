package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"golang.org/x/oauth2"

	"github.com/tunelens/ytmusic-home-api/api/services/ytmusic"
	"github.com/tunelens/ytmusic-home-api/api/stores/session"
)

const YOUTUBE_AUTH_STATE = "youtube_auth_state"

func InitiateOAuthFlow(c *fiber.Ctx) error {
	state := utils.UUIDv4()

	c.Cookie(&fiber.Cookie{
		Name:  YOUTUBE_AUTH_STATE,
		Value: state,
	})

	url := ytmusic.OauthConfig().AuthCodeURL(state, oauth2.AccessTypeOffline)

	return c.Redirect(url)
}

func HandleOAuthCallback(c *fiber.Ctx) error {
	code := c.Query("code")
	state := c.Query("state")
	authError := c.Query("error")

	storedState := c.Cookies(YOUTUBE_AUTH_STATE)

	if authError != "" {
		return c.Redirect("/#?error=" + authError)
	}

	if state == "" || state != storedState {
		return c.Redirect("/#error=state-mismatch")
	}

	c.ClearCookie(YOUTUBE_AUTH_STATE)

	token, err := ytmusic.OauthConfig().Exchange(c.Context(), code)

	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	sess, err := session.Store.Get(c)
	if err != nil {
		log.Println("session.Store.Get error:", err)

		return c.SendStatus(fiber.StatusInternalServerError)
	}

	ytmusic.StoreAuthCodeToken(token, sess.ID())

	if err := sess.Save(); err != nil {
		log.Println("session save error:", err)

		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusOK)
}
