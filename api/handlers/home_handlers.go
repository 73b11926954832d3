package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/tunelens/ytmusic-home-api/api/services/ytmusic"
	"github.com/tunelens/ytmusic-home-api/api/stores/session"
)

// GetHomeFeed serves the decoded home feed sections, following continuation
// pages up to the requested row count.
func GetHomeFeed(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", ytmusic.DefaultHomeLimit)

	if limit <= 0 {
		log.Println("invalid limit query parameter:", c.Query("limit"))

		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Errors: Errors{getBadRequestError("The `limit` query parameter must be a positive integer.", &ErrorSource{Parameter: "limit"})},
		})
	}

	sess, err := session.Store.Get(c)
	if err != nil {
		log.Println("session.Store.Get error:", err)

		return c.SendStatus(fiber.StatusInternalServerError)
	}

	sections, err := ytmusic.GetHome(sess.ID(), limit)

	if err != nil {
		var navErr *ytmusic.NavigationError

		if errors.As(err, &navErr) {
			// a required field went missing, the remote schema moved
			log.Println("home feed schema mismatch:", navErr)

			return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
				Errors: Errors{getBadGatewayError(navErr.Error())},
			})
		}

		log.Println("ytmusic.GetHome error:", err)

		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(&APIResponse{Data: sections})
}
