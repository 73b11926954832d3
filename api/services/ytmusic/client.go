package ytmusic

// innertube transport for the home feed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
)

const (
	InnertubeBaseURL = "https://music.youtube.com/youtubei/v1"

	browseIDHome = "FEmusic_home"

	userAgent = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

// browseHome posts one home browse query. additionalParams is appended
// verbatim to the query string (the echoed continuation token). The remaining
// row count is advisory only; the endpoint pages at its own granularity.
func browseHome(sessionID, additionalParams string, _ int) (map[string]interface{}, error) {
	cli := fiber.Client{}

	body := map[string]interface{}{
		"context": map[string]interface{}{
			"capabilities": map[string]interface{}{},
			"client": map[string]string{
				"clientName":    "WEB_REMIX",
				"clientVersion": "1.20230821.01.00",
			},
		},
		"browseId": browseIDHome,
	}

	req := cli.Post(InnertubeBaseURL+"/browse?alt=json&key="+os.Getenv("YOUTUBE_API_KEY")+additionalParams).
		UserAgent(userAgent).
		Set("origin", "https://music.youtube.com").
		JSON(body)

	// authenticated sessions get personalized rows; anonymous ones still work
	if token, err := getAuthCodeToken(sessionID); err == nil && token != nil {
		req.Set("Authorization", "Bearer "+token.AccessToken)
	}

	code, raw, errs := req.Bytes()
	if len(errs) > 0 {
		return nil, errs[0]
	}
	if code >= fiber.StatusBadRequest {
		return nil, fmt.Errorf("ytmusic: browse returned status %d", code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, err
	}
	return response, nil
}
