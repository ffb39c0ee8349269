package discordclient

import (
	"errors"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

var ErrMessageNotFound = errors.New("discord message not found")

// IsNotFound tells a definite "this message is gone" apart from every other
// failure. Discord answers 404 with code 10008 for deleted messages and 10003
// when the whole channel was deleted. Rate limits, 5xx, permission errors and
// network failures are not a proof of absence.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrMessageNotFound) {
		return true
	}

	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}

	if restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeUnknownMessage, discordgo.ErrCodeUnknownChannel:
			return true
		}
	}

	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}
