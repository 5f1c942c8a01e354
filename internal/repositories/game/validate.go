package game

import (
	"github.com/KirkDiggler/champion-grid/internal/entities"
	"github.com/KirkDiggler/champion-grid/internal/errors"
	"github.com/KirkDiggler/champion-grid/internal/pkg/clock"
)

const (
	errInputNil     = "input is required"
	errGameNil      = "game is required"
	errGameIDEmpty  = "game ID is required"
	errChallengeNil = "challenge is required"
)

func validateGame(game *entities.Game) error {
	if game == nil {
		return errors.InvalidArgument(errGameNil)
	}
	if game.ID == "" {
		return errors.InvalidArgument(errGameIDEmpty)
	}
	return nil
}

func validateDate(date string) error {
	if date == "" {
		return errors.InvalidArgument("date is required")
	}
	if _, err := clock.ParseDate(date); err != nil {
		return errors.InvalidArgumentf("date %q is not formatted YYYY-MM-DD", date).
			WithMeta("date", date)
	}
	return nil
}

func validateChallenge(challenge *entities.DailyChallenge) error {
	if challenge == nil {
		return errors.InvalidArgument(errChallengeNil)
	}
	return validateDate(challenge.Date)
}
