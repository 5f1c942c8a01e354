package game

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/champion-grid/internal/entities"
	"github.com/KirkDiggler/champion-grid/internal/errors"
	redisclient "github.com/KirkDiggler/champion-grid/internal/redis"
)

const (
	// Key patterns: game:{id} and daily:{YYYY-MM-DD}
	gameKeyPrefix  = "game:"
	dailyKeyPrefix = "daily:"

	// DefaultDailyTTL keeps a day's challenge around until the next one is live
	DefaultDailyTTL = 48 * time.Hour
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a Redis-backed game repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a new game with the given TTL
func (r *redisRepository) Create(ctx context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateGame(input.Game); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	data, err := json.Marshal(input.Game)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal game")
	}

	created, err := r.client.SetNX(ctx, gameKey(input.Game.ID), data, ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store game in Redis")
	}
	if !created {
		return nil, errors.AlreadyExistsf("game %s already exists", input.Game.ID).
			WithMeta("game_id", input.Game.ID)
	}

	return &CreateOutput{Game: input.Game}, nil
}

// Get retrieves a game by ID
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if input.GameID == "" {
		return nil, errors.InvalidArgument(errGameIDEmpty)
	}

	data, err := r.client.Get(ctx, gameKey(input.GameID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("game %s not found", input.GameID).
				WithMeta("game_id", input.GameID)
		}
		return nil, errors.Wrap(err, "failed to get game from Redis")
	}

	var game entities.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal game")
	}

	return &GetOutput{Game: &game}, nil
}

// Update replaces a stored game and keeps its remaining TTL
func (r *redisRepository) Update(ctx context.Context, input *UpdateInput) (*UpdateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateGame(input.Game); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Game)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal game")
	}

	err = r.client.SetArgs(ctx, gameKey(input.Game.ID), data, redis.SetArgs{
		Mode:    "XX",
		KeepTTL: true,
	}).Err()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("game %s not found", input.Game.ID).
				WithMeta("game_id", input.Game.ID)
		}
		return nil, errors.Wrap(err, "failed to update game in Redis")
	}

	return &UpdateOutput{Game: input.Game}, nil
}

// SaveDaily stores the challenge unless the day already has one
func (r *redisRepository) SaveDaily(ctx context.Context, input *SaveDailyInput) (*SaveDailyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateChallenge(input.Challenge); err != nil {
		return nil, err
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultDailyTTL
	}

	data, err := json.Marshal(input.Challenge)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal daily challenge")
	}

	created, err := r.client.SetNX(ctx, dailyKey(input.Challenge.Date), data, ttl).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to store daily challenge in Redis")
	}
	if created {
		return &SaveDailyOutput{Challenge: input.Challenge, Created: true}, nil
	}

	existing, err := r.GetDaily(ctx, &GetDailyInput{Date: input.Challenge.Date})
	if err != nil {
		return nil, errors.Wrap(err, "failed to read existing daily challenge")
	}
	return &SaveDailyOutput{Challenge: existing.Challenge}, nil
}

// GetDaily retrieves the challenge for a date
func (r *redisRepository) GetDaily(ctx context.Context, input *GetDailyInput) (*GetDailyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument(errInputNil)
	}
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, dailyKey(input.Date)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no daily challenge for %s", input.Date).
				WithMeta("date", input.Date)
		}
		return nil, errors.Wrap(err, "failed to get daily challenge from Redis")
	}

	var challenge entities.DailyChallenge
	if err := json.Unmarshal(data, &challenge); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "failed to unmarshal daily challenge")
	}

	return &GetDailyOutput{Challenge: &challenge}, nil
}

func gameKey(id string) string {
	return gameKeyPrefix + id
}

func dailyKey(date string) string {
	return dailyKeyPrefix + date
}
