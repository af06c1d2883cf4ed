package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "leaderboard:wins"

// Entry is one row of the lifetime-wins leaderboard.
type Entry struct {
	Name string `json:"name"`
	Wins int64  `json:"wins"`
}

type LeaderboardRepository interface {
	AddWin(ctx context.Context, playerName string) error
	Top(ctx context.Context, limit int64) ([]Entry, error)
}

type dbLeaderboard struct {
	client *redis.Client
}

func NewLeaderboardRepository(client *redis.Client) LeaderboardRepository {
	return &dbLeaderboard{
		client: client,
	}
}

// AddWin - bumps the player's lifetime win counter by one.
func (that *dbLeaderboard) AddWin(ctx context.Context, playerName string) error {
	if err := that.client.ZIncrBy(ctx, leaderboardKey, 1, playerName).Err(); err != nil {
		return fmt.Errorf("failed to increment win count: %w", err)
	}

	return nil
}

// Top - returns up to limit players ordered by win count, best first.
func (that *dbLeaderboard) Top(ctx context.Context, limit int64) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}

	members, err := that.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := make([]Entry, 0, len(members))
	for _, member := range members {
		name, ok := member.Member.(string)
		if !ok {
			continue
		}

		entries = append(entries, Entry{Name: name, Wins: int64(member.Score)})
	}

	return entries, nil
}
