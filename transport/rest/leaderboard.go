package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/gomoku-backend/internal/repository"
)

const defaultLeaderboardLimit = 10

type leaderboardHandler struct {
	logger      *slog.Logger
	leaderboard repository.LeaderboardRepository
}

func newLeaderboardHandler(logger *slog.Logger, leaderboard repository.LeaderboardRepository) *leaderboardHandler {
	return &leaderboardHandler{
		logger:      logger,
		leaderboard: leaderboard,
	}
}

func (that *leaderboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "leaderboardHandler")

	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := int64(defaultLeaderboardLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := that.leaderboard.Top(r.Context(), limit)
	if err != nil {
		log.Error("failed to read leaderboard", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(entries); err != nil {
		log.Error("failed to encode leaderboard", "error", err)
	}
}
