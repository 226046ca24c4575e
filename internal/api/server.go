// Package api exposes a small operational HTTP surface next to the bot:
// liveness and mood statistics for the operator.
package api

import (
	"net/http"
	"regexp"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VolentCry/Your-Daily-Helper-Bot/internal"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/mood"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/response"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/service"
	"github.com/VolentCry/Your-Daily-Helper-Bot/internal/storage"
)

var monthKeyRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// NewRouter wires the ops endpoints. Liveness stays open; everything that
// reads the mood ledger sits behind the bearer token.
func NewRouter(store storage.MoodRepository, loc *time.Location, opsToken string, logger internal.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), RequestID())
	r.GET("/healthz", Healthz(store, logger))

	protected := r.Group("/", BearerAuth(opsToken))
	protected.GET("/stats", GetStats(store, loc, logger))
	return r
}

func Healthz(store storage.MoodRepository, logger internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			logger.Errorf("api: [request_id=%s] store unreachable: %v", c.GetString("request_id"), err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

type categoryStat struct {
	Category int    `json:"category"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
}

// GetStats aggregates the mood ledger over ?period=week (default) or
// ?period=YYYY-MM and returns per-category counts.
func GetStats(store storage.MoodRepository, loc *time.Location, logger internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var window internal.ReportWindow
		switch period := c.DefaultQuery("period", "week"); {
		case period == "week":
			window = service.WeekWindow(time.Now().In(loc))
		case monthKeyRe.MatchString(period):
			w, err := service.MonthWindow(period, loc)
			if err != nil {
				c.JSON(http.StatusBadRequest, response.BadRequest("invalid period: "+err.Error()))
				return
			}
			window = w
		default:
			c.JSON(http.StatusBadRequest, response.BadRequest("period must be 'week' or 'YYYY-MM'"))
			return
		}

		entries, err := store.AllEntries(c.Request.Context())
		if err != nil {
			logger.Errorf("api: [request_id=%s] failed to fetch entries: %v", c.GetString("request_id"), err)
			c.JSON(http.StatusInternalServerError, response.InternalError("failed to fetch mood entries"))
			return
		}

		counts := service.Aggregate(entries, window)
		ids := make([]int, 0, len(counts))
		total := 0
		for id, n := range counts {
			ids = append(ids, id)
			total += n
		}
		sort.Ints(ids)

		stats := make([]categoryStat, 0, len(ids))
		for _, id := range ids {
			cat, ok := mood.Get(id)
			if !ok {
				continue
			}
			stats = append(stats, categoryStat{Category: id, Label: cat.Label, Count: counts[id]})
		}

		c.JSON(http.StatusOK, response.Success(stats, map[string]any{
			"period":     window.Title(),
			"total":      total,
			"request_id": c.GetString("request_id"),
		}))
	}
}
