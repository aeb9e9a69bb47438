package handler

import (
	"balanceai/internal/dto"
	"balanceai/internal/service"

	"github.com/gofiber/fiber/v2"
)

// TrackingHandler handles metrics, badges, streaks, and daily tasks.
type TrackingHandler struct {
	trackingService service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler instance.
func NewTrackingHandler(trackingService service.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

// GetMetrics handles GET /api/user-metrics. ?metricType= filters by type.
func (h *TrackingHandler) GetMetrics(c *fiber.Ctx) error {
	if c.Query("id") != "" {
		id, err := requiredIDQuery(c)
		if err != nil {
			return err
		}
		metric, err := h.trackingService.GetMetric(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(metric)
	}

	userID, err := optionalInt64Query(c, "userId")
	if err != nil {
		return err
	}
	metricType := optionalStringQuery(c, "metricType")
	limit, offset, err := paginationQuery(c, 0)
	if err != nil {
		return err
	}

	metrics, err := h.trackingService.ListMetrics(c.Context(), userID, metricType, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(metrics)
}

// CreateMetric handles POST /api/user-metrics.
func (h *TrackingHandler) CreateMetric(c *fiber.Ctx) error {
	var req dto.CreateUserMetricRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	metric, err := h.trackingService.CreateMetric(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(metric)
}

// UpdateMetric handles PUT /api/user-metrics?id=.
func (h *TrackingHandler) UpdateMetric(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	var req dto.UpdateUserMetricRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	metric, err := h.trackingService.UpdateMetric(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(metric)
}

// DeleteMetric handles DELETE /api/user-metrics?id=.
func (h *TrackingHandler) DeleteMetric(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	if err := h.trackingService.DeleteMetric(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{Message: "metric deleted"})
}

// GetBadges handles GET /api/badges.
func (h *TrackingHandler) GetBadges(c *fiber.Ctx) error {
	if c.Query("id") != "" {
		id, err := requiredIDQuery(c)
		if err != nil {
			return err
		}
		badge, err := h.trackingService.GetBadge(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(badge)
	}

	userID, err := optionalInt64Query(c, "userId")
	if err != nil {
		return err
	}
	limit, offset, err := paginationQuery(c, 0)
	if err != nil {
		return err
	}

	badges, err := h.trackingService.ListBadges(c.Context(), userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(badges)
}

// CreateBadge handles POST /api/badges.
func (h *TrackingHandler) CreateBadge(c *fiber.Ctx) error {
	var req dto.CreateBadgeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	badge, err := h.trackingService.CreateBadge(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(badge)
}

// UpdateBadge handles PUT /api/badges?id=.
func (h *TrackingHandler) UpdateBadge(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	var req dto.UpdateBadgeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	badge, err := h.trackingService.UpdateBadge(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(badge)
}

// DeleteBadge handles DELETE /api/badges?id=.
func (h *TrackingHandler) DeleteBadge(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	if err := h.trackingService.DeleteBadge(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{Message: "badge deleted"})
}

// GetStreaks handles GET /api/user-streaks.
func (h *TrackingHandler) GetStreaks(c *fiber.Ctx) error {
	if c.Query("id") != "" {
		id, err := requiredIDQuery(c)
		if err != nil {
			return err
		}
		streak, err := h.trackingService.GetStreak(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(streak)
	}

	userID, err := optionalInt64Query(c, "userId")
	if err != nil {
		return err
	}
	limit, offset, err := paginationQuery(c, 0)
	if err != nil {
		return err
	}

	streaks, err := h.trackingService.ListStreaks(c.Context(), userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(streaks)
}

// CreateStreak handles POST /api/user-streaks.
func (h *TrackingHandler) CreateStreak(c *fiber.Ctx) error {
	var req dto.CreateUserStreakRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	streak, err := h.trackingService.CreateStreak(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(streak)
}

// UpdateStreak handles PUT /api/user-streaks?id=.
func (h *TrackingHandler) UpdateStreak(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	var req dto.UpdateUserStreakRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	streak, err := h.trackingService.UpdateStreak(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(streak)
}

// DeleteStreak handles DELETE /api/user-streaks?id=.
func (h *TrackingHandler) DeleteStreak(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	if err := h.trackingService.DeleteStreak(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{Message: "streak deleted"})
}

// GetTasks handles GET /api/daily-tasks.
func (h *TrackingHandler) GetTasks(c *fiber.Ctx) error {
	if c.Query("id") != "" {
		id, err := requiredIDQuery(c)
		if err != nil {
			return err
		}
		task, err := h.trackingService.GetTask(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(task)
	}

	userID, err := optionalInt64Query(c, "userId")
	if err != nil {
		return err
	}
	limit, offset, err := paginationQuery(c, 0)
	if err != nil {
		return err
	}

	tasks, err := h.trackingService.ListTasks(c.Context(), userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(tasks)
}

// CreateTask handles POST /api/daily-tasks.
func (h *TrackingHandler) CreateTask(c *fiber.Ctx) error {
	var req dto.CreateDailyTaskRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	task, err := h.trackingService.CreateTask(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

// UpdateTask handles PUT /api/daily-tasks?id=. Completing a task advances
// the owner's streak.
func (h *TrackingHandler) UpdateTask(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	var req dto.UpdateDailyTaskRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	task, err := h.trackingService.UpdateTask(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(task)
}

// DeleteTask handles DELETE /api/daily-tasks?id=.
func (h *TrackingHandler) DeleteTask(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	if err := h.trackingService.DeleteTask(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{Message: "task deleted"})
}
