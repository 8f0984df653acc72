package handler

import (
	"errors"
	"net/http"
	"strconv"

	"datecourse/internal/auth"
	"datecourse/internal/course"
	"datecourse/internal/model"
	"datecourse/internal/repository"
	"datecourse/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler wires services to HTTP routes.
type Handler struct {
	UserService   *service.UserService
	PlaceService  *service.PlaceService
	CourseService *service.CourseService
	log           *zap.Logger
}

// NewHandler creates a Handler with its service dependencies.
func NewHandler(us *service.UserService, ps *service.PlaceService, cs *service.CourseService, log *zap.Logger) *Handler {
	return &Handler{
		UserService:   us,
		PlaceService:  ps,
		CourseService: cs,
		log:           log,
	}
}

// Routes registers every endpoint on r.
func (h *Handler) Routes(r *gin.Engine, tokens *auth.Tokens) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/places", h.ListPlaces)
		api.GET("/places/:id", h.GetPlace)

		secured := api.Group("")
		secured.Use(JWTAuth(tokens))
		secured.GET("/me", h.Me)
		secured.GET("/courses", h.ListCourses)
		secured.GET("/courses/:id", h.GetCourse)
		secured.PUT("/courses/:id", h.SaveCourse)
		secured.POST("/courses/:id/validate", h.ValidateCourse)
		secured.GET("/courses/:id/history", h.CourseHistory)
		secured.POST("/courses/:id/suggestions", h.CourseSuggestions)
	}
}

// ListPlaces handles GET /api/places?category=&tag=&q=&limit=
func (h *Handler) ListPlaces(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	places, err := h.PlaceService.Search(c, repository.PlaceFilter{
		Category: c.Query("category"),
		Tag:      c.Query("tag"),
		Keyword:  c.Query("q"),
		Limit:    limit,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, places)
}

// GetPlace handles GET /api/places/:id
func (h *Handler) GetPlace(c *gin.Context) {
	p, err := h.PlaceService.Get(c, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Me handles GET /api/me
func (h *Handler) Me(c *gin.Context) {
	u, err := h.UserService.GetByID(c, userID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// ListCourses handles GET /api/courses
func (h *Handler) ListCourses(c *gin.Context) {
	courses, err := h.CourseService.ListByUser(c, userID(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetCourse handles GET /api/courses/:id
func (h *Handler) GetCourse(c *gin.Context) {
	found, err := h.CourseService.Get(c, userID(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// SaveCourse handles PUT /api/courses/:id.
// Places are taken in payload order; order_index values are renumbered.
func (h *Handler) SaveCourse(c *gin.Context) {
	var in model.Course
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.CourseService.SaveEdit(c, userID(c), c.Param("id"), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ValidateCourse handles POST /api/courses/:id/validate. The caller must own
// the course; the payload is checked without being saved.
func (h *Handler) ValidateCourse(c *gin.Context) {
	var in model.Course
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.CourseService.Get(c, userID(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.CourseService.Check(in))
}

// CourseHistory handles GET /api/courses/:id/history
func (h *Handler) CourseHistory(c *gin.Context) {
	records, err := h.CourseService.History(c, userID(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// CourseSuggestions handles POST /api/courses/:id/suggestions
func (h *Handler) CourseSuggestions(c *gin.Context) {
	var cons course.Constraints
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&cons); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	tips, err := h.CourseService.Suggestions(c, userID(c), c.Param("id"), cons)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": tips})
}

func (h *Handler) fail(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"is_valid": false, "errors": verr.Errors})
	case errors.Is(err, service.ErrDuplicatePlace),
		errors.Is(err, service.ErrInvalidPlace):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrCourseNotFound),
		errors.Is(err, service.ErrPlaceNotFound),
		errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
