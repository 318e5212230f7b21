package mockapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/admod/pkg/liststate"
	"github.com/yourusername/admod/pkg/moderation"
)

// Server serves the moderation API over a Store.
//
// Server 基于 Store 提供审核API。
type Server struct {
	store *Store
}

// NewServer creates a mock server over the given store.
func NewServer(store *Store) *Server {
	return &Server{store: store}
}

// Handler builds the gin engine with every endpoint registered. The
// returned handler is also usable directly with httptest.
//
// Handler 构建注册了所有端点的gin引擎。返回的处理器也可直接用于 httptest。
func (s *Server) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/ads", s.listAds)
	router.GET("/ads/:id", s.getAd)
	router.POST("/ads/:id/approve", s.approveAd)
	router.POST("/ads/:id/reject", s.rejectAd)
	router.POST("/ads/:id/request-changes", s.requestChanges)

	router.GET("/stats/summary", s.statsSummary)
	router.GET("/stats/chart/activity", s.statsActivity)
	router.GET("/stats/chart/decisions", s.statsDecisions)
	router.GET("/stats/chart/categories", s.statsCategories)

	router.GET("/moderators/me", s.moderatorMe)

	return router
}

func (s *Server) listAds(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}

	params := liststate.ParseParams(c.Request.URL.Query())
	c.JSON(http.StatusOK, s.store.List(page, limit, params))
}

func (s *Server) getAd(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ad, found := s.store.Get(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Объявление не найдено"})
		return
	}
	c.JSON(http.StatusOK, ad)
}

func (s *Server) approveAd(c *gin.Context) {
	s.applyAction(c, moderation.ActionApprove, moderation.Decision{})
}

func (s *Server) rejectAd(c *gin.Context) {
	decision, ok := bindDecision(c)
	if !ok {
		return
	}
	s.applyAction(c, moderation.ActionReject, decision)
}

func (s *Server) requestChanges(c *gin.Context) {
	decision, ok := bindDecision(c)
	if !ok {
		return
	}
	s.applyAction(c, moderation.ActionRequestChanges, decision)
}

func (s *Server) applyAction(c *gin.Context, action moderation.Action, decision moderation.Decision) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	result, found := s.store.Apply(id, action, decision)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Объявление не найдено"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) statsSummary(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Summary())
}

func (s *Server) statsActivity(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Activity())
}

func (s *Server) statsDecisions(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Decisions())
}

func (s *Server) statsCategories(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Categories())
}

func (s *Server) moderatorMe(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Moderator())
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный идентификатор"})
		return 0, false
	}
	return id, true
}

func bindDecision(c *gin.Context) (moderation.Decision, bool) {
	var decision moderation.Decision
	if err := c.ShouldBindJSON(&decision); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное тело запроса"})
		return moderation.Decision{}, false
	}
	if err := decision.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return moderation.Decision{}, false
	}
	return decision, true
}
