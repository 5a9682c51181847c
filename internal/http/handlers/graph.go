package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/orggraph-backend/internal/graph"
	"github.com/yungbote/orggraph-backend/internal/http/response"
	"github.com/yungbote/orggraph-backend/internal/platform/apierr"
	"github.com/yungbote/orggraph-backend/internal/platform/logger"
	"github.com/yungbote/orggraph-backend/internal/services"
)

type GraphHandler struct {
	graphs services.GraphService
	log    *logger.Logger
}

func NewGraphHandler(graphs services.GraphService, baseLog *logger.Logger) *GraphHandler {
	return &GraphHandler{graphs: graphs, log: baseLog.With("handler", "GraphHandler")}
}

type subgraphRequest struct {
	Centers       []string `json:"centers"`
	Degrees       *int     `json:"degrees" binding:"omitempty,min=0,max=10"`
	MaxNodes      *int     `json:"max_nodes" binding:"omitempty,min=0"`
	MaxEdges      *int     `json:"max_edges" binding:"omitempty,min=0"`
	IncludeCollab *bool    `json:"include_collab"`
	Mode          string   `json:"mode"`
}

func (r subgraphRequest) toService() services.SubgraphRequest {
	return services.SubgraphRequest{
		Centers:       r.Centers,
		Degrees:       r.Degrees,
		MaxNodes:      r.MaxNodes,
		MaxEdges:      r.MaxEdges,
		IncludeCollab: r.IncludeCollab,
		Mode:          r.Mode,
	}
}

// GET /api/graph/network
func (h *GraphHandler) Network(c *gin.Context) {
	res, err := h.graphs.Network(c.Request.Context())
	if err != nil {
		h.respondErr(c, err)
		return
	}
	response.RespondOK(c, res)
}

// POST /api/graph/subgraph
func (h *GraphHandler) Subgraph(c *gin.Context) {
	var req subgraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondErr(c, apierr.BadRequest("invalid_request", err))
		return
	}
	res, err := h.graphs.Subgraph(c.Request.Context(), req.toService())
	if err != nil {
		h.respondErr(c, err)
		return
	}
	response.RespondOK(c, res)
}

// GET /api/graph/ego/:node_id?max_neighbors=
func (h *GraphHandler) Ego(c *gin.Context) {
	maxNeighbors := 0
	if raw := strings.TrimSpace(c.Query("max_neighbors")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.respondErr(c, apierr.BadRequest("invalid_request", errors.New("max_neighbors must be a non-negative integer")))
			return
		}
		maxNeighbors = n
	}
	res, err := h.graphs.Ego(c.Request.Context(), c.Param("node_id"), maxNeighbors)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	response.RespondOK(c, res)
}

// POST /api/graph/prompt-context
func (h *GraphHandler) PromptContext(c *gin.Context) {
	var req subgraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondErr(c, apierr.BadRequest("invalid_request", err))
		return
	}
	res, err := h.graphs.PromptContext(c.Request.Context(), req.toService())
	if err != nil {
		h.respondErr(c, err)
		return
	}
	response.RespondOK(c, res)
}

func (h *GraphHandler) respondErr(c *gin.Context, err error) {
	ae := classify(err)
	if ae.Status >= http.StatusInternalServerError {
		_ = c.Error(err)
		h.log.Warn("graph request failed", "code", ae.Code, "error", err)
	}
	response.RespondError(c, ae.Status, ae.Code, ae.Err)
}

func classify(err error) *apierr.Error {
	var ae *apierr.Error
	switch {
	case errors.As(err, &ae):
		return ae
	case errors.Is(err, graph.ErrInvalidIDFormat):
		return apierr.BadRequest("invalid_node_id", err)
	case errors.Is(err, graph.ErrStoreUnavailable):
		// The cause can name tables and hosts.
		return apierr.Unavailable("store_unavailable", graph.ErrStoreUnavailable)
	default:
		return apierr.Internal("graph_build_failed", err)
	}
}
