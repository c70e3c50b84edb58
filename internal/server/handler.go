package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/blackwell-systems/codecommenter/internal/analyzer"
	"github.com/blackwell-systems/codecommenter/internal/examples"
	"github.com/blackwell-systems/codecommenter/internal/lang"
	"github.com/blackwell-systems/codecommenter/internal/server/middleware"
	"github.com/blackwell-systems/codecommenter/internal/server/respond"
	"github.com/blackwell-systems/codecommenter/internal/suggest"
)

// statusClientClosedRequest is logged when the client goes away before the
// analysis completes. Nothing is written to the dead connection.
const statusClientClosedRequest = 499

// AnalyzeRequest is the body of POST /api/v1/analyze.
type AnalyzeRequest struct {
	Code      string `json:"code"`
	Numbering string `json:"numbering,omitempty"`
	Language  string `json:"language,omitempty"`
}

// AnalyzeResponse is the body of a successful analysis.
type AnalyzeResponse struct {
	ID          string               `json:"id"`
	Language    string               `json:"language"`
	Comments    string               `json:"comments"`
	Suggestions string               `json:"suggestions"`
	Items       []suggest.Suggestion `json:"items"`
}

// LanguageEntry is one element of GET /api/v1/languages.
type LanguageEntry struct {
	Name          string `json:"name"`
	CommentLeader string `json:"comment_leader"`
}

// Handler wires HTTP handlers to the analyzer.
type Handler struct {
	analyzer     *analyzer.Analyzer
	maxBodyBytes int64
}

// NewHandler constructs a Handler. A non-positive maxBodyBytes disables the
// body limit.
func NewHandler(a *analyzer.Analyzer, maxBodyBytes int64) *Handler {
	return &Handler{analyzer: a, maxBodyBytes: maxBodyBytes}
}

// RegisterRoutes attaches the API routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyze", h.analyze)
	rg.GET("/languages", h.languages)
	rg.GET("/examples", h.listExamples)
	rg.GET("/examples/:name", h.getExample)
}

func (h *Handler) analyze(c *gin.Context) {
	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, respond.CodeTooLarge, "request body too large")
			return
		}
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "request body must be a JSON object")
		return
	}
	if err := analyzer.CheckInput(req.Code); err != nil {
		respond.Error(c, http.StatusBadRequest, respond.CodeValidation, "Please enter some code to analyze.")
		return
	}

	var opts []analyzer.Option
	if req.Numbering != "" {
		n, err := suggest.ParseNumbering(req.Numbering)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, err.Error())
			return
		}
		opts = append(opts, analyzer.WithNumbering(n))
	}
	if req.Language != "" {
		l, err := lang.ParseLabel(req.Language)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, respond.CodeValidation, err.Error())
			return
		}
		opts = append(opts, analyzer.WithLanguage(l))
	}

	res, err := h.analyzer.Analyze(c.Request.Context(), req.Code, opts...)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			c.AbortWithStatus(statusClientClosedRequest)
			return
		}
		respond.Error(c, http.StatusServiceUnavailable, respond.CodeAnalysisFailed,
			"There was an error analyzing your code. Please try again.")
		return
	}

	c.Set(middleware.LanguageKey, res.Language.String())
	respond.OK(c, AnalyzeResponse{
		ID:          uuid.NewString(),
		Language:    res.Language.String(),
		Comments:    res.Comments,
		Suggestions: res.Suggestions,
		Items:       res.Items,
	})
}

func (h *Handler) languages(c *gin.Context) {
	labels := lang.Labels()
	out := make([]LanguageEntry, 0, len(labels))
	for _, l := range labels {
		out = append(out, LanguageEntry{Name: l.String(), CommentLeader: l.CommentLeader()})
	}
	respond.OK(c, gin.H{"languages": out})
}

func (h *Handler) listExamples(c *gin.Context) {
	respond.OK(c, gin.H{"examples": examples.All()})
}

func (h *Handler) getExample(c *gin.Context) {
	e, err := examples.Get(c.Param("name"))
	if err != nil {
		respond.Error(c, http.StatusNotFound, respond.CodeNotFound, err.Error())
		return
	}
	respond.OK(c, e)
}
