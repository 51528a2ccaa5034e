package handler

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/studrev/internal/domain/port/core"
	"github.com/amirhossein-jamali/studrev/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/studrev/internal/infrastructure/adapter/api/dto"
)

// IndexTemplateName is the name the pool overview page is registered under
const IndexTemplateName = "index.html"

// IndexTemplate renders the whole pool as one table
var IndexTemplate = template.Must(template.New(IndexTemplateName).Parse(`<html><head><title>Stud.Rev</title>
<style>
body{font-family:sans-serif;margin:20px;}
table{border-collapse:collapse;width:100%;}
th,td{border:1px solid #ccc;padding:5px;text-align:left;}
th{background:#eee;}
tr:nth-child(even){background:#f9f9f9;}
</style>
</head><body>
<h1>Stud.Rev {{len .Pool}} Transactions</h1>
<table>
<tr><th>ID</th><th>Description</th><th>Account</th><th>Type</th><th>Difficulty</th><th>Explanation (EN)</th><th>Explanation (TL)</th></tr>
{{range .Pool}}<tr>
<td>{{.ID}}</td>
<td>{{.Description}}</td>
<td>{{.Account}}</td>
<td>{{.AccountType}}</td>
<td>{{.Difficulty}}</td>
<td>{{.ExplanationPrimary}}</td>
<td>{{.ExplanationSecondary}}</td>
</tr>
{{end}}</table>
</body></html>
`))

// PoolHandler serves the generated question pool
type PoolHandler struct {
	poolUseCase usecase.PoolUseCase
	logger      coreport.Logger
}

// NewPoolHandler creates a new pool handler instance
func NewPoolHandler(poolUseCase usecase.PoolUseCase, logger coreport.Logger) *PoolHandler {
	return &PoolHandler{
		poolUseCase: poolUseCase,
		logger:      logger,
	}
}

// GetPool handles GET /api/pool
func (h *PoolHandler) GetPool(c *gin.Context) {
	pool, err := h.poolUseCase.GetPool(c.Request.Context())
	if err != nil {
		h.poolError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PoolResponse{Pool: pool})
}

// GetSets handles GET /api/sets
func (h *PoolHandler) GetSets(c *gin.Context) {
	set, err := h.poolUseCase.GetQuestionSet(c.Request.Context())
	if err != nil {
		h.poolError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSetsResponse(set))
}

// Index handles GET / with an HTML overview of the pool.
// The engine must have IndexTemplate registered.
func (h *PoolHandler) Index(c *gin.Context) {
	pool, err := h.poolUseCase.GetPool(c.Request.Context())
	if err != nil {
		h.logger.Error("Error rendering pool overview", map[string]any{
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, msgPoolUnavailable)
		return
	}

	c.HTML(http.StatusOK, IndexTemplateName, gin.H{"Pool": pool})
}

func (h *PoolHandler) poolError(c *gin.Context, err error) {
	h.logger.Error("Error loading question pool", map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})
	_ = c.Error(err)
	fail(c, http.StatusInternalServerError, msgPoolUnavailable, err)
}
