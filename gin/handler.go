package gin

import (
	"net/http"

	"github.com/fwojciec/shopsight"
	"github.com/gin-gonic/gin"
)

// ExtractRequest is the body of POST /extract-insights. Section toggles
// default to enabled when omitted; MaxProducts defaults to
// shopsight.DefaultMaxProducts.
type ExtractRequest struct {
	URL             string `json:"url" binding:"required"`
	IncludeProducts *bool  `json:"includeProducts"`
	IncludePolicies *bool  `json:"includePolicies"`
	IncludeFAQs     *bool  `json:"includeFaqs"`
	IncludeSocial   *bool  `json:"includeSocial"`
	IncludeContact  *bool  `json:"includeContact"`
	// omitnil rather than omitempty: an explicit zero must fail min=1 at
	// the binding layer instead of slipping through to the core.
	MaxProducts *int `json:"maxProducts" binding:"omitnil,min=1,max=1000"`
}

// options maps the request onto ExtractOptions, applying defaults for
// omitted fields.
func (r ExtractRequest) options() shopsight.ExtractOptions {
	opts := shopsight.DefaultExtractOptions()
	if r.IncludeProducts != nil {
		opts.IncludeProducts = *r.IncludeProducts
	}
	if r.IncludePolicies != nil {
		opts.IncludePolicies = *r.IncludePolicies
	}
	if r.IncludeFAQs != nil {
		opts.IncludeFAQs = *r.IncludeFAQs
	}
	if r.IncludeSocial != nil {
		opts.IncludeSocial = *r.IncludeSocial
	}
	if r.IncludeContact != nil {
		opts.IncludeContact = *r.IncludeContact
	}
	if r.MaxProducts != nil {
		opts.MaxProducts = *r.MaxProducts
	}
	return opts
}

func (s *Server) handleExtractInsights(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   shopsight.EINVALID,
			"message": "Invalid request body.",
			"details": gin.H{"binding": err.Error()},
		})
		return
	}

	profile, err := s.Profiles.Extract(c.Request.Context(), req.URL, req.options())
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successfully extracted insights from store",
		"data":    profile,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	llmStatus := "not_configured"
	if s.LLMConfigured {
		llmStatus = "healthy"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": s.Version,
		"services": gin.H{
			"store_detector":    "healthy",
			"content_parser":    "healthy",
			"profile_extractor": "healthy",
			"llm_processor":     llmStatus,
		},
	})
}

func (s *Server) handleRoot(prefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "shopsight",
			"version":     s.Version,
			"description": "Shopify store insight extraction API",
			"endpoints": gin.H{
				"extract_insights": prefix + "/extract-insights",
				"health":           prefix + "/health",
			},
		})
	}
}

// codeStatus maps application error codes onto HTTP status codes; codes
// without an entry render as 500.
var codeStatus = map[string]int{
	shopsight.EINVALID:     http.StatusUnprocessableEntity,
	shopsight.EUNAVAILABLE: http.StatusBadGateway,
	shopsight.ENOTFOUND:    http.StatusNotFound,
}

func (s *Server) renderError(c *gin.Context, err error) {
	code := shopsight.ErrorCode(err)
	status, ok := codeStatus[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	if s.Logger != nil && status >= http.StatusInternalServerError {
		s.Logger.Error("extraction failed", "err", err)
	}

	body := gin.H{
		"error":   code,
		"message": shopsight.ErrorMessage(err),
	}
	if details := shopsight.ErrorDetails(err); details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}
