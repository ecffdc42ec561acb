package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers the URL shortener routes.
func RegisterRoutes(api huma.API, urlHandler *URLHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "shorten-url",
		Method:        http.MethodPost,
		Path:          "/api/shorten",
		Summary:       "Create short URL",
		Description:   "Validates the URL and stores it under a newly generated short code.",
		Tags:          []string{"URLs"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, urlHandler.Shorten)

	huma.Register(api, huma.Operation{
		OperationID: "get-url-stats",
		Method:      http.MethodGet,
		Path:        "/api/stats/{code}",
		Summary:     "Get short URL statistics",
		Description: "Returns the original URL, click count and creation time of a short code.",
		Tags:        []string{"URLs"},
		Errors:      []int{http.StatusNotFound},
	}, urlHandler.Stats)

	huma.Register(api, huma.Operation{
		OperationID: "redirect",
		Method:      http.MethodGet,
		Path:        "/{code}",
		Summary:     "Redirect to original URL",
		Description: "Redirects to the original URL associated with the short code and counts the click.",
		Tags:        []string{"URLs"},
		Errors:      []int{http.StatusNotFound},
	}, urlHandler.Redirect)
}
