// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/roi-survey/middleware"
	"github.com/danielhkuo/roi-survey/models"
	"github.com/danielhkuo/roi-survey/schema"
)

type SchemaHandler struct {
	schema *schema.Schema
}

func NewSchemaHandler(s *schema.Schema) *SchemaHandler {
	return &SchemaHandler{schema: s}
}

// GetSchema handles GET /schema
func (h *SchemaHandler) GetSchema(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.SchemaResponse{
		Sections: h.schema.Sections(),
	})
}
