package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/talentreach/outreach-backend-go/internal/domain/company"
	"github.com/talentreach/outreach-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// List implements CompanyHandler.
func (c *CompanyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	companies, err := c.companyService.List(r.Context())
	if err != nil {
		slog.Error("Company list service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, companies)
}

// Create implements CompanyHandler.
func (c *CompanyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq company.CreateCompanyRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create company decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create company validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := c.companyService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create company service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Company created successfully")
	response.Created(w, created)
}
