package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
	"templify/internal/models/request_models"
	"templify/internal/services"
	"templify/pkg/utils"
)

type CategoryController struct {
	catalogService services.CatalogServiceInterface
}

func NewCategoryController(catalogService services.CatalogServiceInterface) *CategoryController {
	return &CategoryController{
		catalogService: catalogService,
	}
}

func (cc *CategoryController) ListCategories(c *gin.Context) {
	categories, err := cc.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var request request_models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category payload")
		return
	}

	category, err := cc.catalogService.CreateCategory(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, category, "Category created successfully")
}

func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var request request_models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category payload")
		return
	}

	category, err := cc.catalogService.UpdateCategory(c.Request.Context(), id, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, category, "Category updated successfully")
}

func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	if err := cc.catalogService.DeleteCategory(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Category deleted successfully")
}
