package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"net/http"
	"strconv"
	"templify/internal/models/request_models"
	"templify/internal/services"
	"templify/pkg/utils"
)

const maxPreviewImages = 5

type TemplateController struct {
	catalogService services.CatalogServiceInterface
	uploadService  services.UploadServiceInterface
}

func NewTemplateController(
	catalogService services.CatalogServiceInterface,
	uploadService services.UploadServiceInterface,
) *TemplateController {
	return &TemplateController{
		catalogService: catalogService,
		uploadService:  uploadService,
	}
}

func (t *TemplateController) ListTemplates(c *gin.Context) {
	var params request_models.CatalogQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid filter parameters")
		return
	}

	templates, err := t.catalogService.ListTemplates(c.Request.Context(), params)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, templates, "Templates fetched successfully")
}

func (t *TemplateController) FeaturedTemplates(c *gin.Context) {
	templates, err := t.catalogService.FeaturedTemplates(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, templates, "Featured templates fetched successfully")
}

func (t *TemplateController) BestSellingTemplates(c *gin.Context) {
	templates, err := t.catalogService.BestSellingTemplates(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, templates, "Best selling templates fetched successfully")
}

func (t *TemplateController) LatestTemplates(c *gin.Context) {
	templates, err := t.catalogService.LatestTemplates(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, templates, "Latest templates fetched successfully")
}

func (t *TemplateController) TrendingTemplates(c *gin.Context) {
	templates, err := t.catalogService.TrendingTemplates(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, templates, "Trending templates fetched successfully")
}

func (t *TemplateController) DiscountTemplates(c *gin.Context) {
	templates, err := t.catalogService.DiscountTemplates(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, templates, "Discount templates fetched successfully")
}

func (t *TemplateController) FavoriteTemplates(c *gin.Context) {
	templates, err := t.catalogService.FavoriteTemplates(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, templates, "Customer favorites fetched successfully")
}

func (t *TemplateController) TemplatesByCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("categoryId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid category ID")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if err != nil || limit < 1 || limit > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-100)")
		return
	}

	templates, err := t.catalogService.TemplatesByCategory(c.Request.Context(), categoryID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, templates, "Templates fetched successfully")
}

func (t *TemplateController) GetTemplateByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid template ID")
		return
	}

	template, err := t.catalogService.GetTemplateByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, template, "Template fetched successfully")
}

func (t *TemplateController) GetTemplateBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		utils.RespondError(c, http.StatusBadRequest, "Template slug is required")
		return
	}

	template, err := t.catalogService.GetTemplateBySlug(c.Request.Context(), slug)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, template, "Template fetched successfully")
}

func (t *TemplateController) MyTemplates(c *gin.Context) {
	authorID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	templates, err := t.catalogService.ListAuthorTemplates(c.Request.Context(), authorID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, templates, "Templates fetched successfully")
}

// CreateTemplate accepts a multipart form carrying the metadata fields, one
// templateFile archive and up to five previewImages.
func (t *TemplateController) CreateTemplate(c *gin.Context) {
	authorID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return
	}

	var request request_models.CreateTemplateRequest
	if err := c.ShouldBind(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid template payload")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid form data")
		return
	}

	archives := form.File["templateFile"]
	if len(archives) != 1 {
		utils.RespondError(c, http.StatusBadRequest, "Template file is required")
		return
	}
	previews := form.File["previewImages"]
	if len(previews) > maxPreviewImages {
		utils.RespondError(c, http.StatusBadRequest, "At most 5 preview images are allowed")
		return
	}

	archive, err := t.uploadService.UploadTemplateArchive(c.Request.Context(), archives[0])
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	previewURLs, err := t.uploadService.UploadPreviewImages(c.Request.Context(), previews)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	template, err := t.catalogService.CreateTemplate(c.Request.Context(), authorID, request, services.TemplateUpload{
		DownloadURL:   archive.URL,
		PreviewImages: previewURLs,
		FileSize:      utils.FormatFileSize(archive.Size),
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, template, "Template created successfully")
}

func (t *TemplateController) UpdateTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid template ID")
		return
	}

	var request request_models.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid template payload")
		return
	}

	template, err := t.catalogService.UpdateTemplate(c.Request.Context(), id, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, template, "Template updated successfully")
}

func (t *TemplateController) DeleteTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid template ID")
		return
	}

	if err := t.catalogService.DeleteTemplate(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Template deleted successfully")
}
