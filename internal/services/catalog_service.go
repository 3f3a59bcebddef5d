package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"templify/internal/models/db_models"
	"templify/internal/models/request_models"
	"templify/internal/models/response_models"
	"templify/internal/repositories"
	"templify/pkg/utils"
)

// Curated category-scoped lists default to six rows, like the storefront
// home page sections.
const curatedListLimit = 6

type CatalogServiceInterface interface {
	ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error)
	CreateCategory(ctx context.Context, request request_models.CreateCategoryRequest) (*response_models.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, request request_models.UpdateCategoryRequest) (*response_models.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	ListTemplates(ctx context.Context, params request_models.CatalogQueryParams) ([]response_models.TemplateResponse, error)
	FeaturedTemplates(ctx context.Context) ([]response_models.TemplateResponse, error)
	BestSellingTemplates(ctx context.Context) ([]response_models.TemplateResponse, error)
	LatestTemplates(ctx context.Context) ([]response_models.TemplateResponse, error)
	TrendingTemplates(ctx context.Context) ([]response_models.TemplateResponse, error)
	DiscountTemplates(ctx context.Context) ([]response_models.TemplateResponse, error)
	FavoriteTemplates(ctx context.Context) ([]response_models.TemplateResponse, error)
	TemplatesByCategory(ctx context.Context, categoryID uuid.UUID, limit int) ([]response_models.TemplateResponse, error)

	GetTemplateByID(ctx context.Context, id uuid.UUID) (*response_models.TemplateResponse, error)
	GetTemplateBySlug(ctx context.Context, slug string) (*response_models.TemplateResponse, error)
	ListAuthorTemplates(ctx context.Context, authorID uuid.UUID) ([]response_models.TemplateResponse, error)

	CreateTemplate(ctx context.Context, authorID uuid.UUID, request request_models.CreateTemplateRequest, upload TemplateUpload) (*response_models.TemplateResponse, error)
	UpdateTemplate(ctx context.Context, id uuid.UUID, request request_models.UpdateTemplateRequest) (*response_models.TemplateResponse, error)
	DeleteTemplate(ctx context.Context, id uuid.UUID) error
}

// TemplateUpload carries the already-stored artifact locations for a new
// template.
type TemplateUpload struct {
	DownloadURL   string
	PreviewImages []string
	FileSize      string
}

type CatalogService struct {
	templateRepo repositories.TemplateRepository
	categoryRepo repositories.CategoryRepository
}

func NewCatalogService(templateRepo repositories.TemplateRepository, categoryRepo repositories.CategoryRepository) CatalogServiceInterface {
	return &CatalogService{
		templateRepo: templateRepo,
		categoryRepo: categoryRepo,
	}
}

// ParseCatalogSort maps the raw sortBy parameter onto the closed sort enum.
// Empty means "newest" (the default ordering); anything unrecognized is
// rejected rather than passed through.
func ParseCatalogSort(raw string) (repositories.CatalogSort, error) {
	switch raw {
	case "":
		return repositories.SortNewest, nil
	case string(repositories.SortPriceAsc),
		string(repositories.SortPriceDesc),
		string(repositories.SortNewest),
		string(repositories.SortPopular),
		string(repositories.SortRating):
		return repositories.CatalogSort(raw), nil
	default:
		return "", utils.ErrInvalidSort
	}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]response_models.CategoryResponse, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		log.Printf("list categories: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, toCategoryResponse(category))
	}
	return responses, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, request request_models.CreateCategoryRequest) (*response_models.CategoryResponse, error) {
	category := &db_models.Category{
		Name:        request.Name,
		Slug:        request.Slug,
		Icon:        request.Icon,
		Description: request.Description,
	}
	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		log.Printf("create category: %v", err)
		return nil, utils.ErrDatabaseError
	}
	response := toCategoryResponse(*category)
	return &response, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id uuid.UUID, request request_models.UpdateCategoryRequest) (*response_models.CategoryResponse, error) {
	category, err := s.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}

	if request.Name != nil {
		category.Name = *request.Name
	}
	if request.Slug != nil {
		category.Slug = *request.Slug
	}
	if request.Icon != nil {
		category.Icon = *request.Icon
	}
	if request.Description != nil {
		category.Description = *request.Description
	}

	if err := s.categoryRepo.UpdateCategory(ctx, category); err != nil {
		log.Printf("update category %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	response := toCategoryResponse(*category)
	return &response, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := s.categoryRepo.DeleteCategory(ctx, id); err != nil {
		log.Printf("delete category %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *CatalogService) ListTemplates(ctx context.Context, params request_models.CatalogQueryParams) ([]response_models.TemplateResponse, error) {
	query := repositories.CatalogQuery{Search: params.Search}

	if params.CategoryID != "" {
		categoryID, err := uuid.Parse(params.CategoryID)
		if err != nil {
			// Unknown category ids yield an empty result set, not an error.
			return []response_models.TemplateResponse{}, nil
		}
		query.CategoryID = &categoryID
	}

	if params.MinPrice != "" {
		min, err := utils.ParsePrice(params.MinPrice)
		if err != nil {
			return nil, err
		}
		query.MinPrice = &min
	}
	if params.MaxPrice != "" {
		max, err := utils.ParsePrice(params.MaxPrice)
		if err != nil {
			return nil, err
		}
		query.MaxPrice = &max
	}

	sort, err := ParseCatalogSort(params.SortBy)
	if err != nil {
		return nil, err
	}
	query.Sort = sort

	return s.runCatalogQuery(ctx, query)
}

func (s *CatalogService) FeaturedTemplates(ctx context.Context) ([]response_models.TemplateResponse, error) {
	return s.runCatalogQuery(ctx, repositories.CatalogQuery{
		FeaturedOnly: true,
		Sort:         repositories.SortNewest,
		Limit:        curatedListLimit,
	})
}

func (s *CatalogService) BestSellingTemplates(ctx context.Context) ([]response_models.TemplateResponse, error) {
	return s.runCatalogQuery(ctx, repositories.CatalogQuery{
		Sort:  repositories.SortPopular,
		Limit: curatedListLimit,
	})
}

func (s *CatalogService) LatestTemplates(ctx context.Context) ([]response_models.TemplateResponse, error) {
	return s.runCatalogQuery(ctx, repositories.CatalogQuery{
		Sort:  repositories.SortNewest,
		Limit: curatedListLimit,
	})
}

func (s *CatalogService) TrendingTemplates(ctx context.Context) ([]response_models.TemplateResponse, error) {
	return s.runCatalogQuery(ctx, repositories.CatalogQuery{
		Sort:  repositories.SortPopular,
		Limit: curatedListLimit,
	})
}

func (s *CatalogService) DiscountTemplates(ctx context.Context) ([]response_models.TemplateResponse, error) {
	return s.runCatalogQuery(ctx, repositories.CatalogQuery{
		Sort:  repositories.SortPriceAsc,
		Limit: curatedListLimit,
	})
}

func (s *CatalogService) FavoriteTemplates(ctx context.Context) ([]response_models.TemplateResponse, error) {
	return s.runCatalogQuery(ctx, repositories.CatalogQuery{
		Sort:  repositories.SortRating,
		Limit: curatedListLimit,
	})
}

func (s *CatalogService) TemplatesByCategory(ctx context.Context, categoryID uuid.UUID, limit int) ([]response_models.TemplateResponse, error) {
	if limit <= 0 {
		limit = curatedListLimit
	}
	return s.runCatalogQuery(ctx, repositories.CatalogQuery{
		CategoryID: &categoryID,
		Sort:       repositories.SortNewest,
		Limit:      limit,
	})
}

func (s *CatalogService) GetTemplateByID(ctx context.Context, id uuid.UUID) (*response_models.TemplateResponse, error) {
	row, err := s.templateRepo.GetTemplateByID(ctx, id)
	if err != nil {
		log.Printf("get template %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, utils.ErrTemplateNotFound
	}
	return s.enrichTemplate(ctx, *row)
}

func (s *CatalogService) GetTemplateBySlug(ctx context.Context, slug string) (*response_models.TemplateResponse, error) {
	row, err := s.templateRepo.GetTemplateBySlug(ctx, slug)
	if err != nil {
		log.Printf("get template by slug %q: %v", slug, err)
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, utils.ErrTemplateNotFound
	}
	return s.enrichTemplate(ctx, *row)
}

func (s *CatalogService) ListAuthorTemplates(ctx context.Context, authorID uuid.UUID) ([]response_models.TemplateResponse, error) {
	templates, err := s.templateRepo.ListTemplatesByAuthor(ctx, authorID)
	if err != nil {
		log.Printf("list author templates: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.TemplateResponse, 0, len(templates))
	for _, template := range templates {
		responses = append(responses, toTemplateResponse(repositories.TemplateWithStats{Template: template}, nil))
	}
	return responses, nil
}

func (s *CatalogService) CreateTemplate(ctx context.Context, authorID uuid.UUID, request request_models.CreateTemplateRequest, upload TemplateUpload) (*response_models.TemplateResponse, error) {
	price, err := utils.ParsePrice(request.Price)
	if err != nil {
		return nil, err
	}

	var categoryID *uuid.UUID
	if request.CategoryID != "" {
		parsed, err := uuid.Parse(request.CategoryID)
		if err != nil {
			return nil, utils.ErrCategoryNotFound
		}
		category, err := s.categoryRepo.GetCategoryByID(ctx, parsed)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if category == nil {
			return nil, utils.ErrCategoryNotFound
		}
		categoryID = &parsed
	}

	var tags []string
	if request.Tags != "" {
		if err := json.Unmarshal([]byte(request.Tags), &tags); err != nil {
			return nil, utils.ErrInvalidUpload
		}
	}

	template := &db_models.Template{
		Name:             request.Name,
		Slug:             request.Slug,
		Description:      request.Description,
		ShortDescription: request.ShortDescription,
		Price:            price,
		CategoryID:       categoryID,
		AuthorID:         authorID,
		PreviewImages:    datatypes.NewJSONSlice(upload.PreviewImages),
		Tags:             datatypes.NewJSONSlice(tags),
		DemoURL:          request.DemoURL,
		DownloadURL:      upload.DownloadURL,
		FileSize:         upload.FileSize,
		IsActive:         true,
		IsFeatured:       request.IsFeatured,
	}

	if err := s.templateRepo.CreateTemplate(ctx, template); err != nil {
		log.Printf("create template: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return s.enrichTemplate(ctx, repositories.TemplateWithStats{Template: *template})
}

func (s *CatalogService) UpdateTemplate(ctx context.Context, id uuid.UUID, request request_models.UpdateTemplateRequest) (*response_models.TemplateResponse, error) {
	row, err := s.templateRepo.GetTemplateByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, utils.ErrTemplateNotFound
	}
	template := row.Template

	if request.Name != nil {
		template.Name = *request.Name
	}
	if request.Description != nil {
		template.Description = *request.Description
	}
	if request.ShortDescription != nil {
		template.ShortDescription = *request.ShortDescription
	}
	if request.Price != nil {
		price, err := utils.ParsePrice(*request.Price)
		if err != nil {
			return nil, err
		}
		template.Price = price
	}
	if request.CategoryID != nil {
		parsed, err := uuid.Parse(*request.CategoryID)
		if err != nil {
			return nil, utils.ErrCategoryNotFound
		}
		template.CategoryID = &parsed
	}
	if request.Tags != nil {
		template.Tags = datatypes.NewJSONSlice(request.Tags)
	}
	if request.DemoURL != nil {
		template.DemoURL = *request.DemoURL
	}
	if request.IsActive != nil {
		template.IsActive = *request.IsActive
	}
	if request.IsFeatured != nil {
		template.IsFeatured = *request.IsFeatured
	}

	if err := s.templateRepo.UpdateTemplate(ctx, &template); err != nil {
		log.Printf("update template %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}

	return s.enrichTemplate(ctx, repositories.TemplateWithStats{
		Template:    template,
		AvgRating:   row.AvgRating,
		ReviewCount: row.ReviewCount,
	})
}

func (s *CatalogService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	if err := s.templateRepo.DeleteTemplate(ctx, id); err != nil {
		log.Printf("delete template %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

// runCatalogQuery executes the shared listing primitive and attaches
// category rows in one batched lookup.
func (s *CatalogService) runCatalogQuery(ctx context.Context, query repositories.CatalogQuery) ([]response_models.TemplateResponse, error) {
	rows, err := s.templateRepo.ListTemplates(ctx, query)
	if err != nil {
		log.Printf("catalog query: %v", err)
		return nil, utils.ErrDatabaseError
	}

	categoryIDs := make([]uuid.UUID, 0, len(rows))
	seen := make(map[uuid.UUID]bool)
	for _, row := range rows {
		if row.CategoryID != nil && !seen[*row.CategoryID] {
			seen[*row.CategoryID] = true
			categoryIDs = append(categoryIDs, *row.CategoryID)
		}
	}

	categories, err := s.categoryRepo.GetCategoriesByIDs(ctx, categoryIDs)
	if err != nil {
		log.Printf("catalog query categories: %v", err)
		return nil, utils.ErrDatabaseError
	}
	byID := make(map[uuid.UUID]db_models.Category, len(categories))
	for _, category := range categories {
		byID[category.ID] = category
	}

	responses := make([]response_models.TemplateResponse, 0, len(rows))
	for _, row := range rows {
		var category *db_models.Category
		if row.CategoryID != nil {
			if found, ok := byID[*row.CategoryID]; ok {
				c := found
				category = &c
			}
		}
		responses = append(responses, toTemplateResponse(row, category))
	}
	return responses, nil
}

func (s *CatalogService) enrichTemplate(ctx context.Context, row repositories.TemplateWithStats) (*response_models.TemplateResponse, error) {
	var category *db_models.Category
	if row.CategoryID != nil {
		found, err := s.categoryRepo.GetCategoryByID(ctx, *row.CategoryID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		category = found
	}
	response := toTemplateResponse(row, category)
	return &response, nil
}

func toCategoryResponse(category db_models.Category) response_models.CategoryResponse {
	return response_models.CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Slug:        category.Slug,
		Icon:        category.Icon,
		Description: category.Description,
	}
}

func toTemplateResponse(row repositories.TemplateWithStats, category *db_models.Category) response_models.TemplateResponse {
	response := response_models.TemplateResponse{
		ID:               row.ID,
		Name:             row.Name,
		Slug:             row.Slug,
		Description:      row.Description,
		ShortDescription: row.ShortDescription,
		Price:            row.Price.StringFixed(2),
		AuthorID:         row.AuthorID,
		PreviewImages:    row.PreviewImages,
		Tags:             row.Tags,
		DemoURL:          row.DemoURL,
		DownloadURL:      row.DownloadURL,
		FileSize:         row.FileSize,
		IsActive:         row.IsActive,
		IsFeatured:       row.IsFeatured,
		Downloads:        row.Downloads,
		AvgRating:        row.AvgRating,
		ReviewCount:      row.ReviewCount,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
	if category != nil {
		c := toCategoryResponse(*category)
		response.Category = &c
	}
	return response
}
