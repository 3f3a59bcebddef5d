package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"templify/internal/models/db_models"
	"templify/internal/repositories"
)

// In-memory repository fakes. They reproduce the filtering and state
// transitions of the real postgres-backed implementations so service tests
// exercise real semantics instead of canned return values.

type fakeTemplateRepo struct {
	mu        sync.Mutex
	templates map[uuid.UUID]db_models.Template
	ratings   map[uuid.UUID][]int
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{
		templates: make(map[uuid.UUID]db_models.Template),
		ratings:   make(map[uuid.UUID][]int),
	}
}

func (f *fakeTemplateRepo) add(template db_models.Template) db_models.Template {
	f.mu.Lock()
	defer f.mu.Unlock()
	if template.ID == uuid.Nil {
		template.ID = uuid.New()
	}
	f.templates[template.ID] = template
	return template
}

func (f *fakeTemplateRepo) stats(template db_models.Template) repositories.TemplateWithStats {
	row := repositories.TemplateWithStats{Template: template}
	if ratings := f.ratings[template.ID]; len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r
		}
		avg := float64(sum) / float64(len(ratings))
		row.AvgRating = &avg
		row.ReviewCount = int64(len(ratings))
	}
	return row
}

func (f *fakeTemplateRepo) ListTemplates(ctx context.Context, query repositories.CatalogQuery) ([]repositories.TemplateWithStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var rows []repositories.TemplateWithStats
	for _, template := range f.templates {
		if !template.IsActive {
			continue
		}
		if query.CategoryID != nil && (template.CategoryID == nil || *template.CategoryID != *query.CategoryID) {
			continue
		}
		if query.Search != "" {
			needle := strings.ToLower(query.Search)
			if !strings.Contains(strings.ToLower(template.Name), needle) &&
				!strings.Contains(strings.ToLower(template.Description), needle) {
				continue
			}
		}
		if query.MinPrice != nil && template.Price.LessThan(*query.MinPrice) {
			continue
		}
		if query.MaxPrice != nil && template.Price.GreaterThan(*query.MaxPrice) {
			continue
		}
		if query.FeaturedOnly && !template.IsFeatured {
			continue
		}
		rows = append(rows, f.stats(template))
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch query.Sort {
		case repositories.SortPriceAsc:
			return a.Price.LessThan(b.Price)
		case repositories.SortPriceDesc:
			return a.Price.GreaterThan(b.Price)
		case repositories.SortPopular:
			if a.Downloads != b.Downloads {
				return a.Downloads > b.Downloads
			}
			return a.CreatedAt > b.CreatedAt
		case repositories.SortRating:
			if a.AvgRating == nil {
				return false
			}
			if b.AvgRating == nil {
				return true
			}
			return *a.AvgRating > *b.AvgRating
		default:
			return a.CreatedAt > b.CreatedAt
		}
	})

	if query.Limit > 0 && len(rows) > query.Limit {
		rows = rows[:query.Limit]
	}
	return rows, nil
}

func (f *fakeTemplateRepo) GetTemplateByID(ctx context.Context, id uuid.UUID) (*repositories.TemplateWithStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	template, ok := f.templates[id]
	if !ok {
		return nil, nil
	}
	row := f.stats(template)
	return &row, nil
}

func (f *fakeTemplateRepo) GetTemplateBySlug(ctx context.Context, slug string) (*repositories.TemplateWithStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, template := range f.templates {
		if template.Slug == slug {
			row := f.stats(template)
			return &row, nil
		}
	}
	return nil, nil
}

func (f *fakeTemplateRepo) GetTemplatesByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Template, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var templates []db_models.Template
	for _, id := range ids {
		if template, ok := f.templates[id]; ok {
			templates = append(templates, template)
		}
	}
	return templates, nil
}

func (f *fakeTemplateRepo) ListTemplatesByAuthor(ctx context.Context, authorID uuid.UUID) ([]db_models.Template, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var templates []db_models.Template
	for _, template := range f.templates {
		if template.AuthorID == authorID {
			templates = append(templates, template)
		}
	}
	return templates, nil
}

func (f *fakeTemplateRepo) CreateTemplate(ctx context.Context, template *db_models.Template) error {
	if template.ID == uuid.Nil {
		template.ID = uuid.New()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.templates[template.ID] = *template
	return nil
}

func (f *fakeTemplateRepo) UpdateTemplate(ctx context.Context, template *db_models.Template) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.templates[template.ID]; !ok {
		return errors.New("record not found")
	}
	f.templates[template.ID] = *template
	return nil
}

func (f *fakeTemplateRepo) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.templates, id)
	return nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[uuid.UUID]db_models.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]db_models.Category)}
}

func (f *fakeCategoryRepo) add(category db_models.Category) db_models.Category {
	f.mu.Lock()
	defer f.mu.Unlock()
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	f.categories[category.ID] = category
	return category
}

func (f *fakeCategoryRepo) ListCategories(ctx context.Context) ([]db_models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var categories []db_models.Category
	for _, category := range f.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (f *fakeCategoryRepo) GetCategoryByID(ctx context.Context, id uuid.UUID) (*db_models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	category, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (f *fakeCategoryRepo) GetCategoriesByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var categories []db_models.Category
	for _, id := range ids {
		if category, ok := f.categories[id]; ok {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (f *fakeCategoryRepo) CreateCategory(ctx context.Context, category *db_models.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories[category.ID] = *category
	return nil
}

func (f *fakeCategoryRepo) UpdateCategory(ctx context.Context, category *db_models.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.categories[category.ID]; !ok {
		return errors.New("record not found")
	}
	f.categories[category.ID] = *category
	return nil
}

func (f *fakeCategoryRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.categories, id)
	return nil
}

type fakeOrderRepo struct {
	mu           sync.Mutex
	orders       map[uuid.UUID]*db_models.Order
	templateRepo *fakeTemplateRepo
	users        map[uuid.UUID]db_models.User
	createErr    error
}

func newFakeOrderRepo(templateRepo *fakeTemplateRepo) *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:       make(map[uuid.UUID]*db_models.Order),
		templateRepo: templateRepo,
		users:        make(map[uuid.UUID]db_models.User),
	}
}

func (f *fakeOrderRepo) CreateOrderWithItems(ctx context.Context, order *db_models.Order, items []db_models.OrderItem) error {
	if f.createErr != nil {
		return f.createErr
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		items[i].OrderID = order.ID
	}
	stored := *order
	stored.Items = items
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders[order.ID] = &stored
	return nil
}

func (f *fakeOrderRepo) GetOrderWithItems(ctx context.Context, id uuid.UUID) (*db_models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	order := *stored
	order.Items = append([]db_models.OrderItem(nil), stored.Items...)
	for i := range order.Items {
		if template, ok := f.templateRepo.templates[order.Items[i].TemplateID]; ok {
			order.Items[i].Template = template
		}
	}
	order.User = f.users[order.UserID]
	return &order, nil
}

func (f *fakeOrderRepo) SetPaymentIntent(ctx context.Context, orderID uuid.UUID, intentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok {
		return errors.New("order not found")
	}
	order.StripePaymentIntentID = intentID
	return nil
}

func (f *fakeOrderRepo) CompleteOrder(ctx context.Context, orderID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	order, ok := f.orders[orderID]
	if !ok || order.Status != db_models.OrderStatusPending {
		return false, nil
	}
	order.Status = db_models.OrderStatusCompleted

	f.templateRepo.mu.Lock()
	defer f.templateRepo.mu.Unlock()
	for _, item := range order.Items {
		if template, ok := f.templateRepo.templates[item.TemplateID]; ok {
			template.Downloads++
			f.templateRepo.templates[item.TemplateID] = template
		}
	}
	return true, nil
}

func (f *fakeOrderRepo) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]db_models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var orders []db_models.Order
	for _, stored := range f.orders {
		if stored.UserID == userID {
			orders = append(orders, *stored)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) ListUserPurchases(ctx context.Context, userID uuid.UUID) ([]db_models.Template, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	seen := make(map[uuid.UUID]bool)
	var templates []db_models.Template
	for _, stored := range f.orders {
		if stored.UserID != userID || stored.Status != db_models.OrderStatusCompleted {
			continue
		}
		for _, item := range stored.Items {
			if seen[item.TemplateID] {
				continue
			}
			seen[item.TemplateID] = true
			if template, ok := f.templateRepo.templates[item.TemplateID]; ok {
				templates = append(templates, template)
			}
		}
	}
	return templates, nil
}

func (f *fakeOrderRepo) HasCompletedPurchase(ctx context.Context, userID, templateID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, stored := range f.orders {
		if stored.UserID != userID || stored.Status != db_models.OrderStatusCompleted {
			continue
		}
		for _, item := range stored.Items {
			if item.TemplateID == templateID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (f *fakeOrderRepo) ListRecentOrders(ctx context.Context, limit int) ([]db_models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var orders []db_models.Order
	for _, stored := range f.orders {
		order := *stored
		order.User = f.users[order.UserID]
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt > orders[j].CreatedAt })
	if limit > 0 && len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews []db_models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{}
}

func (f *fakeReviewRepo) CreateReview(ctx context.Context, review *db_models.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reviews = append(f.reviews, *review)
	return nil
}

func (f *fakeReviewRepo) ListTemplateReviews(ctx context.Context, templateID uuid.UUID) ([]db_models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var reviews []db_models.Review
	for _, review := range f.reviews {
		if review.TemplateID == templateID {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

func (f *fakeReviewRepo) GetUserReview(ctx context.Context, userID, templateID uuid.UUID) (*db_models.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, review := range f.reviews {
		if review.UserID == userID && review.TemplateID == templateID {
			r := review
			return &r, nil
		}
	}
	return nil, nil
}

type fakeAdminRepo struct {
	orderRepo *fakeOrderRepo
	userCount int64
}

func (f *fakeAdminRepo) CompletedRevenue(ctx context.Context) (decimal.Decimal, error) {
	f.orderRepo.mu.Lock()
	defer f.orderRepo.mu.Unlock()
	total := decimal.Zero
	for _, order := range f.orderRepo.orders {
		if order.Status == db_models.OrderStatusCompleted {
			total = total.Add(order.TotalAmount)
		}
	}
	return total, nil
}

func (f *fakeAdminRepo) CountOrders(ctx context.Context) (int64, error) {
	f.orderRepo.mu.Lock()
	defer f.orderRepo.mu.Unlock()
	return int64(len(f.orderRepo.orders)), nil
}

func (f *fakeAdminRepo) CountTemplates(ctx context.Context) (int64, error) {
	f.orderRepo.templateRepo.mu.Lock()
	defer f.orderRepo.templateRepo.mu.Unlock()
	return int64(len(f.orderRepo.templateRepo.templates)), nil
}

func (f *fakeAdminRepo) CountUsers(ctx context.Context) (int64, error) {
	return f.userCount, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]db_models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]db_models.User)}
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *db_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, user *db_models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[user.ID]
	if !ok {
		return errors.New("user not found")
	}
	stored.FirstName = user.FirstName
	stored.LastName = user.LastName
	stored.ProfileImageURL = user.ProfileImageURL
	f.users[user.ID] = stored
	return nil
}

func (f *fakeUserRepo) SetStripeCustomerID(ctx context.Context, userID uuid.UUID, customerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.users[userID]
	if !ok {
		return errors.New("user not found")
	}
	stored.StripeCustomerID = customerID
	f.users[userID] = stored
	return nil
}

type fakePaymentProvider struct {
	mu        sync.Mutex
	intents   map[string]bool
	nextID    int
	createErr error
	queryErr  error
}

func newFakePaymentProvider() *fakePaymentProvider {
	return &fakePaymentProvider{intents: make(map[string]bool)}
}

func (f *fakePaymentProvider) CreateIntent(ctx context.Context, amountMinor int64, orderID uuid.UUID) (*PaymentIntentRef, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	id := fmt.Sprintf("pi_%d", f.nextID)
	f.intents[id] = false
	return &PaymentIntentRef{ID: id, ClientSecret: id + "_secret"}, nil
}

func (f *fakePaymentProvider) IntentSucceeded(ctx context.Context, intentID string) (bool, error) {
	if f.queryErr != nil {
		return false, f.queryErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.intents[intentID], nil
}

func (f *fakePaymentProvider) markSucceeded(intentID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.intents[intentID] = true
}

type fakeMailService struct {
	mu   sync.Mutex
	sent []string
}

func (f *fakeMailService) SendPurchaseConfirmation(to, orderID string, templateNames []string, total string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	return nil
}
