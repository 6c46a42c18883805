package inventory

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"FreshStock-Backend/domain"
	"FreshStock-Backend/entities"
	"FreshStock-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const expDateLayout = "2006-01-02"

type (
	InventoryService interface {
		GetInventory(ctx context.Context, userID string) (*domain.StorageResponse, error)
		AddItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.StorageResponse, error)
		RemoveItem(ctx context.Context, itemID string, userID string) (domain.StorageResponse, error)
		RemoveMatching(ctx context.Context, req domain.RemoveMatchingRequest, userID string) (domain.StorageResponse, error)
		DeleteInventory(ctx context.Context, userID string) error
		ReportExpiredToday(ctx context.Context, userID string) (domain.ExpiredReportResponse, error)
		ReportWillExpire(ctx context.Context, userID string, days int) (domain.WillExpireReportResponse, error)
	}

	inventoryService struct {
		inventoryRepository InventoryRepository
		userRepository      user.UserRepository
	}
)

func NewInventoryService(inventoryRepository InventoryRepository, userRepository user.UserRepository) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		userRepository:      userRepository,
	}
}

// organizationFor maps the authenticated user to its tenant key.
func (s *inventoryService) organizationFor(ctx context.Context, userID string) (string, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}
	return u.Organization, nil
}

func (s *inventoryService) GetInventory(ctx context.Context, userID string) (*domain.StorageResponse, error) {
	organization, err := s.organizationFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	storage, err := s.inventoryRepository.GetStorageByOrganization(ctx, organization)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Having no storage yet is an expected state, not an error.
			return nil, nil
		}
		return nil, err
	}

	res := toStorageResponse(storage, storage.Items)
	return &res, nil
}

func (s *inventoryService) AddItem(ctx context.Context, req domain.AddItemRequest, userID string) (domain.StorageResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.StorageResponse{}, domain.ErrEmptyItemName
	}

	expDate, err := time.Parse(expDateLayout, req.ExpDate)
	if err != nil {
		return domain.StorageResponse{}, domain.ErrInvalidExpDate
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return domain.StorageResponse{}, err
	}

	organization, err := s.organizationFor(ctx, userID)
	if err != nil {
		return domain.StorageResponse{}, err
	}

	storage, err := s.inventoryRepository.GetStorageByOrganization(ctx, organization)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.StorageResponse{}, err
		}
		storage = &entities.Storage{
			ID:           uuid.New(),
			Organization: organization,
		}
		if err := s.inventoryRepository.CreateStorage(ctx, storage); err != nil {
			return domain.StorageResponse{}, err
		}
	}

	item := &entities.Item{
		ID:        uuid.New(),
		StorageID: storage.ID,
		Name:      name,
		ExpDate:   expDate,
		Price:     price,
		Position:  len(storage.Items),
	}

	if err := s.inventoryRepository.AddItem(ctx, item); err != nil {
		return domain.StorageResponse{}, err
	}

	return toStorageResponse(storage, append(storage.Items, item)), nil
}

func (s *inventoryService) RemoveItem(ctx context.Context, itemID string, userID string) (domain.StorageResponse, error) {
	organization, err := s.organizationFor(ctx, userID)
	if err != nil {
		return domain.StorageResponse{}, err
	}

	itemUUID, err := uuid.Parse(itemID)
	if err != nil {
		return domain.StorageResponse{}, domain.ErrParseUUID
	}

	storage, err := s.inventoryRepository.GetStorageByOrganization(ctx, organization)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.StorageResponse{}, domain.ErrNoStorage
		}
		return domain.StorageResponse{}, err
	}

	// An id that is not present leaves the list untouched.
	kept := make([]*entities.Item, 0, len(storage.Items))
	for _, item := range storage.Items {
		if item.ID != itemUUID {
			kept = append(kept, item)
		}
	}

	if err := s.persistItems(ctx, storage, kept); err != nil {
		return domain.StorageResponse{}, err
	}

	return toStorageResponse(storage, kept), nil
}

func (s *inventoryService) RemoveMatching(ctx context.Context, req domain.RemoveMatchingRequest, userID string) (domain.StorageResponse, error) {
	expDate, err := time.Parse(expDateLayout, req.ExpDate)
	if err != nil {
		return domain.StorageResponse{}, domain.ErrInvalidExpDate
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return domain.StorageResponse{}, err
	}

	organization, err := s.organizationFor(ctx, userID)
	if err != nil {
		return domain.StorageResponse{}, err
	}

	storage, err := s.inventoryRepository.GetStorageByOrganization(ctx, organization)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.StorageResponse{}, domain.ErrNoStorage
		}
		return domain.StorageResponse{}, err
	}

	// Items matching name, date and price all at once are removed,
	// everything else stays.
	kept := make([]*entities.Item, 0, len(storage.Items))
	for _, item := range storage.Items {
		matches := item.Name == req.Name &&
			sameDay(item.ExpDate, expDate) &&
			item.Price == price
		if !matches {
			kept = append(kept, item)
		}
	}

	if err := s.persistItems(ctx, storage, kept); err != nil {
		return domain.StorageResponse{}, err
	}

	return toStorageResponse(storage, kept), nil
}

func (s *inventoryService) DeleteInventory(ctx context.Context, userID string) error {
	organization, err := s.organizationFor(ctx, userID)
	if err != nil {
		return err
	}
	return s.inventoryRepository.DeleteStorage(ctx, organization)
}

// ReportExpiredToday removes every item whose expiration date is today or
// earlier and reports them with their summed price. Removal is a side effect
// of the report.
func (s *inventoryService) ReportExpiredToday(ctx context.Context, userID string) (domain.ExpiredReportResponse, error) {
	organization, err := s.organizationFor(ctx, userID)
	if err != nil {
		return domain.ExpiredReportResponse{}, err
	}

	report := domain.ExpiredReportResponse{Expired: []domain.ItemResponse{}}

	storage, err := s.inventoryRepository.GetStorageByOrganization(ctx, organization)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return report, nil
		}
		return domain.ExpiredReportResponse{}, err
	}

	today := truncateToDay(time.Now())
	kept := make([]*entities.Item, 0, len(storage.Items))
	for _, item := range storage.Items {
		if truncateToDay(item.ExpDate).After(today) {
			kept = append(kept, item)
			continue
		}
		report.Expired = append(report.Expired, toItemResponse(item))
		report.ExpiredCost += item.Price
	}

	if err := s.persistItems(ctx, storage, kept); err != nil {
		return domain.ExpiredReportResponse{}, err
	}

	return report, nil
}

// ReportWillExpire lists items expiring within the given number of calendar
// days. Unlike ReportExpiredToday it never mutates the stored inventory.
func (s *inventoryService) ReportWillExpire(ctx context.Context, userID string, days int) (domain.WillExpireReportResponse, error) {
	if days < 0 {
		return domain.WillExpireReportResponse{}, domain.ErrInvalidDays
	}

	organization, err := s.organizationFor(ctx, userID)
	if err != nil {
		return domain.WillExpireReportResponse{}, err
	}

	report := domain.WillExpireReportResponse{WillExpire: []domain.ItemResponse{}}

	storage, err := s.inventoryRepository.GetStorageByOrganization(ctx, organization)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return report, nil
		}
		return domain.WillExpireReportResponse{}, err
	}

	futureDate := truncateToDay(time.Now()).AddDate(0, 0, days)
	for _, item := range storage.Items {
		if !truncateToDay(item.ExpDate).After(futureDate) {
			report.WillExpire = append(report.WillExpire, toItemResponse(item))
			report.ExpiredCost += item.Price
		}
	}

	return report, nil
}

// persistItems renumbers positions so insertion order stays gap free,
// then writes the list back.
func (s *inventoryService) persistItems(ctx context.Context, storage *entities.Storage, items []*entities.Item) error {
	for i, item := range items {
		item.Position = i
	}
	return s.inventoryRepository.ReplaceItems(ctx, storage.ID, items)
}

func parsePrice(raw string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || price < 0 {
		return 0, domain.ErrInvalidPrice
	}
	return price, nil
}

// truncateToDay pins the calendar date to midnight UTC regardless of the
// location t carries. Parsed expiration dates are midnight UTC while
// time.Now() is local; comparing raw truncations would shift the day
// boundary on any server east or west of UTC.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return truncateToDay(a).Equal(truncateToDay(b))
}

func toItemResponse(item *entities.Item) domain.ItemResponse {
	return domain.ItemResponse{
		ID:      item.ID.String(),
		Name:    item.Name,
		ExpDate: item.ExpDate,
		Price:   item.Price,
	}
}

func toStorageResponse(storage *entities.Storage, items []*entities.Item) domain.StorageResponse {
	inventory := make([]domain.ItemResponse, 0, len(items))
	for _, item := range items {
		inventory = append(inventory, toItemResponse(item))
	}
	return domain.StorageResponse{
		ID:           storage.ID.String(),
		Organization: storage.Organization,
		Inventory:    inventory,
	}
}
