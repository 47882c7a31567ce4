package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/restaurant-system/metrics"
	"github.com/yeremiapane/restaurant-system/models"
	"github.com/yeremiapane/restaurant-system/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RestaurantService implements the reservation, ordering and reporting rules
// on top of the injected store.
type RestaurantService struct {
	db        *gorm.DB
	publisher EventPublisher
	metrics   *metrics.RestaurantMetrics
	now       func() time.Time
}

// MaxCustomerNameLength matches the varchar(100) reservations.customer_name column.
const MaxCustomerNameLength = 100

// NewRestaurantService builds the service. publisher and m may be nil.
func NewRestaurantService(db *gorm.DB, publisher EventPublisher, m *metrics.RestaurantMetrics) *RestaurantService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	return &RestaurantService{
		db:        db,
		publisher: publisher,
		metrics:   m,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Overview is the landing page data: every table and menu item plus counts.
type Overview struct {
	Tables         []models.Table    `json:"tables"`
	Menu           []models.MenuItem `json:"menu"`
	FreeTables     int               `json:"free_tables"`
	ReservedTables int               `json:"reserved_tables"`
	ItemsInStock   int               `json:"items_in_stock"`
}

func (s *RestaurantService) ListTables(ctx context.Context) ([]models.Table, error) {
	return s.findTables(ctx, nil)
}

// ListAvailableTables returns tables that can be reserved.
func (s *RestaurantService) ListAvailableTables(ctx context.Context) ([]models.Table, error) {
	reserved := false
	return s.findTables(ctx, &reserved)
}

// ListReservedTables returns tables that can take orders.
func (s *RestaurantService) ListReservedTables(ctx context.Context) ([]models.Table, error) {
	reserved := true
	return s.findTables(ctx, &reserved)
}

func (s *RestaurantService) findTables(ctx context.Context, reserved *bool) ([]models.Table, error) {
	query := s.db.WithContext(ctx).Order("id")
	if reserved != nil {
		query = query.Where("is_reserved = ?", *reserved)
	}

	tables := []models.Table{}
	if err := query.Find(&tables).Error; err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return tables, nil
}

func (s *RestaurantService) ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	if err := s.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return items, nil
}

// ListInStockMenu returns items with stock > 0.
func (s *RestaurantService) ListInStockMenu(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	if err := s.db.WithContext(ctx).Where("stock > ?", 0).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list in-stock menu: %w", err)
	}
	return items, nil
}

func (s *RestaurantService) Overview(ctx context.Context) (Overview, error) {
	tables, err := s.ListTables(ctx)
	if err != nil {
		return Overview{}, err
	}
	menu, err := s.ListMenu(ctx)
	if err != nil {
		return Overview{}, err
	}

	overview := Overview{Tables: tables, Menu: menu}
	for _, t := range tables {
		if t.IsReserved {
			overview.ReservedTables++
		} else {
			overview.FreeTables++
		}
	}
	for _, item := range menu {
		if item.InStock() {
			overview.ItemsInStock++
		}
	}
	return overview, nil
}

// ReserveTable marks the table reserved and appends a reservation record in
// one transaction. Fails with ErrTableNotFound or ErrTableAlreadyReserved
// without changing anything.
func (s *RestaurantService) ReserveTable(ctx context.Context, tableID uint, customerName string) (models.Reservation, error) {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		s.metrics.RecordReservation(metrics.ResultRejected)
		return models.Reservation{}, ErrCustomerNameRequired
	}
	if utf8.RuneCountInString(customerName) > MaxCustomerNameLength {
		s.metrics.RecordReservation(metrics.ResultRejected)
		return models.Reservation{}, ErrCustomerNameTooLong
	}

	var (
		reservation models.Reservation
		table       models.Table
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Table{}).
			Where("id = ? AND is_reserved = ?", tableID, false).
			Update("is_reserved", true)
		if res.Error != nil {
			return fmt.Errorf("mark table reserved: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			if err := tx.First(&table, tableID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrTableNotFound
				}
				return fmt.Errorf("load table: %w", err)
			}
			return ErrTableAlreadyReserved
		}
		if err := tx.First(&table, tableID).Error; err != nil {
			return fmt.Errorf("load table: %w", err)
		}

		reservation = models.Reservation{
			TableID:      tableID,
			CustomerName: customerName,
			CreatedAt:    s.now(),
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return fmt.Errorf("insert reservation: %w", err)
		}
		return nil
	})
	if err != nil {
		s.metrics.RecordReservation(resultOf(err))
		s.logOutcome("reserve table", err, logrus.Fields{"table_id": tableID})
		return models.Reservation{}, err
	}

	s.metrics.RecordReservation(metrics.ResultSuccess)
	utils.InfoLogger.WithFields(logrus.Fields{
		"table_id":     tableID,
		"table_number": table.Number,
		"customer":     customerName,
	}).Info("table reserved")

	publishAfterCommit(ctx, s.publisher, NewEvent(models.EventTableReserved, models.TableReservedData{
		Reservation: reservation,
		TableNumber: table.Number,
	}))
	return reservation, nil
}

// ReleaseTable frees a reserved table. Reservation and order history is kept.
func (s *RestaurantService) ReleaseTable(ctx context.Context, tableID uint) (models.Table, error) {
	var table models.Table
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Table{}).
			Where("id = ? AND is_reserved = ?", tableID, true).
			Update("is_reserved", false)
		if res.Error != nil {
			return fmt.Errorf("mark table free: %w", res.Error)
		}
		if err := tx.First(&table, tableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTableNotFound
			}
			return fmt.Errorf("load table: %w", err)
		}
		if res.RowsAffected == 0 {
			return ErrTableNotReservedForRelease
		}
		return nil
	})
	if err != nil {
		s.metrics.RecordRelease(resultOf(err))
		s.logOutcome("release table", err, logrus.Fields{"table_id": tableID})
		return models.Table{}, err
	}

	s.metrics.RecordRelease(metrics.ResultSuccess)
	utils.InfoLogger.WithField("table_id", tableID).Info("table released")
	publishAfterCommit(ctx, s.publisher, NewEvent(models.EventTableReleased, table))
	return table, nil
}

// PlaceOrder records an order against a reserved table and decrements stock
// in one transaction. The decrement is conditional on stock >= quantity, so
// concurrent orders can never drive stock negative.
func (s *RestaurantService) PlaceOrder(ctx context.Context, tableID, menuItemID uint, quantity int) (models.Order, error) {
	if quantity <= 0 {
		s.metrics.RecordOrder(metrics.ResultRejected)
		return models.Order{}, ErrInvalidQuantity
	}

	var (
		order models.Order
		item  models.MenuItem
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&table, tableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTableNotFound
			}
			return fmt.Errorf("load table: %w", err)
		}
		if !table.IsReserved {
			return ErrTableNotReserved
		}

		if err := tx.First(&item, menuItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMenuItemNotFound
			}
			return fmt.Errorf("load menu item: %w", err)
		}

		res := tx.Model(&models.MenuItem{}).
			Where("id = ? AND stock >= ?", menuItemID, quantity).
			Update("stock", gorm.Expr("stock - ?", quantity))
		if res.Error != nil {
			return fmt.Errorf("decrement stock: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrInsufficientStock
		}
		if err := tx.First(&item, menuItemID).Error; err != nil {
			return fmt.Errorf("reload menu item: %w", err)
		}

		order = models.Order{
			TableID:    tableID,
			MenuItemID: menuItemID,
			Quantity:   quantity,
			CreatedAt:  s.now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		return nil
	})
	if err != nil {
		s.metrics.RecordOrder(resultOf(err))
		s.logOutcome("place order", err, logrus.Fields{
			"table_id": tableID,
			"item_id":  menuItemID,
			"quantity": quantity,
		})
		return models.Order{}, err
	}

	s.metrics.RecordOrder(metrics.ResultSuccess)
	s.metrics.RecordItemsSold(item.Name, quantity)
	utils.InfoLogger.WithFields(logrus.Fields{
		"order_id": order.ID,
		"table_id": tableID,
		"item":     item.Name,
		"quantity": quantity,
		"stock":    item.Stock,
	}).Info("order placed")

	publishAfterCommit(ctx, s.publisher, NewEvent(models.EventOrderPlaced, models.OrderPlacedData{
		Order:          order,
		ItemName:       item.Name,
		RemainingStock: item.Stock,
	}))
	return order, nil
}

// SalesReport sums quantity and revenue per menu item. Items without orders
// are left out; rows are ordered by item id.
func (s *RestaurantService) SalesReport(ctx context.Context) ([]models.SalesReportRow, error) {
	rows := []models.SalesReportRow{}
	err := s.db.WithContext(ctx).
		Table("orders").
		Select("menu_items.id AS menu_item_id, menu_items.name AS name, " +
			"SUM(orders.quantity) AS total_quantity, " +
			"SUM(orders.quantity * menu_items.price) AS total_revenue").
		Joins("JOIN menu_items ON menu_items.id = orders.menu_item_id").
		Group("menu_items.id, menu_items.name, menu_items.price").
		Order("menu_items.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("sales report: %w", err)
	}
	return rows, nil
}

// ListReservations returns the reservation log, newest first. tableID 0 means all tables.
func (s *RestaurantService) ListReservations(ctx context.Context, tableID uint) ([]models.Reservation, error) {
	query := s.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if tableID != 0 {
		query = query.Where("table_id = ?", tableID)
	}

	reservations := []models.Reservation{}
	if err := query.Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return reservations, nil
}

// ListOrders returns the order log, newest first. tableID 0 means all tables.
func (s *RestaurantService) ListOrders(ctx context.Context, tableID uint) ([]models.Order, error) {
	query := s.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if tableID != 0 {
		query = query.Where("table_id = ?", tableID)
	}

	orders := []models.Order{}
	if err := query.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *RestaurantService) logOutcome(op string, err error, fields logrus.Fields) {
	if IsDomainError(err) {
		utils.InfoLogger.WithFields(fields).WithField("reason", err.Error()).Infof("%s rejected", op)
		return
	}
	utils.ErrorLogger.WithFields(fields).WithError(err).Errorf("%s failed", op)
}

func resultOf(err error) string {
	if IsDomainError(err) {
		return metrics.ResultRejected
	}
	return metrics.ResultError
}
