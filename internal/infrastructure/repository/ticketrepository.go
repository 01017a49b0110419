package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"dunner/internal/domain/ticket"
	vo "dunner/internal/domain/ticket/valueobjects"
	"dunner/internal/infrastructure/persistence/mappers"
	"dunner/internal/infrastructure/persistence/models"
	"dunner/internal/shared/db"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	t.SetID(model.ID)
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) FindByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("number = ?", number).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// FindLatestLive returns the newest still-active ticket for the exact
// customer/collector pair, or (nil, nil) when none exists.
func (r *TicketRepository) FindLatestLive(ctx context.Context, customerID string, collectorID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	live := vo.LiveStatuses()
	statuses := make([]string, len(live))
	for i, s := range live {
		statuses[i] = s.String()
	}

	err := tx.
		Where("customer_id = ? AND collector_id = ? AND status IN ?", customerID, collectorID, statuses).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find live ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.ListFilter, offset, limit int) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.CustomerID != "" {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.CollectorID != 0 {
		query = query.Where("collector_id = ?", filter.CollectorID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.TicketType != "" {
		query = query.Where("ticket_type = ?", filter.TicketType.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var rows []models.TicketModel
	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

func (r *TicketRepository) AddInvoices(ctx context.Context, entries []*ticket.InvoiceEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx := db.GetTxFromContext(ctx, r.db)

	rows := make([]*models.TicketInvoiceModel, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, r.mapper.InvoiceEntryToModel(e))
	}

	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to attach invoices: %w", err)
	}

	for i, e := range entries {
		e.SetID(rows[i].ID)
	}
	return nil
}

func (r *TicketRepository) ListInvoices(ctx context.Context, ticketID uint) ([]*ticket.InvoiceEntry, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TicketInvoiceModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("added_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket invoices: %w", err)
	}

	entries := make([]*ticket.InvoiceEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, r.mapper.InvoiceEntryToDomain(&rows[i]))
	}
	return entries, nil
}

func (r *TicketRepository) CountInvoices(ctx context.Context, ticketID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.TicketInvoiceModel{}).
		Where("ticket_id = ?", ticketID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count ticket invoices: %w", err)
	}
	return count, nil
}
