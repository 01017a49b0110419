package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
)

// TicketNumberGenerator issues TCK-YYYYMMDD-NNNN numbers. The per-day
// sequence is cached after the first lookup, the mutex keeps concurrent
// callers from handing out the same number.
type TicketNumberGenerator struct {
	db    *gorm.DB
	mu    sync.Mutex
	cache map[string]int
}

func NewTicketNumberGenerator(db *gorm.DB) *TicketNumberGenerator {
	return &TicketNumberGenerator{
		db:    db,
		cache: make(map[string]int),
	}
}

func (g *TicketNumberGenerator) Next(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dateStr := time.Now().Format("20060102")

	seq, err := g.nextSequence(ctx, dateStr)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("TCK-%s-%04d", dateStr, seq), nil
}

func (g *TicketNumberGenerator) nextSequence(ctx context.Context, dateStr string) (int, error) {
	if seq, ok := g.cache[dateStr]; ok {
		g.cache[dateStr] = seq + 1
		return seq + 1, nil
	}

	var maxNumber string
	pattern := fmt.Sprintf("TCK-%s-%%", dateStr)

	err := g.db.WithContext(ctx).
		Table("tickets").
		Select("MAX(number)").
		Where("number LIKE ?", pattern).
		Scan(&maxNumber).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("failed to get max ticket number: %w", err)
	}

	seq := 1
	if maxNumber != "" {
		fmt.Sscanf(maxNumber, fmt.Sprintf("TCK-%s-%%d", dateStr), &seq)
		seq++
	}

	g.cache[dateStr] = seq
	return seq, nil
}
