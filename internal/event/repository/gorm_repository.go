package repository

import (
	"errors"
	"time"

	"evently-backend/internal/event/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormEventRepository implements EventRepository using GORM
type gormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GORM-based EventRepository
func NewGormEventRepository(db *gorm.DB) EventRepository {
	return &gormEventRepository{db: db}
}

func (r *gormEventRepository) Create(event *domain.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	event.CreatedAt = time.Now()
	return r.db.Create(event).Error
}

func (r *gormEventRepository) FindByID(id string) (*domain.Event, error) {
	var event domain.Event
	err := r.db.Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *gormEventRepository) Find(filter EventFilter, sort EventSort, skip, limit int) ([]*domain.Event, int64, error) {
	query := r.applyFilter(r.db.Model(&domain.Event{}), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch sort {
	case SortDateAsc:
		query = query.Order("date ASC")
	case SortPopularityDesc:
		query = query.Order("popularity DESC")
	}

	var events []*domain.Event
	err := query.Offset(skip).Limit(limit).Find(&events).Error
	return events, total, err
}

func (r *gormEventRepository) applyFilter(query *gorm.DB, filter EventFilter) *gorm.DB {
	if filter.OrganizerID != "" {
		query = query.Where("organizer_id = ?", filter.OrganizerID)
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.DayStart != nil {
		query = query.Where("date >= ? AND date < ?", *filter.DayStart, filter.DayStart.Add(24*time.Hour))
	}
	if filter.DateExact != nil {
		query = query.Where("date = ?", *filter.DateExact)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.TextQuery != "" {
		query = query.Where("to_tsvector('simple', title || ' ' || description) @@ plainto_tsquery('simple', ?)", filter.TextQuery)
	}
	if filter.Keyword != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Keyword+"%")
	}
	return query
}

func (r *gormEventRepository) Update(event *domain.Event) error {
	return r.db.Save(event).Error
}

func (r *gormEventRepository) Delete(id string) error {
	return r.db.Delete(&domain.Event{}, "id = ?", id).Error
}
