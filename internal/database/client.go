package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/VHAlvesS/caseAnka-backend/internal/usecase"
)

type Client struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(255)"`
	Email     string    `gorm:"column:email;type:varchar(255)"`
	Status    bool      `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Client) TableName() string {
	return "clients"
}

func (s *service) ListClients(ctx context.Context, opt usecase.ListClientsOption) ([]usecase.Client, int, error) {
	var (
		clients []Client
		count   int64
	)

	err := s.db.WithContext(ctx).
		Model([]Client{}).
		Count(&count).
		Limit(opt.Limit).
		Offset(opt.Skip).
		Find(&clients).
		Error
	if err != nil {
		return nil, 0, err
	}

	uclients := make([]usecase.Client, 0, len(clients))
	for _, c := range clients {
		uclients = append(uclients, c.ConvertToUsecase())
	}

	return uclients, int(count), nil
}

func (s *service) GetClientByID(ctx context.Context, id uint) (usecase.Client, error) {
	var c Client

	err := s.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usecase.Client{}, usecase.ErrClientNotFound
	}
	if err != nil {
		return usecase.Client{}, err
	}

	return c.ConvertToUsecase(), nil
}

func (s *service) CreateClient(ctx context.Context, client usecase.Client) (usecase.Client, error) {
	c := Client{
		Name:   client.Name,
		Email:  client.Email,
		Status: client.Status,
	}

	err := s.db.WithContext(ctx).Create(&c).Error
	if err != nil {
		return usecase.Client{}, err
	}

	return c.ConvertToUsecase(), nil
}

func (s *service) UpdateClient(ctx context.Context, id uint, opt usecase.UpdateClientOption) (usecase.Client, error) {
	updates := map[string]any{}
	if opt.Name != nil {
		updates["name"] = *opt.Name
	}
	if opt.Email != nil {
		updates["email"] = *opt.Email
	}
	if opt.Status != nil {
		updates["status"] = *opt.Status
	}

	res := s.db.WithContext(ctx).
		Model(&Client{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return usecase.Client{}, res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.Client{}, usecase.ErrClientNotFound
	}

	return s.GetClientByID(ctx, id)
}

// DeleteClient removes the client's allocations and the client itself in one
// transaction, so a failure cannot leave orphaned rows on either side.
func (s *service) DeleteClient(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).Delete(&Allocation{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&Client{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrClientNotFound
		}
		return nil
	})
}

func (c Client) ConvertToUsecase() usecase.Client {
	return usecase.Client{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
