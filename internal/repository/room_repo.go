package repository

import (
	"context"
	"errors"

	"github.com/ferhhaann/manzil-hotel-dashboard/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoomRepository interface {
	FindByNumber(ctx context.Context, number uint) (*models.Room, error)
	FindByNumberForUpdate(ctx context.Context, tx *gorm.DB, number uint) (*models.Room, error)
	FindAll(ctx context.Context) ([]models.Room, error)
	FindByNumbers(ctx context.Context, numbers []uint) ([]models.Room, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, number uint, status models.RoomStatus) error
	SaveGuest(ctx context.Context, tx *gorm.DB, guest *models.Guest) error
	DeleteGuest(ctx context.Context, tx *gorm.DB, roomNumber uint) error
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *roomRepository) FindByNumber(ctx context.Context, number uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).Preload("Guest").First(&room, number).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindByNumberForUpdate acquires a row-level lock on the room within the
// given transaction, then loads its guest separately (FOR UPDATE and
// preloads don't mix).
func (r *roomRepository) FindByNumberForUpdate(ctx context.Context, tx *gorm.DB, number uint) (*models.Room, error) {
	var room models.Room
	if err := tx.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		First(&room, number).Error; err != nil {
		return nil, err
	}

	var guest models.Guest
	err := tx.WithContext(ctx).First(&guest, "room_number = ?", number).Error
	if err == nil {
		room.Guest = &guest
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.WithContext(ctx).Preload("Guest").Order("number ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) FindByNumbers(ctx context.Context, numbers []uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := r.db.WithContext(ctx).Where("number IN ?", numbers).Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *roomRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, number uint, status models.RoomStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Room{}).
		Where("number = ?", number).
		Update("status", status).Error
}

// SaveGuest upserts the stay record for a room; a room holds at most one
// guest, keyed by room number.
func (r *roomRepository) SaveGuest(ctx context.Context, tx *gorm.DB, guest *models.Guest) error {
	return tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "room_number"}},
		UpdateAll: true,
	}).Create(guest).Error
}

func (r *roomRepository) DeleteGuest(ctx context.Context, tx *gorm.DB, roomNumber uint) error {
	return tx.WithContext(ctx).Delete(&models.Guest{}, "room_number = ?", roomNumber).Error
}
