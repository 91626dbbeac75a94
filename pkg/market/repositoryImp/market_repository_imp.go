package repositoryImp

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"morafo/entities"
	"morafo/pkg/market/repository"
)

type marketRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MarketRepository { return &marketRepo{db} }

func (r *marketRepo) Prices(sessionID string) ([]entities.MarketItem, error) {
	var out []entities.MarketItem
	err := r.db.Where("session_id = ?", sessionID).Order("position ASC").Find(&out).Error
	return out, err
}

func (r *marketRepo) ReplacePrices(sessionID string, items []entities.MarketItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&entities.MarketItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		rows := make([]entities.MarketItem, len(items))
		for i, it := range items {
			it.RowID, it.SessionID, it.Position = 0, sessionID, i
			rows[i] = it
		}
		return tx.Create(&rows).Error
	})
}

func (r *marketRepo) Listings(sessionID string) ([]entities.MarketListing, error) {
	var user, generated []entities.MarketListing
	if err := r.db.Where("session_id = ? AND is_user_listing = ?", sessionID, true).
		Order("created_at DESC").Order("row_id DESC").Find(&user).Error; err != nil {
		return nil, err
	}
	if err := r.db.Where("session_id = ? AND is_user_listing = ?", sessionID, false).
		Order("position ASC").Find(&generated).Error; err != nil {
		return nil, err
	}
	return append(user, generated...), nil
}

func (r *marketRepo) ReplaceGenerated(sessionID string, listings []entities.MarketListing) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ? AND is_user_listing = ?", sessionID, false).
			Delete(&entities.MarketListing{}).Error; err != nil {
			return err
		}
		if len(listings) == 0 {
			return nil
		}
		rows := make([]entities.MarketListing, len(listings))
		for i, l := range listings {
			l.RowID, l.SessionID, l.Position, l.IsUserListing = 0, sessionID, i, false
			rows[i] = l
		}
		return tx.Create(&rows).Error
	})
}

func (r *marketRepo) AddListing(l *entities.MarketListing) error {
	return r.db.Create(l).Error
}

func (r *marketRepo) Profile(sessionID string) (*entities.FarmerProfile, error) {
	var p entities.FarmerProfile
	err := r.db.Where("session_id = ?", sessionID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProfile replaces any earlier registration of the same session.
func (r *marketRepo) SaveProfile(p *entities.FarmerProfile) error {
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(p).Error
}
