package postgres

import (
	"context"
	"encoding/json"

	"huntlog/config"
	"huntlog/internal/domain/entity"
	"huntlog/internal/domain/service"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// pgNotifyPublisher writes change signals with pg_notify so every LISTEN
// connection on the channel receives them once the statement commits.
type pgNotifyPublisher struct {
	db      *gorm.DB
	channel string
}

// NewChangeFeedPublisher is the constructor for pgNotifyPublisher.
func NewChangeFeedPublisher(db *gorm.DB, cfg *config.Config) service.ChangeFeedPublisher {
	return &pgNotifyPublisher{
		db:      db,
		channel: cfg.ChangeFeed.Channel,
	}
}

func (p *pgNotifyPublisher) Publish(ctx context.Context, event *entity.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := p.db.WithContext(ctx).Exec("SELECT pg_notify(?, ?)", p.channel, string(payload)).Error; err != nil {
		return errors.Wrap(err, "pg_notify")
	}

	return nil
}
