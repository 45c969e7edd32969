package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RawEvent struct {
	Id        uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId string            `gorm:"type:varchar(128);not null;index"`
	Source    string            `gorm:"type:varchar(16);not null"`
	Timestamp time.Time         `gorm:"not null;index"`
	Text      string            `gorm:"type:text"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"autoCreateTime"`
}

func (RawEvent) TableName() string {
	return "raw_events"
}
