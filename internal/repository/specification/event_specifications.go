package specification

import "gorm.io/gorm"

// BySessionID filters rows belonging to one capture session
type BySessionID struct {
	SessionID string
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// BySource filters events by modality ("ocr", "asr", ...)
type BySource struct {
	Source string
}

func (s BySource) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source = ?", s.Source)
}

// BySources filters events by a set of modalities
type BySources struct {
	Sources []string
}

func (s BySources) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source IN ?", s.Sources)
}
