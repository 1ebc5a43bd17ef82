package db_models

import "time"

// CachedItinerary is one content-addressed cache row. Key is the normalized
// request hash; Payload is the serialized FullItineraryResponse.
type CachedItinerary struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Payload   []byte    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (CachedItinerary) TableName() string {
	return "cached_itineraries"
}
