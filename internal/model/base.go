package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel handles the string ID and standard timestamps
type BaseModel struct {
	ID        string    `gorm:"type:varchar(40);primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewID builds a millisecond timestamp identifier with a short random
// suffix so concurrent inserts don't collide on the same millisecond.
func NewID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}

// Hook Before Create to assign an ID when the caller didn't
func (base *BaseModel) BeforeCreate(tx *gorm.DB) (err error) {
	if base.ID == "" {
		base.ID = NewID()
	}
	return
}
