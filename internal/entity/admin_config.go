package entity

import (
	"github.com/uptrace/bun"
)

// AdminConfig is a singleton row holding the shared admin secret.
type AdminConfig struct {
	bun.BaseModel `bun:"table:admin_config"`

	BasicEntity
	Password *string `json:"-" bun:"password"`
}
