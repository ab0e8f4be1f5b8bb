package entity

import (
	"github.com/devlupca-cloud/njob-creator-sub000/core/entity"
)

// Creator is an account that publishes availability and events.
type Creator struct {
	Email       string `db:"email" json:"email"`
	Password    string `db:"password" json:"-"`
	DisplayName string `db:"display_name" json:"display_name"`
	Slug        string `db:"slug" json:"slug"`
	Timezone    string `db:"timezone" json:"timezone"` // IANA zone name, e.g. America/Sao_Paulo
	entity.BaseEntity
}
