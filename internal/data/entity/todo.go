package entity

import "github.com/google/uuid"

type Todo struct {
	Base
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Priority    int       `db:"priority"`
	Complete    bool      `db:"complete"`
	OwnerID     uuid.UUID `db:"owner_id"`
}
