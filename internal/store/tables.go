package store

import "github.com/MKhiriev/go-field-crypt/models"

// MessagesTable maps [models.Message] onto the "messages" table.
var MessagesTable = Table[*models.Message]{
	Name:    "messages",
	Key:     "id",
	Columns: []string{"text"},
	New: func() *models.Message {
		return &models.Message{}
	},
	Values: func(m *models.Message) []any {
		return []any{m.Text}
	},
	Targets: func(m *models.Message) []any {
		return []any{&m.ID, &m.Text}
	},
	SetKey: func(m *models.Message, id int64) {
		m.ID = id
	},
}
