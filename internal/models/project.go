package models

// Project представляет проект компании с геолокацией.
// Идентификатор задается клиентом; запись по несуществующему
// идентификатору создается при обновлении (upsert).
type Project struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location Location `json:"location"`
}
