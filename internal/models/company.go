package models

// Location — значение геолокации, встраивается в компанию и проекты.
// Собственной идентичности не имеет.
type Location struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

// Company представляет профиль компании. Логически существует ровно
// одна запись с фиксированным идентификатором.
type Company struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Location Location `json:"location"`
}
