package models

// Роли пользователей. Проверка доступа выполняется точным сравнением строк,
// без иерархии: Super Admin не получает автоматически права Admin.
const (
	RoleEmployee   = "Employee"
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "Super Admin"
)

// User представляет сотрудника компании с учетными данными,
// графиком работы и списком разрешенных локаций.
type User struct {
	ID               int64    `json:"id"`
	Email            string   `json:"email"`
	Name             string   `json:"name"`
	PasswordHash     string   `json:"-"` // Хэш пароля никогда не сериализуется
	Role             string   `json:"role"`
	HiringDate       *Date    `json:"hiring_date,omitempty"`
	ProbationEnd     *Date    `json:"probation_end,omitempty"`
	WorkStartTime    *DayTime `json:"work_start_time,omitempty"`
	WorkEndTime      *DayTime `json:"work_end_time,omitempty"`
	WorkWeek         []string `json:"work_week"`         // Например, ["Mon", "Tue", "Wed"]
	AllowedLocations []string `json:"allowed_locations"` // Например, ["company", "proj-1"]
	IsActive         bool     `json:"is_active"`
}

// UserUpdate описывает частичное обновление пользователя.
// Обновляются только поля, явно присутствующие в запросе:
// nil означает "оставить прежнее значение", а не "сбросить".
type UserUpdate struct {
	Name             *string   `json:"name"`
	Role             *string   `json:"role"`
	HiringDate       *Date     `json:"hiring_date"`
	ProbationEnd     *Date     `json:"probation_end"`
	WorkStartTime    *DayTime  `json:"work_start_time"`
	WorkEndTime      *DayTime  `json:"work_end_time"`
	WorkWeek         *[]string `json:"work_week"`
	AllowedLocations *[]string `json:"allowed_locations"`
}
