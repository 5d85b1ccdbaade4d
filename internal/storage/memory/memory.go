// Package memory реализует хранилище кадровых данных в памяти процесса.
// Используется в тестах сервисов и обработчиков вместо PostgreSQL;
// соблюдает тот же контракт storage.Repository, включая уникальность
// email и семантику частичного обновления.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/magabrotheeeer/hrms-core/internal/models"
	"github.com/magabrotheeeer/hrms-core/internal/storage"
)

// Storage хранит данные в map-ах под одним мьютексом.
// Все возвращаемые значения — копии, внутреннее состояние наружу не утекает.
type Storage struct {
	mu       sync.Mutex
	users    map[int64]*models.User
	byEmail  map[string]int64
	company  *models.Company
	projects map[string]*models.Project
	nextID   int64
}

// New создает пустое хранилище в памяти.
func New() *Storage {
	return &Storage{
		users:    make(map[int64]*models.User),
		byEmail:  make(map[string]int64),
		projects: make(map[string]*models.Project),
		nextID:   1,
	}
}

// GetUser возвращает пользователя по id.
func (s *Storage) GetUser(_ context.Context, id int64) (*models.User, error) {
	const op = "storage.memory.GetUser"
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}
	return copyUser(u), nil
}

// GetUserByEmail возвращает пользователя по email (точное сравнение).
func (s *Storage) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	const op = "storage.memory.GetUserByEmail"
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}
	return copyUser(s.users[id]), nil
}

// ListUsers возвращает страницу пользователей по возрастанию id.
func (s *Storage) ListUsers(_ context.Context, offset, limit int) ([]*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]*models.User, 0)
	for i, id := range ids {
		if i < offset {
			continue
		}
		if len(result) == limit {
			break
		}
		result = append(result, copyUser(s.users[id]))
	}
	return result, nil
}

// CreateUser сохраняет нового пользователя, присваивая следующий id.
// Повторный email — storage.ErrEmailTaken.
func (s *Storage) CreateUser(_ context.Context, user models.User) (*models.User, error) {
	const op = "storage.memory.CreateUser"
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEmailTaken)
	}

	user.ID = s.nextID
	s.nextID++
	if user.WorkWeek == nil {
		user.WorkWeek = []string{}
	}
	if user.AllowedLocations == nil {
		user.AllowedLocations = []string{}
	}
	s.users[user.ID] = copyUser(&user)
	s.byEmail[user.Email] = user.ID
	return copyUser(&user), nil
}

// UpdateUser применяет частичное обновление: меняются только заданные поля.
func (s *Storage) UpdateUser(_ context.Context, id int64, upd models.UserUpdate) (*models.User, error) {
	const op = "storage.memory.UpdateUser"
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}

	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.HiringDate != nil {
		d := *upd.HiringDate
		u.HiringDate = &d
	}
	if upd.ProbationEnd != nil {
		d := *upd.ProbationEnd
		u.ProbationEnd = &d
	}
	if upd.WorkStartTime != nil {
		d := *upd.WorkStartTime
		u.WorkStartTime = &d
	}
	if upd.WorkEndTime != nil {
		d := *upd.WorkEndTime
		u.WorkEndTime = &d
	}
	if upd.WorkWeek != nil {
		u.WorkWeek = append([]string{}, *upd.WorkWeek...)
	}
	if upd.AllowedLocations != nil {
		u.AllowedLocations = append([]string{}, *upd.AllowedLocations...)
	}
	return copyUser(u), nil
}

// GetCompany возвращает профиль компании, если он создан.
func (s *Storage) GetCompany(_ context.Context) (*models.Company, error) {
	const op = "storage.memory.GetCompany"
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.company == nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrCompanyNotFound)
	}
	c := *s.company
	return &c, nil
}

// UpsertCompany создает либо полностью замещает профиль компании.
func (s *Storage) UpsertCompany(_ context.Context, company models.Company) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	company.ID = 1
	c := company
	s.company = &c
	result := c
	return &result, nil
}

// ListProjects возвращает все проекты по возрастанию id.
func (s *Storage) ListProjects(_ context.Context) ([]*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.projects))
	for id := range s.projects {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	result := make([]*models.Project, 0, len(ids))
	for _, id := range ids {
		p := *s.projects[id]
		result = append(result, &p)
	}
	return result, nil
}

// CreateProject сохраняет новый проект.
func (s *Storage) CreateProject(_ context.Context, project models.Project) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := project
	s.projects[p.ID] = &p
	result := p
	return &result, nil
}

// UpdateProject полностью замещает имя и геолокацию существующего проекта.
func (s *Storage) UpdateProject(_ context.Context, id string, project models.Project) (*models.Project, error) {
	const op = "storage.memory.UpdateProject"
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projects[id]; !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrProjectNotFound)
	}
	p := project
	p.ID = id
	s.projects[id] = &p
	result := p
	return &result, nil
}

// copyUser возвращает глубокую копию пользователя.
func copyUser(u *models.User) *models.User {
	c := *u
	if u.HiringDate != nil {
		d := *u.HiringDate
		c.HiringDate = &d
	}
	if u.ProbationEnd != nil {
		d := *u.ProbationEnd
		c.ProbationEnd = &d
	}
	if u.WorkStartTime != nil {
		d := *u.WorkStartTime
		c.WorkStartTime = &d
	}
	if u.WorkEndTime != nil {
		d := *u.WorkEndTime
		c.WorkEndTime = &d
	}
	c.WorkWeek = append([]string{}, u.WorkWeek...)
	c.AllowedLocations = append([]string{}, u.AllowedLocations...)
	return &c
}
