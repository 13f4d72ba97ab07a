package services

import (
	"errors"
	"time"

	"github.com/2605335342/sky-take-out/entity"
	"github.com/2605335342/sky-take-out/repository"
	"github.com/2605335342/sky-take-out/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EmployeeService handles the admin console accounts.
type EmployeeService struct {
	Repo            *repository.EmployeeRepository
	jwtSecret       string
	jwtTTL          time.Duration
	defaultPassword string
}

func NewEmployeeService(repo *repository.EmployeeRepository, secret string, ttl time.Duration, defaultPassword string) *EmployeeService {
	return &EmployeeService{Repo: repo, jwtSecret: secret, jwtTTL: ttl, defaultPassword: defaultPassword}
}

// Login checks the credentials and issues an admin token.
func (s *EmployeeService) Login(username, password string) (string, *entity.Employee, error) {
	e, err := s.Repo.GetByUsername(username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrAccountNotFound
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(e.Password), []byte(password)); err != nil {
		return "", nil, ErrPasswordError
	}

	if e.Status == entity.Disable {
		return "", nil, ErrAccountLocked
	}

	token, err := utils.GenerateToken(e.ID, "admin", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, e, nil
}

// Create adds an employee with the configured default password, enabled.
func (s *EmployeeService) Create(e *entity.Employee) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	e.Password = string(hash)
	e.Status = entity.Enable

	err = s.Repo.Create(e)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &DuplicateError{Value: e.Username}
	}
	return err
}

func (s *EmployeeService) PageQuery(name string, page, pageSize int) (*PageResult, error) {
	rows, total, err := s.Repo.PageQuery(name, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &PageResult{Total: total, Records: rows}, nil
}

func (s *EmployeeService) StartOrStop(id uint, status int) error {
	return s.Repo.UpdateStatus(id, status)
}

func (s *EmployeeService) GetByID(id uint) (*entity.Employee, error) {
	e, err := s.Repo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	e.Password = "******"
	return e, nil
}

func (s *EmployeeService) Update(e *entity.Employee) error {
	err := s.Repo.Update(e)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &DuplicateError{Value: e.Username}
	}
	return err
}
