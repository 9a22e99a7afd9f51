package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/tfg-backend/internal/models"
	"github.com/AmrIbrahim41/tfg-backend/internal/nutrition"
	"github.com/AmrIbrahim41/tfg-backend/internal/types"
)

var ErrClientNotFound = errors.New("client not found")

type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

// ClientWithAge is the list/detail payload: the stored row plus the age
// derived from the birth date at read time.
type ClientWithAge struct {
	models.Client
	Age int `json:"age"`
}

func withAge(c models.Client) ClientWithAge {
	age := 0
	if c.BirthDate != nil {
		age = nutrition.AgeAt(*c.BirthDate, time.Now())
	}
	return ClientWithAge{Client: c, Age: age}
}

// ListFilter narrows the client list. Search matches name, manual ID and
// phone. IsChild of nil means both adults and children.
type ListFilter struct {
	Search  string
	Status  string
	IsChild *bool
	Page    int
	PerPage int
}

func (s *ClientService) List(filter ListFilter) ([]ClientWithAge, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 || filter.PerPage > 100 {
		filter.PerPage = 20
	}

	q := s.db.Model(&models.Client{})
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(manual_id) LIKE ? OR phone LIKE ?",
			pattern, pattern, "%"+filter.Search+"%",
		)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.IsChild != nil {
		q = q.Where("is_child = ?", *filter.IsChild)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var clients []models.Client
	offset := (filter.Page - 1) * filter.PerPage
	if err := q.Order("created_at DESC").Limit(filter.PerPage).Offset(offset).
		Find(&clients).Error; err != nil {
		return nil, 0, err
	}

	out := make([]ClientWithAge, 0, len(clients))
	for _, c := range clients {
		out = append(out, withAge(c))
	}
	return out, total, nil
}

func (s *ClientService) Get(id uuid.UUID) (*ClientWithAge, error) {
	var client models.Client
	if err := s.db.First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	c := withAge(client)
	return &c, nil
}

func (s *ClientService) Create(req *types.CreateClientRequest) (*ClientWithAge, error) {
	var existing models.Client
	if err := s.db.Where("manual_id = ?", req.ManualID).First(&existing).Error; err == nil {
		return nil, errors.New("manual ID already in use")
	}

	client := models.Client{
		Name:               req.Name,
		ManualID:           req.ManualID,
		Phone:              req.Phone,
		NatureOfWork:       req.NatureOfWork,
		Address:            req.Address,
		Status:             req.Status,
		Smoking:            req.Smoking,
		SleepHours:         req.SleepHours,
		IsChild:            req.IsChild,
		ParentPhone:        req.ParentPhone,
		Notes:              req.Notes,
		Country:            req.Country,
		TrainedGymBefore:   req.TrainedGymBefore,
		TrainedCoachBefore: req.TrainedCoachBefore,
		Injuries:           req.Injuries,
	}
	if client.Status == "" {
		client.Status = models.ClientStatusActive
	}
	if client.Country == "" {
		client.Country = "Egypt"
	}
	if req.BirthDate != "" {
		bd, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, errors.New("invalid birth_date, expected YYYY-MM-DD")
		}
		client.BirthDate = &bd
	}

	if err := s.db.Create(&client).Error; err != nil {
		return nil, err
	}
	c := withAge(client)
	return &c, nil
}

func (s *ClientService) Update(id uuid.UUID, req *types.UpdateClientRequest) (*ClientWithAge, error) {
	var client models.Client
	if err := s.db.First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.NatureOfWork != nil {
		client.NatureOfWork = *req.NatureOfWork
	}
	if req.BirthDate != nil {
		if *req.BirthDate == "" {
			client.BirthDate = nil
		} else {
			bd, err := time.Parse("2006-01-02", *req.BirthDate)
			if err != nil {
				return nil, errors.New("invalid birth_date, expected YYYY-MM-DD")
			}
			client.BirthDate = &bd
		}
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Status != nil {
		client.Status = *req.Status
	}
	if req.Smoking != nil {
		client.Smoking = *req.Smoking
	}
	if req.SleepHours != nil {
		client.SleepHours = req.SleepHours
	}
	if req.ParentPhone != nil {
		client.ParentPhone = *req.ParentPhone
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	if req.Country != nil {
		client.Country = *req.Country
	}
	if req.TrainedGymBefore != nil {
		client.TrainedGymBefore = *req.TrainedGymBefore
	}
	if req.TrainedCoachBefore != nil {
		client.TrainedCoachBefore = *req.TrainedCoachBefore
	}
	if req.Injuries != nil {
		client.Injuries = *req.Injuries
	}

	if err := s.db.Save(&client).Error; err != nil {
		return nil, err
	}
	c := withAge(client)
	return &c, nil
}

func (s *ClientService) Delete(id uuid.UUID) error {
	res := s.db.Delete(&models.Client{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

// SetPhotoKey records where the client's photo landed in object storage.
// Only the key is stored; download URLs are presigned per request.
func (s *ClientService) SetPhotoKey(id uuid.UUID, key string) error {
	res := s.db.Model(&models.Client{}).Where("id = ?", id).Update("photo_key", key)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

// ListCountries returns the dial-code reference list for the client form.
func (s *ClientService) ListCountries() ([]models.Country, error) {
	var countries []models.Country
	if err := s.db.Order("name ASC").Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}
