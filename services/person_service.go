package services

import (
	"context"
	"strings"

	"newsroom-cms/models"
	"newsroom-cms/repositories"
	"newsroom-cms/util"
)

type PersonService interface {
	CreatePerson(ctx context.Context, req models.CreatePersonRequest) (*models.Person, error)
	GetPeople(ctx context.Context) ([]models.Person, error)
}

type personService struct {
	personRepo repositories.PersonRepository
}

func NewPersonService(personRepo repositories.PersonRepository) PersonService {
	return &personService{personRepo: personRepo}
}

func (s *personService) CreatePerson(ctx context.Context, req models.CreatePersonRequest) (*models.Person, error) {
	fullName := strings.TrimSpace(req.FullName)
	person := &models.Person{FullName: fullName, Slug: util.Slugify(fullName)}
	if err := s.personRepo.Create(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

func (s *personService) GetPeople(ctx context.Context) ([]models.Person, error) {
	return s.personRepo.GetAll(ctx)
}
