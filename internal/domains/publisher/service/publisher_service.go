package service

import (
	"fmt"
	"strings"
	"sync"

	personModel "megaferia-backend/internal/domains/person/model"
	"megaferia-backend/internal/domains/publisher/model"
	"megaferia-backend/internal/shared/observer"
	"megaferia-backend/internal/shared/repository"
	"megaferia-backend/internal/shared/response"
	"megaferia-backend/internal/shared/validation"

	"github.com/rs/zerolog/log"
)

type (
	PublisherRepository = repository.Repository[model.Publisher, string]
	ManagerRepository   = repository.Repository[personModel.Manager, int64]
)

// PublisherService creates and lists publishers.
type PublisherService struct {
	observer.Subject

	mu            sync.Mutex
	publisherRepo PublisherRepository
	managerRepo   ManagerRepository
}

// NewPublisherService creates a new publisher service instance
// Dependency injection pattern - receives repositories from container
func NewPublisherService(publishers PublisherRepository, managers ManagerRepository) *PublisherService {
	return &PublisherService{
		publisherRepo: publishers,
		managerRepo:   managers,
	}
}

// CreatePublisher validates the raw fields and stores a publisher owning a
// copy of an existing manager.
func (s *PublisherService) CreatePublisher(nitText, name, address, managerIDText string) response.Response[model.Publisher] {
	res := func() response.Response[model.Publisher] {
		s.mu.Lock()
		defer s.mu.Unlock()

		if validation.IsBlank(nitText) || validation.IsBlank(name) ||
			validation.IsBlank(address) || validation.IsBlank(managerIDText) {
			return response.Of[model.Publisher](response.StatusBadRequest,
				"NIT, nombre, dirección e id de gerente son obligatorios.")
		}

		nit := strings.TrimSpace(nitText)
		if err := validation.ValidateNIT(nit); err != nil {
			return response.Of[model.Publisher](response.StatusBadRequest, err.Error())
		}

		if _, exists := s.publisherRepo.FindByID(nit); exists {
			return response.Of[model.Publisher](response.StatusConflict,
				"Ya existe una editorial con ese NIT.")
		}

		managerID, err := validation.ParseID(managerIDText, "El id del gerente")
		if err != nil {
			return response.Of[model.Publisher](response.StatusBadRequest, err.Error())
		}

		manager, found := s.managerRepo.FindByID(managerID)
		if !found {
			return response.Of[model.Publisher](response.StatusNotFound,
				fmt.Sprintf("El gerente con id %d no existe.", managerID))
		}

		saved := s.publisherRepo.Save(model.NewPublisher(nit, strings.TrimSpace(name), strings.TrimSpace(address), manager))
		return response.WithData(response.StatusCreated, "Editorial creada correctamente.", saved)
	}()

	if !res.IsSuccess() {
		log.Debug().
			Str("status", string(res.Status)).
			Str("reason", res.Message).
			Msg("Publisher rejected")
		return res
	}

	log.Info().
		Str("nit", res.Data.NIT).
		Int64("manager_id", res.Data.Manager.ID).
		Msg("Publisher created")

	s.Notify(observer.KindPublisher)
	return res
}

// GetAllPublishers returns copies of every publisher ordered by NIT.
func (s *PublisherService) GetAllPublishers() response.Response[[]model.Publisher] {
	return response.WithData(response.StatusOK, "Listado de editoriales.", s.publisherRepo.FindAll())
}
