package service

import (
	"fmt"
	"strings"
	"sync"

	publisherModel "megaferia-backend/internal/domains/publisher/model"
	"megaferia-backend/internal/domains/stand/model"
	"megaferia-backend/internal/shared/observer"
	"megaferia-backend/internal/shared/repository"
	"megaferia-backend/internal/shared/response"
	"megaferia-backend/internal/shared/validation"

	"github.com/rs/zerolog/log"
)

const standIDSubject = "El id del stand"

type (
	StandRepository     = repository.Repository[model.Stand, int64]
	PublisherRepository = repository.Repository[publisherModel.Publisher, string]
)

// StandService creates stands and records their purchase by publishers.
type StandService struct {
	observer.Subject

	mu            sync.Mutex
	standRepo     StandRepository
	publisherRepo PublisherRepository
}

// NewStandService creates a new stand service instance
func NewStandService(stands StandRepository, publishers PublisherRepository) *StandService {
	return &StandService{
		standRepo:     stands,
		publisherRepo: publishers,
	}
}

func (s *StandService) CreateStand(idText, priceText string) response.Response[model.Stand] {
	res := func() response.Response[model.Stand] {
		s.mu.Lock()
		defer s.mu.Unlock()

		if validation.IsBlank(idText) || validation.IsBlank(priceText) {
			return response.Of[model.Stand](response.StatusBadRequest,
				"El id y el precio del stand son obligatorios.")
		}

		id, err := validation.ParseID(idText, standIDSubject)
		if err != nil {
			return response.Of[model.Stand](response.StatusBadRequest, err.Error())
		}

		price, err := validation.ParsePositiveDecimal(priceText,
			"El precio del stand debe ser un número.",
			"El precio del stand debe ser mayor que cero.")
		if err != nil {
			return response.Of[model.Stand](response.StatusBadRequest, err.Error())
		}

		if _, exists := s.standRepo.FindByID(id); exists {
			return response.Of[model.Stand](response.StatusConflict, "Ya existe un stand con ese id.")
		}

		saved := s.standRepo.Save(model.NewStand(id, price))
		return response.WithData(response.StatusCreated, "Stand creado correctamente.", saved)
	}()

	if !res.IsSuccess() {
		log.Debug().
			Str("status", string(res.Status)).
			Str("reason", res.Message).
			Msg("Stand rejected")
		return res
	}

	log.Info().
		Int64("id", res.Data.ID).
		Str("price", res.Data.Price.String()).
		Msg("Stand created")

	s.Notify(observer.KindStand)
	return res
}

func (s *StandService) GetAllStands() response.Response[[]model.Stand] {
	return response.WithData(response.StatusOK, "Listado de stands", s.standRepo.FindAll())
}

// BuyStands associates every selected stand with every selected publisher.
// All checks run before anything is written. The stand side skips publishers
// it already lists; the publisher side adds unconditionally and relies on its
// stand set to absorb repeats.
func (s *StandService) BuyStands(standIDs, publisherNITs []string) response.Response[struct{}] {
	res := func() response.Response[struct{}] {
		s.mu.Lock()
		defer s.mu.Unlock()

		standTexts := nonBlank(standIDs)
		if len(standTexts) == 0 {
			return response.Of[struct{}](response.StatusBadRequest, "Debe seleccionar al menos un stand.")
		}
		nits := nonBlank(publisherNITs)
		if len(nits) == 0 {
			return response.Of[struct{}](response.StatusBadRequest, "Debe seleccionar al menos una editorial.")
		}

		ids := make([]int64, 0, len(standTexts))
		stands := make([]model.Stand, 0, len(standTexts))
		for _, text := range standTexts {
			id, err := validation.ParseID(text, standIDSubject)
			if err != nil {
				return response.Of[struct{}](response.StatusBadRequest, err.Error())
			}
			stand, found := s.standRepo.FindByID(id)
			if !found {
				return response.Of[struct{}](response.StatusNotFound,
					fmt.Sprintf("No existe el stand con id %d.", id))
			}
			ids = append(ids, id)
			stands = append(stands, stand)
		}

		publishers := make([]publisherModel.Publisher, 0, len(nits))
		for _, nit := range nits {
			publisher, found := s.publisherRepo.FindByID(nit)
			if !found {
				return response.Of[struct{}](response.StatusNotFound,
					fmt.Sprintf("No existe la editorial con NIT %s.", nit))
			}
			publishers = append(publishers, publisher)
		}

		if hasDuplicates(ids) {
			return response.Of[struct{}](response.StatusBadRequest, "No puede haber stands repetidos en la compra.")
		}
		if hasDuplicates(nits) {
			return response.Of[struct{}](response.StatusBadRequest, "No puede haber editoriales repetidas en la compra.")
		}

		for i := range stands {
			for j := range publishers {
				if !stands[i].HasPublisher(publishers[j].NIT) {
					stands[i].AddPublisher(publishers[j].NIT)
				}
				publishers[j].AddStand(stands[i].ID)
			}
		}

		for _, stand := range stands {
			s.standRepo.Update(stand)
		}
		for _, publisher := range publishers {
			s.publisherRepo.Update(publisher)
		}

		return response.Of[struct{}](response.StatusOK, "Compra de stands registrada correctamente.")
	}()

	if !res.IsSuccess() {
		log.Debug().
			Str("status", string(res.Status)).
			Str("reason", res.Message).
			Msg("Stand purchase rejected")
		return res
	}

	log.Info().
		Strs("stand_ids", standIDs).
		Strs("publisher_nits", publisherNITs).
		Msg("Stands purchased")

	s.Notify(observer.KindStand)
	s.Notify(observer.KindPublisher)
	return res
}

// nonBlank returns the trimmed non-blank entries of values.
func nonBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !validation.IsBlank(v) {
			out = append(out, strings.TrimSpace(v))
		}
	}
	return out
}

func hasDuplicates[T comparable](values []T) bool {
	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}
