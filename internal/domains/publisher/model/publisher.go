package model

import (
	"slices"

	personModel "megaferia-backend/internal/domains/person/model"
)

// Publisher is a publishing house identified by its NIT.
// It owns a copy of its manager; StandIDs is the sorted set of stands it bought.
type Publisher struct {
	NIT      string              `json:"nit"`
	Name     string              `json:"name"`
	Address  string              `json:"address"`
	Manager  personModel.Manager `json:"manager"`
	StandIDs []int64             `json:"stand_ids"`
}

// NewPublisher copies manager so the publisher never aliases the stored one.
func NewPublisher(nit, name, address string, manager personModel.Manager) Publisher {
	return Publisher{
		NIT:     nit,
		Name:    name,
		Address: address,
		Manager: manager.Clone(),
	}
}

func (p Publisher) Key() string { return p.NIT }

func (p Publisher) Clone() Publisher {
	return Publisher{
		NIT:      p.NIT,
		Name:     p.Name,
		Address:  p.Address,
		Manager:  p.Manager.Clone(),
		StandIDs: slices.Clone(p.StandIDs),
	}
}

// AddStand inserts standID into the stand set. Adding an id twice is a no-op.
func (p *Publisher) AddStand(standID int64) {
	i, found := slices.BinarySearch(p.StandIDs, standID)
	if found {
		return
	}
	p.StandIDs = slices.Insert(p.StandIDs, i, standID)
}

// HasStand reports whether standID is in the stand set.
func (p Publisher) HasStand(standID int64) bool {
	_, found := slices.BinarySearch(p.StandIDs, standID)
	return found
}
