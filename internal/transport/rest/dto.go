package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/aromabase/aromabase-backend/internal/domain"
)

type entityDTO struct {
	ID            uuid.UUID `json:"id"`
	Kind          string    `json:"kind"`
	OriginalName  string    `json:"original_name"`
	LocalizedName *string   `json:"localized_name,omitempty"`
	Slug          string    `json:"slug"`
	CreatedAt     time.Time `json:"created_at"`
}

func toEntityDTO(e domain.CanonicalEntity) entityDTO {
	return entityDTO{
		ID:            e.ID,
		Kind:          e.Kind.String(),
		OriginalName:  e.OriginalName,
		LocalizedName: e.LocalizedName,
		Slug:          e.Slug,
		CreatedAt:     e.CreatedAt,
	}
}

func toEntityDTOs(items []domain.CanonicalEntity) []entityDTO {
	out := make([]entityDTO, 0, len(items))
	for _, e := range items {
		out = append(out, toEntityDTO(e))
	}
	return out
}

type perfumerDTO struct {
	EN string `json:"en"`
	RU string `json:"ru,omitempty"`
}

type notesDTO struct {
	Top        []string `json:"top"`
	Heart      []string `json:"heart"`
	Base       []string `json:"base"`
	Additional []string `json:"additional"`
}

type perfumeDTO struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	NameRu      *string       `json:"name_ru,omitempty"`
	Brand       string        `json:"brand"`
	Perfumers   []perfumerDTO `json:"perfumers"`
	Notes       notesDTO      `json:"notes"`
	Gender      string        `json:"gender"`
	ReleaseYear *int          `json:"release_year,omitempty"`
	RatingValue float64       `json:"rating_value"`
	RatingCount int           `json:"rating_count"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func toPerfumeDTO(p domain.Perfume) perfumeDTO {
	perfumers := make([]perfumerDTO, 0, len(p.Perfumers))
	for _, n := range p.Perfumers {
		perfumers = append(perfumers, perfumerDTO{EN: n.EN, RU: n.RU})
	}
	return perfumeDTO{
		ID:        p.ID,
		Name:      p.Name,
		NameRu:    p.NameRu,
		Brand:     p.Brand,
		Perfumers: perfumers,
		Notes: notesDTO{
			Top:        emptyIfNil(p.Notes.Top),
			Heart:      emptyIfNil(p.Notes.Heart),
			Base:       emptyIfNil(p.Notes.Base),
			Additional: emptyIfNil(p.Notes.Additional),
		},
		Gender:      p.Gender.String(),
		ReleaseYear: p.ReleaseYear,
		RatingValue: p.RatingValue,
		RatingCount: p.RatingCount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPerfumeDTOs(items []domain.Perfume) []perfumeDTO {
	out := make([]perfumeDTO, 0, len(items))
	for _, p := range items {
		out = append(out, toPerfumeDTO(p))
	}
	return out
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

type pageDTO[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

type ratingSummaryDTO struct {
	PerfumeID   uuid.UUID `json:"perfume_id"`
	RatingValue float64   `json:"rating_value"`
	RatingCount int       `json:"rating_count"`
}
