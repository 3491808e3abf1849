package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"fmt"
	"time"
)

type ProgressRequest struct {
	Date    string  `json:"date"`
	Weight  *Number `json:"weight"`
	BodyFat *Number `json:"bodyFat"`
	Chest   *Number `json:"chest"`
	Waist   *Number `json:"waist"`
	Hips    *Number `json:"hips"`
	Notes   string  `json:"notes"`
}

type ReminderRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	// Ignored on create; a new reminder always starts out open.
	Completed *bool `json:"completed"`
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"}

// parseDate accepts RFC 3339 timestamps and the plain forms an HTML date or
// datetime-local input sends. The empty string is the zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// setIfNonZero overwrites *dst only when src carries a non-zero number.
func setIfNonZero(dst **float64, src *Number) {
	if src != nil && *src != 0 {
		*dst = src.float()
	}
}

func NewProgressHandler(svc service.ProgressService) *ResourceHandler[domain.Progress, ProgressRequest] {
	return &ResourceHandler[domain.Progress, ProgressRequest]{
		svc: svc,
		build: func(req *ProgressRequest) (*domain.Progress, error) {
			date, err := parseDate(req.Date)
			if err != nil {
				return nil, err
			}
			if date.IsZero() {
				date = time.Now().UTC()
			}
			return &domain.Progress{
				Date:    date,
				Weight:  req.Weight.float(),
				BodyFat: req.BodyFat.float(),
				Chest:   req.Chest.float(),
				Waist:   req.Waist.float(),
				Hips:    req.Hips.float(),
				Notes:   req.Notes,
			}, nil
		},
		patch: func(req *ProgressRequest) (func(*domain.Progress), error) {
			date, err := parseDate(req.Date)
			if err != nil {
				return nil, err
			}
			return func(p *domain.Progress) {
				setIfNonZero(&p.Weight, req.Weight)
				setIfNonZero(&p.BodyFat, req.BodyFat)
				setIfNonZero(&p.Chest, req.Chest)
				setIfNonZero(&p.Waist, req.Waist)
				setIfNonZero(&p.Hips, req.Hips)
				if req.Notes != "" {
					p.Notes = req.Notes
				}
				if !date.IsZero() {
					p.Date = date
				}
			}, nil
		},
	}
}

func NewReminderHandler(svc service.ReminderService) *ResourceHandler[domain.Reminder, ReminderRequest] {
	return &ResourceHandler[domain.Reminder, ReminderRequest]{
		svc: svc,
		build: func(req *ReminderRequest) (*domain.Reminder, error) {
			date, err := parseDate(req.Date)
			if err != nil {
				return nil, err
			}
			return &domain.Reminder{
				Title:       req.Title,
				Description: req.Description,
				Date:        date,
			}, nil
		},
		patch: func(req *ReminderRequest) (func(*domain.Reminder), error) {
			date, err := parseDate(req.Date)
			if err != nil {
				return nil, err
			}
			return func(r *domain.Reminder) {
				if req.Title != "" {
					r.Title = req.Title
				}
				if req.Description != "" {
					r.Description = req.Description
				}
				if !date.IsZero() {
					r.Date = date
				}
				if req.Completed != nil {
					r.Completed = *req.Completed
				}
			}, nil
		},
	}
}
