package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/wellplan/advisor-api/internal/domain"
)

func createRequest() *domain.CreateProfileRequest {
	return &domain.CreateProfileRequest{
		Age:          30,
		Sex:          domain.SexFemale,
		HeightCm:     168,
		WeightKg:     62,
		FitnessLevel: domain.FitnessBeginner,
		ActivityDays: 3,
		DietType:     domain.DietVegetarian,
		MealsPerDay:  3,
		SleepHours:   7,
		StressLevel:  4,
		Goals:        []string{"more energy"},
	}
}

func TestProfileCreate(t *testing.T) {
	repo := NewMockProfileRepository()
	svc := NewProfileService(repo)

	profile, err := svc.Create(context.Background(), createRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.ID == uuid.Nil {
		t.Error("profile should receive an id")
	}
	if profile.Sex != domain.SexFemale || profile.DietType != domain.DietVegetarian {
		t.Errorf("profile = %+v", profile)
	}

	stored, err := repo.GetByID(context.Background(), profile.ID)
	if err != nil {
		t.Fatalf("profile not persisted: %v", err)
	}
	if len(stored.Goals) != 1 || stored.Goals[0] != "more energy" {
		t.Errorf("goals = %v", stored.Goals)
	}
}

func TestProfileGetByID_NotFound(t *testing.T) {
	svc := NewProfileService(NewMockProfileRepository())
	if _, err := svc.GetByID(context.Background(), uuid.New()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestProfileUpdate_FullReplacement(t *testing.T) {
	repo := NewMockProfileRepository()
	svc := NewProfileService(repo)

	created, err := svc.Create(context.Background(), createRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	req := createRequest()
	req.WeightKg = 60
	req.Goals = []string{"run a 10k"}
	req.Conditions = []string{"asthma"}

	updated, err := svc.Update(context.Background(), created.ID, req)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.ID != created.ID {
		t.Errorf("id changed: %s -> %s", created.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("createdAt must survive an update")
	}
	if updated.WeightKg != 60 {
		t.Errorf("weight = %v", updated.WeightKg)
	}
	if len(updated.Goals) != 1 || updated.Goals[0] != "run a 10k" {
		t.Errorf("goals = %v", updated.Goals)
	}
	if len(updated.Conditions) != 1 || updated.Conditions[0] != "asthma" {
		t.Errorf("conditions = %v", updated.Conditions)
	}
}

func TestProfileUpdate_NotFound(t *testing.T) {
	svc := NewProfileService(NewMockProfileRepository())
	if _, err := svc.Update(context.Background(), uuid.New(), createRequest()); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
