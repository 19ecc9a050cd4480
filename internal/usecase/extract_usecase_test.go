package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestExtractUsecase_EmptyText(t *testing.T) {
	uc := NewExtractUsecase(fakeGenerator{})

	_, err := uc.ExtractSkills(context.Background(), "   ")
	if !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
}

func TestExtractUsecase_StrictOutput(t *testing.T) {
	uc := NewExtractUsecase(fakeGenerator{text: `["django", "react", "gcp"]`})

	skills, err := uc.ExtractSkills(context.Background(), "I build Django and React apps on GCP")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := []string{"django", "gcp", "react"}
	if !reflect.DeepEqual(skills, want) {
		t.Errorf("skills = %v, want %v", skills, want)
	}
}

func TestExtractUsecase_MalformedOutputFallsBack(t *testing.T) {
	uc := NewExtractUsecase(fakeGenerator{text: "Sure! The skills are: ['c++', 'docker'"})

	skills, err := uc.ExtractSkills(context.Background(), "some job text")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	found := map[string]bool{}
	for _, s := range skills {
		found[s] = true
	}
	if !found["c++"] || !found["docker"] {
		t.Errorf("skills = %v, want c++ and docker present", skills)
	}
}

func TestExtractUsecase_GeneratorFailureSurfaces(t *testing.T) {
	uc := NewExtractUsecase(fakeGenerator{err: errors.New("quota exceeded")})

	_, err := uc.ExtractSkills(context.Background(), "some text")
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("expected ErrGenerationFailed, got %v", err)
	}
}
