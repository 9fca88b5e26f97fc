package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"aitranslate/internal/assets"
	"aitranslate/internal/models"
)

type ModelCatalogService interface {
	Startup(ctx context.Context) error
	ListModelGroups() ([]models.LLMModelGroup, error)
	GetModel(apiName string) (*models.LLMModel, error)
	SupportsReasoning(apiName string) bool
}

type modelCatalogService struct {
	data []byte

	mu     sync.RWMutex
	groups []models.LLMModelGroup
	byName map[string]models.LLMModel
}

type rawModelFile struct {
	Providers []rawProvider `json:"providers"`
}

type rawProvider struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"displayName"`
	Models      []rawModel `json:"models"`
}

type rawModel struct {
	DisplayName string `json:"displayName"`
	APIName     string `json:"apiName"`
	Reasoning   bool   `json:"reasoning,omitempty"`
}

// NewModelCatalogService reads the catalog embedded in the binary.
func NewModelCatalogService() ModelCatalogService {
	return NewModelCatalogServiceFromJSON(assets.ModelsData)
}

func NewModelCatalogServiceFromJSON(data []byte) ModelCatalogService {
	return &modelCatalogService{
		data:   data,
		byName: make(map[string]models.LLMModel),
	}
}

func (s *modelCatalogService) Startup(ctx context.Context) error {
	var parsed rawModelFile
	if err := json.Unmarshal(s.data, &parsed); err != nil {
		return fmt.Errorf("parse models asset: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.groups = make([]models.LLMModelGroup, 0, len(parsed.Providers))
	s.byName = make(map[string]models.LLMModel)
	for _, provider := range parsed.Providers {
		providerID := strings.TrimSpace(provider.ID)
		if providerID == "" {
			continue
		}
		providerName := strings.TrimSpace(provider.DisplayName)
		if providerName == "" {
			providerName = providerID
		}
		group := models.LLMModelGroup{ProviderID: providerID, ProviderName: providerName}
		for _, mdl := range provider.Models {
			apiName := strings.TrimSpace(mdl.APIName)
			if apiName == "" {
				continue
			}
			if _, dup := s.byName[apiName]; dup {
				return fmt.Errorf("duplicate model %s in models asset", apiName)
			}
			entry := models.LLMModel{
				Key:          providerID + "|" + apiName,
				DisplayName:  strings.TrimSpace(mdl.DisplayName),
				APIName:      apiName,
				ProviderID:   providerID,
				ProviderName: providerName,
				Reasoning:    mdl.Reasoning,
			}
			if entry.DisplayName == "" {
				entry.DisplayName = apiName
			}
			s.byName[apiName] = entry
			group.Models = append(group.Models, entry)
		}
		s.groups = append(s.groups, group)
	}
	return nil
}

func (s *modelCatalogService) ListModelGroups() ([]models.LLMModelGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.groups == nil {
		return nil, fmt.Errorf("model catalog not loaded")
	}
	out := make([]models.LLMModelGroup, len(s.groups))
	for i, g := range s.groups {
		out[i] = g
		out[i].Models = append([]models.LLMModel(nil), g.Models...)
	}
	return out, nil
}

func (s *modelCatalogService) GetModel(apiName string) (*models.LLMModel, error) {
	apiName = strings.TrimSpace(apiName)
	if apiName == "" {
		return nil, fmt.Errorf("model is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	mdl, ok := s.byName[apiName]
	if !ok {
		return nil, fmt.Errorf("model %s not found", apiName)
	}
	return &mdl, nil
}

func (s *modelCatalogService) SupportsReasoning(apiName string) bool {
	mdl, err := s.GetModel(apiName)
	return err == nil && mdl.Reasoning
}
