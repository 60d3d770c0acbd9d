// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-echo-feed/models"
	"gopkg.in/yaml.v3"
)

// variantFile is the on-disk YAML shape of a variant:
//
//	name: likes
//	metric_column: Likes
//	actions: [follow]
//	endpoint: actions
type variantFile struct {
	Name         string   `yaml:"name"`
	MetricColumn string   `yaml:"metric_column"`
	Actions      []string `yaml:"actions"`
	Endpoint     string   `yaml:"endpoint"`
}

// LoadVariant reads a variant description from path. An empty path returns
// [models.DefaultVariant]. Omitted fields fall back to the default variant's
// values; an explicitly empty action list means message-only input.
func LoadVariant(path string) (models.Variant, error) {
	if strings.TrimSpace(path) == "" {
		return models.DefaultVariant(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Variant{}, fmt.Errorf("%w: %v", ErrInvalidVariant, err)
	}

	return parseVariant(data)
}

func parseVariant(data []byte) (models.Variant, error) {
	var raw variantFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return models.Variant{}, fmt.Errorf("%w: %v", ErrInvalidVariant, err)
	}

	variant := models.DefaultVariant()
	if raw.Name != "" {
		variant.Name = raw.Name
	}

	switch raw.MetricColumn {
	case "":
	case models.MetricFollowers, models.MetricViews, models.MetricLikes:
		variant.MetricColumn = raw.MetricColumn
	default:
		return models.Variant{}, fmt.Errorf("%w: unknown metric column %q", ErrInvalidVariant, raw.MetricColumn)
	}

	switch raw.Endpoint {
	case "":
	case models.EndpointActions, models.EndpointMessage:
		variant.Endpoint = raw.Endpoint
	default:
		return models.Variant{}, fmt.Errorf("%w: unknown endpoint %q", ErrInvalidVariant, raw.Endpoint)
	}

	if raw.Actions != nil {
		variant.Actions = make([]models.Action, 0, len(raw.Actions))
		for _, token := range raw.Actions {
			action, err := models.ParseAction(token)
			if err != nil {
				return models.Variant{}, fmt.Errorf("%w: %v", ErrInvalidVariant, err)
			}
			variant.Actions = append(variant.Actions, action)
		}
	}

	return variant, nil
}
