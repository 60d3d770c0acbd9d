// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-echo-feed/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadVariant_EmptyPath(t *testing.T) {
	v, err := LoadVariant("")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultVariant(), v)
}

func TestLoadVariant_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "likes.yaml")
	require.NoError(t, os.WriteFile(p, []byte("name: likes\nmetric_column: Likes\nactions: [follow]\n"), 0o600))

	v, err := LoadVariant(p)
	require.NoError(t, err)

	assert.Equal(t, "likes", v.Name)
	assert.Equal(t, models.MetricLikes, v.MetricColumn)
	assert.Equal(t, []models.Action{models.ActionFollow}, v.Actions)
	assert.Equal(t, models.EndpointActions, v.Endpoint)
	assert.False(t, v.Allows(models.ActionUnfollow))
}

func TestLoadVariant_MissingFile(t *testing.T) {
	_, err := LoadVariant(filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, ErrInvalidVariant)
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		check   func(t *testing.T, v models.Variant)
		wantErr bool
	}{
		{
			name: "message only",
			yaml: "endpoint: message\nactions: []\n",
			check: func(t *testing.T, v models.Variant) {
				assert.False(t, v.SendsActions())
				assert.Empty(t, v.Actions)
			},
		},
		{
			name: "views column keeps default actions",
			yaml: "metric_column: Views\n",
			check: func(t *testing.T, v models.Variant) {
				assert.Equal(t, models.MetricViews, v.MetricColumn)
				assert.Equal(t, models.DefaultVariant().Actions, v.Actions)
			},
		},
		{name: "unknown action", yaml: "actions: [retweet]\n", wantErr: true},
		{name: "unknown endpoint", yaml: "endpoint: post\n", wantErr: true},
		{name: "unknown metric", yaml: "metric_column: Stars\n", wantErr: true},
		{name: "not yaml", yaml: "actions: [follow\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseVariant([]byte(tt.yaml))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidVariant)
				return
			}
			require.NoError(t, err)
			tt.check(t, v)
		})
	}
}
