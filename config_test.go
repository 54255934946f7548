// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		shouldErr bool
	}{
		{
			name:      "default config is valid",
			cfg:       NewDefaultConfig(),
			shouldErr: false,
		},
		{
			name: "invalid FileSizeThreshold (zero)",
			cfg: &Config{
				FileSizeThreshold: 0,
				MaxDecodedBytes:   1024,
				MaxConcurrentPDFs: 2,
				Mode:              BestEffort,
			},
			shouldErr: true,
		},
		{
			name: "invalid MaxDecodedBytes (zero)",
			cfg: &Config{
				FileSizeThreshold: 1024,
				MaxDecodedBytes:   0,
				MaxConcurrentPDFs: 2,
				Mode:              BestEffort,
			},
			shouldErr: true,
		},
		{
			name: "invalid MaxConcurrentPDFs (too high)",
			cfg: &Config{
				FileSizeThreshold: 1024,
				MaxDecodedBytes:   1024,
				MaxConcurrentPDFs: 100,
				Mode:              Strict,
			},
			shouldErr: true,
		},
		{
			name: "invalid Mode",
			cfg: &Config{
				FileSizeThreshold: 1024,
				MaxDecodedBytes:   1024,
				MaxConcurrentPDFs: 2,
				Mode:              "lenient",
			},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.shouldErr {
				assert.Error(t, err, "expected validation error")
			} else {
				assert.NoError(t, err, "expected validation to pass")
			}
		})
	}
}

func TestCompileRules_Defaults(t *testing.T) {
	rules, err := compileRules(NewDefaultConfig())
	require.NoError(t, err)

	assert.True(t, matches(rules.suspicious, "eval(document)"))
	assert.True(t, matches(rules.suspicious, "WScript.Shell"))
	assert.True(t, matches(rules.suspicious, "EXEC"))
	assert.False(t, matches(rules.suspicious, "harmless"))

	assert.True(t, matches(rules.metadata, "Adobe Acrobat 11.0"))
	assert.True(t, matches(rules.metadata, "Microsoft Word"))
	assert.False(t, matches(rules.metadata, "EvilToolkit 1.0"))
}

func TestCompileRules_EmptyListNeverMatches(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.SuspiciousPatterns = nil
	cfg.MetadataPatterns = []string{}

	rules, err := compileRules(cfg)
	require.NoError(t, err)
	assert.Nil(t, rules.suspicious)
	assert.Nil(t, rules.metadata)
	assert.False(t, matches(rules.suspicious, "eval"))
	assert.False(t, matches(rules.metadata, "anything"))
}

func TestCompileRules_MalformedPattern(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.SuspiciousPatterns = []string{"eval", "(unclosed"}

	_, err := compileRules(cfg)
	assert.Error(t, err)
}

func TestNewAnalyzer_ConfigErrors(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.MetadataPatterns = []string{"[bad"}
	_, err := NewAnalyzer(cfg)
	assert.Error(t, err, "malformed patterns must fail at construction")

	cfg = NewDefaultConfig()
	cfg.MaxConcurrentPDFs = 0
	_, err = NewAnalyzer(cfg)
	assert.Error(t, err, "invalid config must fail at construction")
}
