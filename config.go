// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package triage

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sassoftware/viya-pdf-triage/logger"
)

type AnalysisMode string

const (
	Strict     AnalysisMode = "strict"
	BestEffort AnalysisMode = "best-effort"
)

type Config struct {
	// FileSizeThreshold is the document size in bytes above which the
	// oversized-file indicator fires.
	FileSizeThreshold int64 `validate:"min=1"`
	// SuspiciousPatterns are case-insensitive regex fragments matched
	// against name/string objects and decoded stream content.
	SuspiciousPatterns []string
	// MetadataPatterns are case-insensitive regex fragments naming
	// known-good producers; Info entries NOT matching any of them are
	// flagged (see hasSuspiciousMetadata).
	MetadataPatterns []string
	// MaxDecodedBytes caps the decompressed size of any single stream.
	MaxDecodedBytes   int64        `validate:"min=1"`
	MaxConcurrentPDFs int          `validate:"min=1,max=64"`
	Mode              AnalysisMode `validate:"oneof=strict best-effort"`
	DebugOn           bool
	Logger            logger.LogFunc
}

func NewDefaultConfig() *Config {
	return &Config{
		FileSizeThreshold:  10 * 1024 * 1024,
		SuspiciousPatterns: []string{"eval", "exec", "spawn", "shell"},
		MetadataPatterns:   []string{"(adobe|microsoft|office)"},
		MaxDecodedBytes:    32 * 1024 * 1024,
		MaxConcurrentPDFs:  5,
		Mode:               BestEffort,
		DebugOn:            false,
	}
}

func (cfg *Config) Validate() error {
	logger.Debug("Validating Config Object")
	validate := validator.New()
	return validate.Struct(cfg)
}

// ruleSet holds the pattern alternations compiled once per analyzer.
// A nil matcher stands for an empty fragment list and never matches.
type ruleSet struct {
	suspicious *regexp.Regexp
	metadata   *regexp.Regexp
}

// compileRules joins each fragment list into one case-insensitive
// alternation. A malformed fragment is a configuration error and is
// surfaced here, before any document is analyzed.
func compileRules(cfg *Config) (*ruleSet, error) {
	susp, err := compileAlternation(cfg.SuspiciousPatterns)
	if err != nil {
		return nil, fmt.Errorf("suspicious patterns: %w", err)
	}
	meta, err := compileAlternation(cfg.MetadataPatterns)
	if err != nil {
		return nil, fmt.Errorf("metadata patterns: %w", err)
	}
	return &ruleSet{suspicious: susp, metadata: meta}, nil
}

func compileAlternation(fragments []string) (*regexp.Regexp, error) {
	if len(fragments) == 0 {
		return nil, nil
	}
	return regexp.Compile("(?i)(?:" + strings.Join(fragments, ")|(?:") + ")")
}

func matches(re *regexp.Regexp, s string) bool {
	return re != nil && re.MatchString(s)
}
