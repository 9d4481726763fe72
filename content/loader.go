package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/lixenwraith/good-manners/asset"
)

// Background images are rasterized to the full virtual screen
const (
	BackgroundCols = 100
	BackgroundRows = 30
)

// record mirrors one entry of the scenarios JSON array
type record struct {
	PromptText         string         `json:"prompt_text"`
	PromptAudio        string         `json:"prompt_audio"`
	Background         string         `json:"background"`
	BackgroundFeedback string         `json:"background_feedback"`
	Positive           *outcomeRecord `json:"positive"`
	Negative           *outcomeRecord `json:"negative"`
}

type outcomeRecord struct {
	FeedbackText  string `json:"feedback_text"`
	Audio         string `json:"audio"`
	FramesPattern string `json:"frames_pattern"`
	FrameCount    int    `json:"frame_count"`
}

// Load reads the scenario list from a JSON file. Entries that fail
// validation are skipped with a diagnostic; the load fails if the file is
// missing, unreadable, not a JSON array, or yields zero valid scenarios.
func Load(path string, store *asset.Store) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content source %s: %w", path, err)
	}

	// Entries decode individually so one malformed record does not sink
	// the rest of the file
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("content source %s is not a JSON array: %w", path, err)
	}

	scenarios := make([]Scenario, 0, len(raw))
	for i, entry := range raw {
		var rec record
		if err := json.Unmarshal(entry, &rec); err != nil {
			log.Printf("content: skipping malformed scenario at index %d: %v", i, err)
			continue
		}
		scen, err := newScenario(rec, store)
		if err != nil {
			log.Printf("content: skipping invalid scenario at index %d: %v", i, err)
			continue
		}
		scenarios = append(scenarios, scen)
	}

	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no valid scenarios in %s", path)
	}

	log.Printf("content: loaded %d scenario(s) from %s", len(scenarios), path)
	return scenarios, nil
}

// newScenario validates one record and resolves its image assets. All
// required-field checks happen here, in one place, and are reported
// together as a single joined error.
func newScenario(rec record, store *asset.Store) (Scenario, error) {
	var errs []error

	promptText, err := requireString("prompt_text", rec.PromptText)
	errs = append(errs, err)
	promptAudio, err := requireString("prompt_audio", rec.PromptAudio)
	errs = append(errs, err)

	var pos, neg Outcome
	if rec.Positive == nil {
		errs = append(errs, errors.New("missing positive section"))
	} else {
		pos, err = newOutcome("positive", *rec.Positive)
		errs = append(errs, err)
	}
	if rec.Negative == nil {
		errs = append(errs, errors.New("missing negative section"))
	} else {
		neg, err = newOutcome("negative", *rec.Negative)
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return Scenario{}, err
	}

	// Backgrounds are optional and always degrade to placeholders
	return Scenario{
		PromptText:    promptText,
		PromptAudio:   promptAudio,
		PromptImage:   store.Image(rec.Background, BackgroundCols, BackgroundRows),
		FeedbackImage: store.Image(rec.BackgroundFeedback, BackgroundCols, BackgroundRows),
		Positive:      pos,
		Negative:      neg,
	}, nil
}

func newOutcome(section string, rec outcomeRecord) (Outcome, error) {
	text, terr := requireString(section+".feedback_text", rec.FeedbackText)
	audio, aerr := requireString(section+".audio", rec.Audio)
	if err := errors.Join(terr, aerr); err != nil {
		return Outcome{}, err
	}
	return Outcome{
		FeedbackText:  text,
		Audio:         audio,
		FramesPattern: strings.TrimSpace(rec.FramesPattern),
		FrameCount:    rec.FrameCount,
	}, nil
}

func requireString(name, v string) (string, error) {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return "", fmt.Errorf("missing or empty field: %s", name)
	}
	return trimmed, nil
}
