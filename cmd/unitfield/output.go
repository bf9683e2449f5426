package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexisbeaulieu97/unitfield/internal/field"
	apperrors "github.com/alexisbeaulieu97/unitfield/pkg/errors"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type resultJSON struct {
	Unit    string `json:"unit"`
	Value   string `json:"value"`
	Settled bool   `json:"settled"`
	IsMin   bool   `json:"is_min"`
	IsMax   bool   `json:"is_max"`
}

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON:
		return nil
	default:
		return apperrors.NewValidationError("output", fmt.Sprintf("unknown format %q (expected text or json)", format), nil)
	}
}

func writeResult(w io.Writer, format string, s field.State) error {
	if format == outputJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(resultJSON{
			Unit:    s.Unit.String(),
			Value:   s.Value,
			Settled: s.Phase == field.Settled,
			IsMin:   s.IsMin(),
			IsMax:   s.IsMax(),
		})
	}

	_, err := fmt.Fprintln(w, s.String())
	return err
}
