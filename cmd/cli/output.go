// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"rollr/internal/throw"
)

var (
	errorColor      = color.New(color.FgRed)
	identifierColor = color.New(color.FgBlue)
	successColor    = color.New(color.FgGreen)
	coinColor       = color.New(color.FgYellow)
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatYAML outputFormat = "yaml"
)

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case formatText, formatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want %q or %q)", s, formatText, formatYAML)
	}
}

// coinRecord is the YAML shape of a coin flip.
type coinRecord struct {
	Coin  string `yaml:"coin"`
	Heads bool   `yaml:"heads"`
}

// rollRecord is the YAML shape of a dice roll.
type rollRecord struct {
	Count   uint16   `yaml:"count"`
	Sides   uint16   `yaml:"sides"`
	Results []uint16 `yaml:"results"`
	Total   int      `yaml:"total"`
}

func printRoll(w io.Writer, format outputFormat, res throw.Result) error {
	if format == formatYAML {
		return writeYAML(w, rollRecord{
			Count:   res.Request.Count,
			Sides:   res.Request.Kind.Sides(),
			Results: res.Values,
			Total:   res.Total(),
		})
	}
	_, err := fmt.Fprintf(w, "%s : %s\n", identifierColor.Sprint(res.Request), successColor.Sprint(res.ValuesString()))
	return err
}

func printFlip(w io.Writer, format outputFormat, heads bool) error {
	if format == formatYAML {
		return writeYAML(w, coinRecord{Coin: throw.CoinFace(heads), Heads: heads})
	}
	_, err := coinColor.Fprintln(w, throw.CoinText(heads))
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode result as YAML: %w", err)
	}
	return enc.Close()
}
