// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"rollr/internal/dice"
)

// diceCompletionFunc suggests the coin aliases and one of each supported die.
// A typed count is kept, so "3" completes to "3D4", "3D6", and so on.
func diceCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	count := toComplete
	if i := strings.IndexAny(toComplete, "dD"); i >= 0 {
		count = toComplete[:i]
	}
	if strings.Trim(count, "0123456789") != "" {
		count = ""
	}

	var candidates []string
	if count == "" {
		candidates = append(candidates, dice.CoinAliases()...)
	}
	for _, k := range dice.Kinds() {
		candidates = append(candidates, count+k.String())
	}

	suggestions := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if strings.HasPrefix(strings.ToLower(c), strings.ToLower(toComplete)) {
			suggestions = append(suggestions, c)
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}

// writeCompletion prints the completion script for shell.
func writeCompletion(root *cobra.Command, w io.Writer, shell string) error {
	var err error
	switch strings.ToLower(shell) {
	case "bash":
		err = root.GenBashCompletionV2(w, true)
	case "zsh":
		err = root.GenZshCompletion(w)
	case "fish":
		err = root.GenFishCompletion(w, true)
	case "powershell":
		err = root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unsupported shell %q for completion", shell)
	}
	if err != nil {
		return fmt.Errorf("failed to generate %s completion: %w", shell, err)
	}
	return nil
}
