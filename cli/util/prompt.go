/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package util

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"

	"github.com/UnifyEM/deadlink-watchdog/cli/global"
)

var ErrCancelled = errors.New("cancelled")

// Confirm asks a yes/no question unless --yes was given. Anything other
// than an explicit yes returns ErrCancelled.
func Confirm(question string) error {
	if global.AssumeYes {
		return nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("%w: use --yes to confirm without a terminal", ErrCancelled)
	}

	prompt := promptui.Prompt{
		Label:     question,
		IsConfirm: true,
	}
	result, err := prompt.Run()
	if err != nil || strings.ToLower(result) != "y" {
		return ErrCancelled
	}
	return nil
}

// Password reads a password without echo, prompting until it is not empty
func Password(label string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("a terminal is required to read the password")
	}
	for {
		fmt.Printf("%s: ", label)
		passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return "", fmt.Errorf("error reading password: %w", err)
		}
		fmt.Println() // Print newline after password input

		if password := string(passwordBytes); password != "" {
			return password, nil
		}
		fmt.Println("Password cannot be empty. Please try again.")
	}
}
