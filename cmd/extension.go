package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables passed to extensions. They are also read by the
// configuration, so an extension calling sav back shares its settings.
const (
	EnvLedgerFile = "SAV_LEDGER_FILE"
	EnvCurrency   = "SAV_CURRENCY"
	EnvVerbose    = "SAV_VERBOSE"
)

// ExtensionPrefix is the prefix of the executables run as extensions.
const ExtensionPrefix = "sav-"

// RunExtension attempts to find and execute an external sav-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := ExtensionPrefix + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(),
		EnvLedgerFile+"="+*ledgerFile,
		EnvCurrency+"="+*currency,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1 // an attempt was made, but it failed
	}
	return true, 0
}
