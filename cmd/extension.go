package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

const (
	EnvStockFile       = "CW_STOCK_FILE"
	EnvAcademyDriver   = "CW_ACADEMY_DRIVER"
	EnvAcademyDSN      = "CW_ACADEMY_DSN"
	EnvAdminSecret     = "CW_ADMIN_SECRET"
	EnvAdminSecretHash = "CW_ADMIN_SECRET_HASH"
	EnvDefaultCurrency = "CW_CURRENCY"
	EnvVerbose         = "CW_VERBOSE"
)

// RunExtension attempts to find and execute an external cw-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// Global flags are passed to the extension as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "cw-" + subcommand
	lp, err := exec.LookPath(name)
	if err != nil {
		if Verbose {
			log.Printf("External command %q not found in PATH: %v", name, err)
		}
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvStockFile+"="+stockFile,
		EnvAcademyDriver+"="+academyDriver,
		EnvAcademyDSN+"="+academyDSN,
		EnvDefaultCurrency+"="+defaultCurrency,
		EnvVerbose+"="+strconv.FormatBool(Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
