package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/ksa/internal/selfupdate"
	"github.com/spf13/cobra"
)

const updateTimeout = 2 * time.Minute

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update ksa to the latest release",
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().Bool("check", false, "Only report whether a newer release exists")
	updateCmd.Flags().String("version", "", "Install this release tag instead of the latest")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	checkOnly, _ := cmd.Flags().GetBool("check")
	target, _ := cmd.Flags().GetString("version")
	out := cmd.OutOrStdout()

	checker := selfupdate.NewChecker(selfupdate.WithTimeout(updateTimeout))

	if checkOnly {
		res, err := checker.Check(cmd.Context(), &selfupdate.CheckInput{Version: version})
		if err != nil {
			return err
		}
		if !res.UpdateAvailable {
			fmt.Fprintf(out, "ksa %s is the latest release.\n", version)
			return nil
		}
		fmt.Fprintf(out, "ksa %s is available (running %s).\n%s\n", res.LatestVersion, version, res.ReleaseURL)
		return nil
	}

	err := checker.Update(cmd.Context(), &selfupdate.UpdateInput{
		CurrentVersion: version,
		TargetVersion:  target,
	}, func(p selfupdate.UpdateProgress) {
		fmt.Fprintln(out, p.Message)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, selfupdate.ErrDevBuild):
		fmt.Fprintln(out, "This is a development build; install a release build to use update.")
		return nil
	case errors.Is(err, selfupdate.ErrAlreadyLatest):
		fmt.Fprintf(out, "ksa %s is the latest release.\n", version)
		return nil
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w\n\nThe install directory is not writable; try: sudo ksa update", err)
	default:
		return err
	}
}
