package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/kolod/lpcvtcksum"
	"github.com/spf13/cobra"
)

var (
	output string
	dryRun bool
)

func init() {
	patchCmd.Flags().AddFlagSet(&processFlags)
	patchCmd.Flags().StringVarP(&output, "output", "o", "", "write the patched image to this path instead of modifying the input in place")
	patchCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "report the checksum without writing any file")
	rootCmd.AddCommand(patchCmd)
}

type firmwareFile struct {
	File string
	*lpcvtcksum.Firmware
}

var patchCmd = &cobra.Command{
	Use:   "patch [flags] firmware.bin",
	Short: "Patch a firmware image",
	Long:  "Insert the vector table checksum into a firmware image and pad it with zeros to the next 4096-byte boundary",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]
		reportEncoder().Encode(firmwareFile{
			File:     filename,
			Firmware: patchFile(filename),
		})
	},
}

func patchFile(filename string) *lpcvtcksum.Firmware {
	if dryRun {
		input, err := os.Open(filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Unable to open firmware image: %v\n", err)
			os.Exit(2)
		}
		defer input.Close()

		firmware, err := lpcvtcksum.CheckFirmware(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid firmware image: %v\n", err)
			os.Exit(3)
		}
		return firmware
	}

	destination := output
	if destination == "" {
		destination = filename
	}

	firmware, err := lpcvtcksum.CheckFile(filename, destination)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			fmt.Fprintf(os.Stderr, "Unable to access firmware image: %v\n", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Invalid firmware image: %v\n", err)
		os.Exit(3)
	}
	return firmware
}
