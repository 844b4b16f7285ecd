// Command setbg sets or clears the desktop background of a running deskfb.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rook-computer/deskfb/internal/rawimg"
)

const envAddr = "DESKFB_ADDR"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		addr  string
		clear bool
	)
	root := &cobra.Command{
		Use:   "setbg [-c | PATH]",
		Short: "Set or clear the desktop background",
		Long: `setbg -c
    clear the background image
setbg /path/to/image.img
    set the desktop background from a raw image (see "setbg convert")`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient(addr)
			switch {
			case clear && len(args) == 0:
				return c.clearBackground(cmd.Context())
			case !clear && len(args) == 1:
				img, err := rawimg.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("failed to load image: %w", err)
				}
				return c.setBackground(cmd.Context(), img)
			}
			return cmd.Help()
		},
	}
	defaultAddr := os.Getenv(envAddr)
	if defaultAddr == "" {
		defaultAddr = "127.0.0.1:7410"
	}
	root.Flags().BoolVarP(&clear, "clear", "c", false, "clear the background image")
	root.PersistentFlags().StringVar(&addr, "addr", defaultAddr, "deskfb API address; also configurable via "+envAddr)
	root.AddCommand(newConvertCmd())
	return root
}

func newConvertCmd() *cobra.Command {
	var opts rawimg.ConvertOptions
	cmd := &cobra.Command{
		Use:   "convert INPUT OUTPUT",
		Short: "Convert a png/jpeg/gif/bmp/tiff/webp file to the raw background format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := rawimg.Load(args[0], opts)
			if err != nil {
				if errors.Is(err, rawimg.ErrTooLarge) {
					return fmt.Errorf("%w (use --fit to downscale)", err)
				}
				return err
			}
			if err := rawimg.WriteFile(args[1], img); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%dx%d) was generated\n", args[1], img.Width, img.Height)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.Fit, "fit", false, "downscale images larger than 640x480 instead of rejecting them")
	return cmd
}
