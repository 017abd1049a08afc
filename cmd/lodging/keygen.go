package main

import (
	"fmt"
	"os"

	"lodging/internal/infra/auth"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newKeygenCmd() *cobra.Command {
	var (
		out  string
		bits int
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Write an RSA private key for token signing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := auth.GenerateKey(bits)
			if err != nil {
				return err
			}

			pemBytes, err := auth.EncodePrivateKeyPEM(key)
			if err != nil {
				return err
			}

			if err := os.WriteFile(out, pemBytes, 0o600); err != nil {
				return errors.Wrapf(err, "write %s", out)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d-bit key to %s\n", key.N.BitLen(), out)

			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "destination of the PEM encoded key")
	cmd.Flags().IntVar(&bits, "bits", 2048, "RSA modulus size, at least 2048")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
