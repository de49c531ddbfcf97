package main

import (
	"fmt"
	"path/filepath"

	"github.com/Nsfr750/pack/internal/distops"
	"github.com/Nsfr750/pack/internal/distsign"
	"github.com/spf13/cobra"
)

var signFlags struct {
	key string
}

// createSignCommand creates the sign subcommand
func createSignCommand() *cobra.Command {
	signCmd := &cobra.Command{
		Use:   "sign [directory]",
		Short: "GPG-sign the distribution files of a project",
		Long: `Create an armored detached GPG signature (.asc) next to every wheel and
sdist under the project's dist/ directory. Requires a working gpg setup
with a secret key.`,
		Args: cobra.MaximumNArgs(1),
		RunE: executeSign,
	}

	signCmd.Flags().StringVarP(&signFlags.key, "key", "k", "",
		"Key ID or email of the signing key (default: gpg's default key)")

	return signCmd
}

// executeSign handles the sign command logic
func executeSign(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving project directory: %w", err)
	}

	files, err := distops.FindDistFiles(absDir)
	if err != nil {
		return err
	}

	sigs, err := distsign.SignFiles(files, signFlags.key)
	if err != nil {
		return err
	}

	fmt.Printf("Created %d signature(s):\n", len(sigs))
	for _, sig := range sigs {
		fmt.Printf("  %s\n", filepath.Base(sig))
	}
	return nil
}

// createVerifyCommand creates the verify subcommand
func createVerifyCommand() *cobra.Command {
	verifyCmd := &cobra.Command{
		Use:   "verify <file> <signature>",
		Short: "Verify a detached signature against a public keyring",
		Args:  cobra.ExactArgs(2),
		RunE:  executeVerify,
	}

	verifyCmd.Flags().String("keyring", "", "Armored public keyring file (required)")
	_ = verifyCmd.MarkFlagRequired("keyring")

	return verifyCmd
}

// executeVerify handles the verify command logic
func executeVerify(cmd *cobra.Command, args []string) error {
	keyring, err := cmd.Flags().GetString("keyring")
	if err != nil {
		return err
	}

	if err := distsign.VerifyDetached(args[0], args[1], keyring); err != nil {
		return err
	}
	fmt.Printf("Good signature: %s\n", args[1])
	return nil
}
