package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Nsfr750/pack/internal/distops"
	"github.com/Nsfr750/pack/internal/repository"
	"github.com/spf13/cobra"
)

var uploadFlags struct {
	repoName string
	username string
	password string
}

// createUploadCommand creates the upload subcommand
func createUploadCommand() *cobra.Command {
	uploadCmd := &cobra.Command{
		Use:   "upload [directory]",
		Short: "Upload distribution files to a package index",
		Long: `Upload the wheels and sdists under the project's dist/ directory with
twine. Without --repository the store's default repository is used.

Credentials resolve in order: command-line flags, values stored for the
repository, then the PACK_USERNAME / PACK_PASSWORD environment
variables. Passwords are never written to disk.`,
		Args: cobra.MaximumNArgs(1),
		RunE: executeUpload,
	}

	uploadCmd.Flags().StringVar(&uploadFlags.repoName, "repository", "",
		"Named repository to upload to (default: the store's default)")
	uploadCmd.Flags().StringVarP(&uploadFlags.username, "username", "u", "", "Upload username")
	uploadCmd.Flags().StringVarP(&uploadFlags.password, "password", "p", "", "Upload password or API token")

	return uploadCmd
}

// executeUpload handles the upload command logic
func executeUpload(cmd *cobra.Command, args []string) error {
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

	manager, err := repository.NewManager()
	if err != nil {
		return err
	}

	var repo *repository.Repository
	if uploadFlags.repoName != "" {
		repo, err = manager.Get(uploadFlags.repoName)
		if err != nil {
			return err
		}
	} else {
		repo = manager.Default()
	}

	// Flag credentials win; environment fills remaining gaps.
	if uploadFlags.username != "" {
		repo.Username = uploadFlags.username
	}
	if uploadFlags.password != "" {
		repo.Password = uploadFlags.password
	}
	if repo.Username == "" {
		repo.Username = os.Getenv("PACK_USERNAME")
	}
	if repo.Password == "" {
		repo.Password = os.Getenv("PACK_PASSWORD")
	}

	fmt.Printf("Uploading %d file(s) to %s (%s)\n", len(files), repo.Name, repo.URL)
	if err := distops.Upload(files, repo); err != nil {
		return err
	}

	fmt.Printf("Upload to %s completed\n", repo.Name)
	return nil
}
