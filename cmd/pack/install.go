package main

import (
	"fmt"

	"github.com/Nsfr750/pack/internal/pip"
	"github.com/Nsfr750/pack/internal/repository"
	"github.com/spf13/cobra"
)

var installFlags struct {
	upgrade        bool
	forceReinstall bool
	noDeps         bool
	pre            bool
	repoName       string
	requirements   string
	editable       string
}

// createInstallCommand creates the install subcommand
func createInstallCommand() *cobra.Command {
	installCmd := &cobra.Command{
		Use:   "install [requirement...]",
		Short: "Install packages with pip",
		Long: `Install one or more requirements (e.g. "requests>=2.0") with pip.

A requirements file can be installed with -r, and a local project can be
installed in editable mode with -e. With --repository, packages are
fetched from a named repository from the store instead of the default
index.`,
		RunE: executeInstall,
	}

	installCmd.Flags().BoolVarP(&installFlags.upgrade, "upgrade", "U", false,
		"Upgrade packages to the newest available version")
	installCmd.Flags().BoolVar(&installFlags.forceReinstall, "force-reinstall", false,
		"Reinstall packages even when already up to date")
	installCmd.Flags().BoolVar(&installFlags.noDeps, "no-deps", false,
		"Do not install package dependencies")
	installCmd.Flags().BoolVar(&installFlags.pre, "pre", false,
		"Include pre-release and development versions")
	installCmd.Flags().StringVar(&installFlags.repoName, "repository", "",
		"Install from a named repository in the store")
	installCmd.Flags().StringVarP(&installFlags.requirements, "requirements", "r", "",
		"Install from a requirements file")
	installCmd.Flags().StringVarP(&installFlags.editable, "editable", "e", "",
		"Install a project directory in editable mode")

	return installCmd
}

// executeInstall handles the install command logic
func executeInstall(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && installFlags.requirements == "" && installFlags.editable == "" {
		return fmt.Errorf("nothing to install: pass a requirement, -r or -e")
	}

	opts := pip.InstallOptions{
		Upgrade:        installFlags.upgrade,
		ForceReinstall: installFlags.forceReinstall,
		NoDeps:         installFlags.noDeps,
		Pre:            installFlags.pre,
	}

	if installFlags.repoName != "" {
		manager, err := repository.NewManager()
		if err != nil {
			return err
		}
		repo, err := manager.Get(installFlags.repoName)
		if err != nil {
			return err
		}
		indexURL, err := repo.AuthURL()
		if err != nil {
			return err
		}
		opts.IndexURL = indexURL
	}

	client := pip.NewClient()

	if installFlags.editable != "" {
		if err := client.InstallEditable(installFlags.editable); err != nil {
			return err
		}
		rememberProject(installFlags.editable)
	}
	if installFlags.requirements != "" {
		if err := client.InstallRequirements(installFlags.requirements, opts); err != nil {
			return err
		}
	}
	for _, req := range args {
		if err := client.Install(req, opts); err != nil {
			return err
		}
	}

	return nil
}
