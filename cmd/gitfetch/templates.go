package main

import (
	"github.com/gitfetch/gitfetch/pkg/assets"
	"github.com/gitfetch/gitfetch/pkg/logging"
	"github.com/gitfetch/gitfetch/pkg/output"
	"github.com/spf13/cobra"
)

func newTemplatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage ASCII-art templates",
	}
	cmd.AddCommand(newTemplatesPullCmd(a))
	return cmd
}

func newTemplatesPullCmd(a *app) *cobra.Command {
	var opts assets.PullOptions

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Download the ASCII-art templates",
		Long: `Clones the template repository and copies its ascii-templates directory
into the local template directory. Existing templates with the same name are
overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.opts.Validate(); err != nil {
				return err
			}
			if opts.Dir == "" {
				opts.Dir = a.opts.TemplatesDir
			}

			logger, closeLog := a.newLogger()
			defer closeLog()

			printer := output.NewWithWriters(a.stdout, a.stderr)
			printer.Info("Pulling templates", "repo", opts.URL, "dir", opts.Dir)

			n, err := assets.Pull(cmd.Context(), opts, logging.WithComponent(logger, "assets"))
			if err != nil {
				return err
			}
			printer.Info("Templates installed", "count", n, "dir", opts.Dir)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.URL, "repo", assets.DefaultRepo, "Git repository holding the templates")
	cmd.Flags().StringVar(&opts.Ref, "ref", "", "Branch to clone (default: remote HEAD)")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Destination directory (default: --templates-dir)")

	return cmd
}
