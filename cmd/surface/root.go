package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexcabrera/surface/appbar"
	"github.com/alexcabrera/surface/dialog"
	"github.com/alexcabrera/surface/hexcolor"
	"github.com/alexcabrera/surface/picker"
	"github.com/alexcabrera/surface/styles"
)

func newRootCmd() *cobra.Command {
	var themePath string

	cmd := &cobra.Command{
		Use:           "surface",
		Short:         "Demo the surface dialog toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&themePath, "theme", "", "path to a YAML theme palette")

	loadTheme := func() (*styles.Theme, error) {
		if themePath == "" {
			return styles.DefaultTheme(), nil
		}
		return styles.Load(themePath)
	}

	cmd.AddCommand(
		newAlertCmd(loadTheme),
		newPromptCmd(loadTheme),
		newConfirmCmd(loadTheme),
		newPickCmd(loadTheme),
		newSpinCmd(loadTheme),
		newBarCmd(),
	)
	return cmd
}

type themeLoader func() (*styles.Theme, error)

func newService(load themeLoader) (*dialog.Service, error) {
	theme, err := load()
	if err != nil {
		return nil, err
	}
	return dialog.New(dialog.WithTheme(theme)), nil
}

func newAlertCmd(load themeLoader) *cobra.Command {
	var title, okLabel, cancelLabel string
	var withCancel, markdown bool

	cmd := &cobra.Command{
		Use:   "alert <body>",
		Short: "Show an alert dialog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(load)
			if err != nil {
				return err
			}

			opts := []dialog.Option{
				dialog.WithTitle(title),
				dialog.WithConfirmLabel(okLabel),
			}
			if withCancel {
				opts = append(opts, dialog.WithCancel(cancelLabel))
			}
			if markdown {
				opts = append(opts, dialog.Markdown())
			}

			outcome, err := svc.Alert(cmd.Context(), args[0], opts...)
			if err != nil {
				return err
			}
			fmt.Println(outcome)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "Alert", "dialog title")
	cmd.Flags().StringVar(&okLabel, "ok", "OK", "confirm button label")
	cmd.Flags().StringVar(&cancelLabel, "cancel-label", "Cancel", "cancel button label")
	cmd.Flags().BoolVar(&withCancel, "cancel", false, "show a cancel button")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "render the body as markdown")
	return cmd
}

func newPromptCmd(load themeLoader) *cobra.Command {
	var title, placeholder string
	var masked bool

	cmd := &cobra.Command{
		Use:   "prompt <question>",
		Short: "Show a text prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(load)
			if err != nil {
				return err
			}

			opts := []dialog.Option{
				dialog.WithTitle(title),
				dialog.WithPlaceholder(placeholder),
			}
			if masked {
				opts = append(opts, dialog.Masked())
			}

			value, ok, err := svc.Prompt(cmd.Context(), args[0], opts...)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("dismissed")
				return nil
			}
			fmt.Printf("%q\n", value)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "Attention", "dialog title")
	cmd.Flags().StringVar(&placeholder, "placeholder", "Write something", "placeholder text")
	cmd.Flags().BoolVar(&masked, "masked", false, "mask the input")
	return cmd
}

func newConfirmCmd(load themeLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "confirm",
		Short: "Show a multi-action confirm",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(load)
			if err != nil {
				return err
			}

			actions := []dialog.Action{
				{Label: "Save", Run: func() { fmt.Println("saved") }},
				{Label: "Discard", Run: func() { fmt.Println("discarded") }},
				{Label: "Keep editing", Run: func() { fmt.Println("still editing") }},
			}
			_, err = svc.ConfirmMulti(cmd.Context(), "You have unsaved changes.", "Quit?", actions)
			return err
		},
	}
}

func newPickCmd(load themeLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Show a single-choice picker",
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := load()
			if err != nil {
				return err
			}

			p, err := picker.New([]picker.Option[string]{
				{Label: "Small", Value: "s"},
				{Label: "Medium", Value: "m", Preselected: true},
				{Label: "Large", Value: "l"},
			}, func(size string) {
				fmt.Printf("picked %q\n", size)
			})
			if err != nil {
				return err
			}
			return p.WithTheme(theme).Run(cmd.Context(), "Pick a size:")
		},
	}
}

func newSpinCmd(load themeLoader) *cobra.Command {
	var seconds int
	var text string

	cmd := &cobra.Command{
		Use:   "spin",
		Short: "Show the loading spinner",
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := load()
			if err != nil {
				return err
			}
			svc := dialog.New(dialog.WithTheme(theme))

			svc.ShowSpinner(
				dialog.WithSpinnerText(text),
				dialog.WithHideAfter(time.Duration(seconds)*time.Second),
			)
			defer svc.HideSpinner()

			// Simulate work until just past the auto-hide deadline.
			time.Sleep(time.Duration(seconds)*time.Second + 200*time.Millisecond)
			return nil
		},
	}
	cmd.Flags().IntVar(&seconds, "seconds", 2, "auto-hide after this many seconds")
	cmd.Flags().StringVar(&text, "text", "Loading...", "spinner text")
	return cmd
}

func newBarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bar",
		Short: "Render a sample app bar",
		RunE: func(cmd *cobra.Command, args []string) error {
			width := 80
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				width = w
			}

			base := appbar.Bar{
				Leading:  "←",
				Actions:  []string{"search", "⚙"},
				Elevated: true,
			}
			bar := base.WithSubtitle("Inbox", "3 unread",
				appbar.WithTextColor(hexcolor.MustParse("#a78bfa")))

			fmt.Fprintln(cmd.OutOrStdout(), bar.Render(width))
			return nil
		},
	}
}
