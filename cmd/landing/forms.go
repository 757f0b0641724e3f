package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/coursemind/landing-forms/internal/forms"
	"github.com/coursemind/landing-forms/internal/terminal"
	apperrors "github.com/coursemind/landing-forms/pkg/errors"
)

var consultCmd = &cobra.Command{
	Use:   "consult",
	Short: "Book a consultation",
	Long: `Opens the consultation form. The last saved booking is shown first.

Without --field the form is filled interactively and re-asked until it is accepted.
With --field the values are submitted once; a rejected submission exits non-zero.

Example:
  landing consult -f role=student -f channel=telegram -f contact=@joe_99 -f time=10:00`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		preset, err := cmd.Flags().GetStringToString("field")
		if err != nil {
			return err
		}
		return current.consult(cmd.Context(), preset)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Request a demo",
	Long: `Opens the demo request form. If a request was saved before, only a hint is shown.

Example:
  landing demo -f name=Анна -f email=anna@example.com -f status=teacher -f message="Покажите платформу"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		preset, err := cmd.Flags().GetStringToString("field")
		if err != nil {
			return err
		}
		return current.demo(cmd.Context(), preset)
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Open both forms and show what was saved",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return current.show(cmd.Context())
	},
}

// submitter is the part of a form controller a command loop needs
type submitter interface {
	Submit(ctx context.Context) (*forms.Outcome, error)
	Touch()
}

func (a *app) consult(ctx context.Context, preset map[string]string) error {
	page := terminal.NewPage(a.out)
	c, err := forms.NewConsultController(ctx, page, a.repo)
	if err != nil {
		return err
	}

	form := page.FormAt(forms.ConsultSelectors.Form)
	form.OnChange(c.OnChange)
	return a.runForm(ctx, form, c, preset)
}

func (a *app) demo(ctx context.Context, preset map[string]string) error {
	page := terminal.NewPage(a.out)
	c, err := forms.NewDemoController(ctx, page, a.repo)
	if err != nil {
		return err
	}

	return a.runForm(ctx, page.FormAt(forms.DemoSelectors.Form), c, preset)
}

func (a *app) show(ctx context.Context) error {
	page := terminal.NewPage(a.out)
	if _, err := forms.NewConsultController(ctx, page, a.repo); err != nil {
		return err
	}
	if _, err := forms.NewDemoController(ctx, page, a.repo); err != nil {
		return err
	}
	return nil
}

func (a *app) runForm(ctx context.Context, form *terminal.Form, s submitter, preset map[string]string) error {
	if len(preset) > 0 {
		return submitPreset(ctx, form, s, preset)
	}

	for {
		s.Touch()
		if err := form.Fill(ctx, a.prompter); err != nil {
			if apperrors.Is(err, terminal.ErrAborted) {
				return nil
			}
			return err
		}

		outcome, err := s.Submit(ctx)
		if err != nil {
			return err
		}
		if outcome.Accepted {
			return nil
		}
	}
}

func submitPreset(ctx context.Context, form *terminal.Form, s submitter, preset map[string]string) error {
	names := make([]string, 0, len(preset))
	for name := range preset {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !form.Has(name) {
			return apperrors.NotFoundError("field " + name)
		}
		form.Set(name, preset[name])
	}

	outcome, err := s.Submit(ctx)
	if err != nil {
		return err
	}
	if !outcome.Accepted {
		return fmt.Errorf("submission rejected: %w", outcome.Rejection)
	}
	return nil
}
