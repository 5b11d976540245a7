// Package commands holds the CLI subcommands added to the server binary.
package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"callcenter/catalog"
	"callcenter/profile"
	"callcenter/services"
)

type quoteFlags struct {
	hours      string
	days       string
	tier       string
	services   []string
	coverage   string
	compliance string
	volume     string
}

// NewQuoteCommand returns the `quote` subcommand. With --hours/--days it
// prints the simple staffing quote; otherwise it prices a service bundle.
func NewQuoteCommand() *cobra.Command {
	var f quoteFlags
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print a price quote",
		Long: "Prints either the hours/days staffing quote (--hours and --days) or a " +
			"service bundle quote built from --services, --tier and the assessment answers.",
		Example: "  callcenter quote --hours 12 --days 5\n" +
			"  callcenter quote --services ai_agent_calling,live_chat --coverage 24/7 --volume high",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.hours != "" || f.days != "" {
				return runSimpleQuote(cmd.OutOrStdout(), f)
			}
			return runBundleQuote(cmd.OutOrStdout(), f, time.Now().UTC())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.hours, "hours", "", "hours per day (8, 12 or 24)")
	flags.StringVar(&f.days, "days", "", "days per week (5, 6 or 7)")
	flags.StringVar(&f.tier, "tier", "", "platform tier (starter, professional, enterprise); derived from the answers when empty")
	flags.StringSliceVar(&f.services, "services", nil, "comma-separated service keys")
	flags.StringVar(&f.coverage, "coverage", "", "coverage answer (business_hours, extended, 24/7)")
	flags.StringVar(&f.compliance, "compliance", "", "compliance answer (standard, moderate, strict)")
	flags.StringVar(&f.volume, "volume", "", "call volume answer (low, medium, high)")
	return cmd
}

func runSimpleQuote(w io.Writer, f quoteFlags) error {
	q := services.CalculateSimpleQuote(f.hours, f.days)
	if q == nil {
		return errors.New("quote: --hours must be one of 8, 12, 24 and --days one of 5, 6, 7")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Coverage\t%d h/day × %d days/week\t\n", q.HoursPerDay, q.DaysPerWeek)
	fmt.Fprintf(tw, "Monthly hours\t%d\t\n", q.TotalHours)
	fmt.Fprintf(tw, "Base price\t%s\t\n", services.FormatEUR(q.BasePrice))
	if q.Discount > 0 {
		fmt.Fprintf(tw, "Discount (%s)\t-%s\t\n", services.FormatPercent(q.DiscountRate), services.FormatEUR(q.Discount))
	}
	fmt.Fprintf(tw, "VAT (%s)\t%s\t\n", services.FormatPercent(services.VATRate), services.FormatEUR(q.VAT))
	fmt.Fprintf(tw, "Total\t%s\t\n", services.FormatEUR(q.Total))
	return tw.Flush()
}

func runBundleQuote(w io.Writer, f quoteFlags, now time.Time) error {
	p := profile.Defaults(now)

	for _, raw := range f.services {
		key := catalog.ServiceKey(strings.TrimSpace(raw))
		if key == "" {
			continue
		}
		if !catalog.IsKnownService(key) {
			return fmt.Errorf("quote: unknown service %q (known: %s)", key, joinKeys(catalog.ServiceKeys()))
		}
		p.SelectedServices = append(p.SelectedServices, key)
	}
	p.SelectedServices = catalog.FilterKnownServices(p.SelectedServices)

	answers := map[string]string{}
	for question, value := range map[string]string{
		profile.AnswerCoverage:   f.coverage,
		profile.AnswerCompliance: f.compliance,
		profile.AnswerCallVolume: f.volume,
	} {
		if value != "" {
			answers[question] = value
		}
	}
	if len(answers) > 0 {
		p.AssessmentAnswers = answers
		result := services.ScoreAssessment(answers)
		p.AssessmentResult = &result
	}
	if f.tier != "" {
		tier, ok := catalog.ParseTier(f.tier)
		if !ok {
			return fmt.Errorf("quote: unknown tier %q", f.tier)
		}
		if p.AssessmentResult == nil {
			p.AssessmentResult = &profile.AssessmentResult{}
		}
		p.AssessmentResult.SuggestedTier = tier
	}

	q := services.CalculateBuilderQuote(p)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, item := range q.LineItems {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", item.Label, services.FormatEUR(item.Amount), item.Note)
	}
	fmt.Fprintf(tw, "\t\t\n")
	fmt.Fprintf(tw, "Subtotal\t%s\t\n", services.FormatEUR(q.Subtotal))
	fmt.Fprintf(tw, "Uplift\tx%.2f\t%s\n", q.UpliftFactor, services.FormatEUR(q.AdjustedSubtotal))
	if q.Discount > 0 {
		fmt.Fprintf(tw, "Bundle discount (%s)\t-%s\t\n", services.FormatPercent(q.DiscountRate), services.FormatEUR(q.Discount))
	}
	fmt.Fprintf(tw, "Setup fee\t%s\t\n", services.FormatEUR(q.SetupFee))
	fmt.Fprintf(tw, "VAT (%s)\t%s\t\n", services.FormatPercent(services.VATRate), services.FormatEUR(q.VAT))
	fmt.Fprintf(tw, "Total\t%s\t\n", services.FormatEUR(q.Total))
	if err := tw.Flush(); err != nil {
		return err
	}
	for _, a := range q.Assumptions {
		fmt.Fprintf(w, "- %s\n", a)
	}
	return nil
}

func joinKeys(keys []catalog.ServiceKey) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, ", ")
}
