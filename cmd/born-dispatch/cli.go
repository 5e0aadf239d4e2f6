package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/born-ml/dispatch/internal/capability"
	"github.com/born-ml/dispatch/internal/config"
	"github.com/born-ml/dispatch/internal/dispatch"
	"github.com/born-ml/dispatch/internal/scalar"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "born-dispatch",
		Short:         "Inspect scalar types, dispatch profiles and platform capabilities",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: config.LogLevel()})))
			slog.Debug("born-dispatch config", "env", config.Values())
		},
	}

	rootCmd.AddCommand(
		newTypesCmd(),
		newProfilesCmd(),
		newCapabilitiesCmd(),
		newEnvCmd(),
		newCheckCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List scalar types and their representations",
		Args:  cobra.NoArgs,
		RunE:  TypesHandler,
	}
}

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List dispatch profiles",
		Args:  cobra.NoArgs,
		RunE:  ProfilesHandler,
	}
}

func newCapabilitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities",
		Short: "Show which scalar types this platform can run",
		Args:  cobra.NoArgs,
		RunE:  CapabilitiesHandler,
	}
}

func newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show environment configuration",
		Args:  cobra.NoArgs,
		RunE:  EnvHandler,
	}
}

func newCheckCmd() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check PROFILE TYPE",
		Short: "Dispatch a probe kernel for TYPE through PROFILE",
		Args:  cobra.ExactArgs(2),
		RunE:  CheckHandler,
	}
	checkCmd.Flags().StringSlice("and", nil, "Extra scalar types added to the profile (at most 3)")
	return checkCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "born-dispatch %s\n", version)
		},
	}
}

// TypesHandler prints the scalar type registry.
func TypesHandler(cmd *cobra.Command, _ []string) error {
	var data [][]string
	for _, t := range scalar.All() {
		rep := scalar.RepresentationOf(t)
		under := ""
		if u, ok := scalar.UnderlyingOf(t); ok {
			under = u.String()
		}
		data = append(data, []string{
			fmt.Sprint(int(t)), t.String(), rep.GoType, fmt.Sprint(rep.Size), rep.Category.String(), under,
		})
	}
	render(cmd.OutOrStdout(), []string{"ORDINAL", "NAME", "GO TYPE", "SIZE", "CATEGORY", "STORED AS"}, data)
	return nil
}

// ProfilesHandler prints every base set, the quantized profile and the
// legacy names.
func ProfilesHandler(cmd *cobra.Command, _ []string) error {
	var data [][]string
	for _, b := range dispatch.Bases() {
		data = append(data, []string{b.Name(), joinTags(b.Tags()), ""})
	}

	var qtags []scalar.ScalarType
	for _, pair := range dispatch.QuantizedTypesProfile.Pairs() {
		qtags = append(qtags, pair.Quantized.Tag)
	}
	data = append(data, []string{dispatch.QuantizedTypesProfile.Name(), joinTags(qtags), ""})

	for _, name := range []string{"AllTypesAndHalf", "AllTypesAndHalfAndComplex"} {
		repl, _ := dispatch.Legacy(name)
		data = append(data, []string{name, "", "deprecated, use " + repl})
	}

	render(cmd.OutOrStdout(), []string{"NAME", "TYPES", "NOTE"}, data)
	return nil
}

// CapabilitiesHandler prints the detected platform.
func CapabilitiesHandler(cmd *cobra.Command, _ []string) error {
	plat := capability.Default()
	var data [][]string
	for _, t := range scalar.All() {
		supported := "yes"
		if !plat.Supports(t) {
			supported = "no"
		}
		source := ""
		if t == scalar.BFloat16 {
			source = plat.Source
		}
		data = append(data, []string{t.String(), supported, source})
	}
	render(cmd.OutOrStdout(), []string{"TYPE", "SUPPORTED", "SOURCE"}, data)
	return nil
}

// EnvHandler prints the configuration variables and their current values.
func EnvHandler(cmd *cobra.Command, _ []string) error {
	vars := config.AsMap()
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var data [][]string
	for _, k := range keys {
		v := vars[k]
		data = append(data, []string{v.Name, fmt.Sprint(v.Value), v.Description})
	}
	render(cmd.OutOrStdout(), []string{"NAME", "VALUE", "DESCRIPTION"}, data)
	return nil
}

// CheckHandler builds a profile and dispatches the probe kernel through it.
func CheckHandler(cmd *cobra.Command, args []string) error {
	tag, err := scalar.Parse(args[1])
	if err != nil {
		return err
	}

	names, err := cmd.Flags().GetStringSlice("and")
	if err != nil {
		return err
	}
	extra := make([]scalar.ScalarType, 0, len(names))
	for _, n := range names {
		t, err := scalar.Parse(strings.TrimSpace(n))
		if err != nil {
			return err
		}
		extra = append(extra, t)
	}

	var res probeResult
	if strings.EqualFold(args[0], dispatch.QuantizedTypesProfile.Name()) {
		if len(extra) > 0 {
			return &dispatch.ProfileError{Profile: dispatch.QuantizedTypesProfile.Name(), Err: dispatch.ErrUnsupportedExtensions}
		}
		res, err = dispatch.DispatchQuantized(tag, "check", dispatch.QuantizedTypesProfile, quantizedProbeBody, struct{}{})
	} else {
		var p *dispatch.Profile
		p, err = dispatch.BuildNamed(args[0], extra...)
		if err != nil {
			return err
		}
		slog.Debug("check", "profile", p.Name(), "type", tag)
		res, err = dispatch.Dispatch(tag, "check", p, probeBody, struct{}{})
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), res)
	return nil
}

func joinTags(tags []scalar.ScalarType) string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
