package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tournevent/seventeentrack/pkg/track"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var version = "0.0.1"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "seventeentrack",
	Short:   "17track.net package tracking client",
	Version: version,
}

var packagesCmd = &cobra.Command{
	Use:   "packages",
	Short: "List tracked packages",
	RunE:  runPackages,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show per-status package counts",
	RunE:  runSummary,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the summary and the package list",
	RunE:  runStatus,
}

var addCmd = &cobra.Command{
	Use:   "add <tracking-number>",
	Short: "Start tracking a package",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var renameCmd = &cobra.Command{
	Use:   "rename <id> <friendly-name>",
	Short: "Assign a friendly name to a tracked package",
	Args:  cobra.ExactArgs(2),
	RunE:  runRename,
}

var (
	flagCarrier      string
	flagFriendlyName string
)

func init() {
	addCmd.Flags().StringVar(&flagCarrier, "carrier", "", "carrier name (required on the v1 API)")
	addCmd.Flags().StringVar(&flagFriendlyName, "name", "", "friendly name for the package")

	rootCmd.AddCommand(packagesCmd, summaryCmd, statusCmd, addCmd, renameCmd)
}

func runPackages(cmd *cobra.Command, args []string) error {
	app, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer app.shutdown(cmd.Context())

	packages, err := app.profile.Packages(cmd.Context(), track.PackagesOptions{
		ShowArchived: app.cfg.ShowArchived,
		Timezone:     app.cfg.Timezone,
	})
	if err != nil {
		return err
	}

	printPackages(packages)
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	app, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer app.shutdown(cmd.Context())

	summary, err := app.profile.Summary(cmd.Context(), app.cfg.ShowArchived)
	if err != nil {
		return err
	}

	printSummary(summary)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	app, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer app.shutdown(cmd.Context())

	var (
		summary  track.Summary
		packages []track.Package
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		summary, err = app.profile.Summary(ctx, app.cfg.ShowArchived)
		return err
	})
	g.Go(func() error {
		var err error
		packages, err = app.profile.Packages(ctx, track.PackagesOptions{
			ShowArchived: app.cfg.ShowArchived,
			Timezone:     app.cfg.Timezone,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	printSummary(summary)
	fmt.Println()
	printPackages(packages)
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	app, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer app.shutdown(cmd.Context())

	trackingNumber := args[0]
	if flagCarrier != "" {
		err = app.profile.AddPackageWithCarrier(cmd.Context(), trackingNumber, flagCarrier, flagFriendlyName)
	} else {
		err = app.profile.AddPackage(cmd.Context(), trackingNumber, flagFriendlyName)
	}
	if err != nil {
		return err
	}

	app.logger.Info("Package added", zap.String("tracking_number", trackingNumber))
	fmt.Printf("now tracking %s\n", trackingNumber)
	return nil
}

func runRename(cmd *cobra.Command, args []string) error {
	app, err := bootstrap(cmd.Context())
	if err != nil {
		return err
	}
	defer app.shutdown(cmd.Context())

	if err := app.profile.SetFriendlyName(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}

	fmt.Printf("renamed %s to %q\n", args[0], args[1])
	return nil
}

func printPackages(packages []track.Package) {
	if len(packages) == 0 {
		fmt.Println("no tracked packages")
		return
	}
	for _, pkg := range packages {
		name := pkg.FriendlyName
		if name == "" {
			name = pkg.TrackingNumber
		}
		fmt.Printf("%s\t%s\t%s\t%s -> %s\t%s\t%s\n",
			name,
			pkg.Carrier,
			pkg.Status,
			pkg.OriginCountry,
			pkg.DestinationCountry,
			pkg.Timestamp.Format("2006-01-02 15:04"),
			pkg.InfoText,
		)
	}
}

func printSummary(summary track.Summary) {
	for name, count := range summary {
		fmt.Printf("%-22s %d\n", name, count)
	}
}
