// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mdhender/aoc2020"
	"github.com/mdhender/aoc2020/bags"
	"github.com/mdhender/aoc2020/config"
	"github.com/mdhender/aoc2020/diag"
	"github.com/mdhender/aoc2020/inputs"
	"github.com/mdhender/aoc2020/parsec"
	"github.com/mdhender/aoc2020/runner"
	"github.com/mdhender/aoc2020/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", true, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code 2020 puzzle runner",
		Long:  `Solve Advent of Code 2020 puzzles and record the answers`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags || logFlags == 0 {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				fmt.Printf("aoc: version %q\n", aoc2020.Version().Core())
			}

			return nil
		},
	}
	cmdRoot.AddCommand(cmdRun())
	cmdRoot.AddCommand(cmdBags())
	cmdRoot.AddCommand(cmdInitDB())
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

// logFlags returns the quiet, verbose and debug flags. Quiet wins.
func logFlags(cmd *cobra.Command) (quiet, verbose, debug bool) {
	quiet, _ = cmd.Flags().GetBool("quiet")
	verbose, _ = cmd.Flags().GetBool("verbose")
	debug, _ = cmd.Flags().GetBool("debug")
	if quiet {
		verbose, debug = false, false
	}
	return quiet, verbose, debug
}

// newLogger returns the structured logger handed to the library packages.
func newLogger(cmd *cobra.Command) *slog.Logger {
	quiet, verbose, debug := logFlags(cmd)
	level := slog.LevelWarn
	switch {
	case debug:
		level = slog.LevelDebug
	case verbose:
		level = slog.LevelInfo
	case quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func openStore(path string, verbose bool) (*store.SQLiteStore, error) {
	// File-based mode: database must already exist (created by init-db command)
	if verbose {
		log.Printf("store: using file-based SQLite: %s", path)
	}
	return store.NewSQLiteStoreWithConfig(store.StoreConfig{Path: path})
}

func cmdRun() *cobra.Command {
	var configFile string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().Bool("auto-eol", true, "automatically convert line endings")
		cmd.Flags().StringVarP(&configFile, "config-file", "c", configFile, "load configuration from file")
		cmd.Flags().String("db", "", "record answers in this database")
		cmd.Flags().IntSliceP("day", "d", nil, "run only this day (may be repeated)")
		cmd.Flags().String("inputs", "inputs", "directory containing day_NN.txt files")
		cmd.Flags().Bool("show-db-stats", false, "dump row counts from each table")
		cmd.Flags().Bool("show-timing", false, "show time spent parsing and solving")
		cmd.Flags().Bool("strip-cr", false, "strip CR from end-of-lines")
		cmd.Flags().String("target", "", "bag color for day 7")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "run",
		Short:        "solve the puzzles and print the answers",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, verbose, _ := logFlags(cmd)

			cfg := config.Default()
			if configFile != "" {
				var err error
				if cfg, err = config.Load(afero.NewOsFs(), configFile); err != nil {
					return err
				}
			}
			// flags override the configuration file
			if cmd.Flags().Changed("auto-eol") {
				cfg.Inputs.AutoEOL, _ = cmd.Flags().GetBool("auto-eol")
			}
			if cmd.Flags().Changed("strip-cr") {
				cfg.Inputs.StripCR, _ = cmd.Flags().GetBool("strip-cr")
			}
			if cmd.Flags().Changed("inputs") {
				cfg.Inputs.Dir, _ = cmd.Flags().GetString("inputs")
			}
			if cmd.Flags().Changed("db") {
				cfg.Store.Path, _ = cmd.Flags().GetString("db")
			}
			if cmd.Flags().Changed("day") {
				cfg.Run.Days, _ = cmd.Flags().GetIntSlice("day")
			}
			if cmd.Flags().Changed("target") {
				cfg.Run.Target, _ = cmd.Flags().GetString("target")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			showTiming, _ := cmd.Flags().GetBool("show-timing")
			showDBStats, _ := cmd.Flags().GetBool("show-db-stats")

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var runnerStore runner.RunnerStore
			var sqliteStore *store.SQLiteStore
			if cfg.Store.Path != "" {
				var err error
				if sqliteStore, err = openStore(cfg.Store.Path, verbose); err != nil {
					return err
				}
				defer sqliteStore.Close()
				runnerStore = sqliteStore
			}

			svc := runner.NewService(runnerStore, cfg.Inputs.Dir, newLogger(cmd),
				inputs.WithAutoEOL(cfg.Inputs.AutoEOL),
				inputs.WithStripCR(cfg.Inputs.StripCR),
			)
			svc.SetTarget(cfg.Run.Target)

			results, err := svc.Run(ctx, cfg.Run.Days...)
			if perr := runner.Print(os.Stdout, results, showTiming); perr != nil && err == nil {
				err = perr
			}
			if err != nil {
				return err
			}

			if showDBStats && sqliteStore != nil {
				stats, err := sqliteStore.TableStats(ctx)
				if err != nil {
					return err
				}
				for _, table := range []string{"runs", "answers", "bag_rules", "bag_contents"} {
					log.Printf("db: %-14s %8d\n", table, stats[table])
				}
			}

			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdBags() *cobra.Command {
	autoEOL := true
	stripCR := false
	var dbPath string
	var outputFile string
	target := "shiny gold"
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&autoEOL, "auto-eol", autoEOL, "automatically convert line endings")
		cmd.Flags().StringVar(&dbPath, "db", dbPath, "load the rules into this database and query it too")
		cmd.Flags().StringVarP(&outputFile, "output", "o", outputFile, "save parsed rules to file")
		cmd.Flags().BoolVar(&stripCR, "strip-cr", stripCR, "strip CR from end-of-lines")
		cmd.Flags().StringVarP(&target, "target", "t", target, "bag color to ask about")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "bags <rules-file>",
		Short:        "parse a file of bag rules",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1), // require path to rules file
		RunE: func(cmd *cobra.Command, args []string) error {
			_, verbose, _ := logFlags(cmd)

			text, err := inputs.Load(afero.NewOsFs(), args[0], inputs.WithAutoEOL(autoEOL), inputs.WithStripCR(stripCR))
			if err != nil {
				return err
			}

			parsed := bags.ParseRules(text)
			if verbose {
				for _, d := range diag.Skipped(parsec.Complete(bags.RuleParser()), text) {
					diag.PrintDiagnostic(os.Stderr, d, args[0], text)
				}
				log.Printf("%s: parsed %d rules\n", args[0], len(parsed))
			}

			if data, err := json.MarshalIndent(parsed, "", "  "); err != nil {
				log.Fatalf("json: %v\n", err)
			} else if outputFile == "" {
				fmt.Printf("%s\n", string(data))
			} else if err = os.WriteFile(outputFile, data, 0o644); err != nil {
				return err
			} else {
				log.Printf("%s: wrote %d bytes\n", outputFile, len(data))
			}

			rules := bags.NewRules(parsed)
			containers, err := rules.Containers(target)
			if err != nil {
				return err
			}
			inside, err := rules.CountInside(target)
			if err != nil {
				return err
			}
			fmt.Printf("%q: %d containers, %d bags inside\n", target, len(containers), inside)

			if dbPath == "" {
				return nil
			}
			sqliteStore, err := openStore(dbPath, verbose)
			if err != nil {
				return err
			}
			defer sqliteStore.Close()
			ctx := context.Background()
			if err := sqliteStore.ReplaceBagRules(ctx, rules); err != nil {
				return err
			}
			dbContainers, err := sqliteStore.CountContainers(ctx, target)
			if err != nil {
				return err
			}
			dbInside, err := sqliteStore.CountInside(ctx, target)
			if err != nil {
				return err
			}
			if dbContainers != len(containers) || dbInside != inside {
				return fmt.Errorf("database disagrees: %d containers, %d bags inside", dbContainers, dbInside)
			}
			if verbose {
				log.Printf("%s: database agrees\n", dbPath)
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdInitDB() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "init-db <path>",
		Short:        "create a new database file with the schema applied",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.InitDatabase(args[0]); err != nil {
				return err
			}
			log.Printf("%s: created database\n", args[0])
			return nil
		},
	}
	return cmd
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Println(aoc2020.Version().String())
				return nil
			}
			fmt.Println(aoc2020.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
