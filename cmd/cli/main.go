package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/rpt-gingoog/mabilisss/internal/config"
	"github.com/rpt-gingoog/mabilisss/pkg/auth"
	"github.com/rpt-gingoog/mabilisss/pkg/clients/gmailclient"
	"github.com/rpt-gingoog/mabilisss/pkg/core/services"
	"github.com/rpt-gingoog/mabilisss/pkg/queue"
	"github.com/rpt-gingoog/mabilisss/pkg/repo"
	"github.com/rpt-gingoog/mabilisss/pkg/store"
	"github.com/rpt-gingoog/mabilisss/pkg/store/postgres"
	"github.com/rpt-gingoog/mabilisss/pkg/utils/logging"
)

// App holds the application dependencies
type App struct {
	cfg      *config.Config
	docs     store.DocumentStore
	repo     *repo.Repository
	auth     *auth.Authenticator
	calendar *rrule.RRule
	logger   *zap.Logger
	ctx      context.Context
}

var (
	env  string
	date string
	app  *App
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mabilisss",
		Short: "MabiliSSS Queue - branch queue and reservation management",
		Long:  `Queue ticketing for a branch office: members reserve slots, staff assign BQMS numbers and advance members through the day's queue.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.docs != nil {
					app.docs.Close()
				}
				if app.logger != nil {
					app.logger.Sync()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().StringVarP(&date, "date", "d", "", "Target day (YYYY-MM-DD, default today)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(reserveCmd())
	rootCmd.AddCommand(walkinCmd())
	rootCmd.AddCommand(assignCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(completeCmd())
	rootCmd.AddCommand(noshowCmd())
	rootCmd.AddCommand(trackCmd())
	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(boardCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(daysCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(exportCmd())
	rootCmd.AddCommand(emailReportCmd())
	rootCmd.AddCommand(interactiveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, the document store, and the repository
func initApp() error {
	var err error
	app = &App{
		ctx: context.Background(),
	}

	app.logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.logger.Info("Starting application", zap.String("environment", env))

	app.cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.logger.Debug("Configuration loaded successfully")

	app.calendar, err = app.cfg.ServiceCalendar()
	if err != nil {
		return fmt.Errorf("failed to parse service calendar: %w", err)
	}

	if app.cfg.DatabaseURL != "" {
		app.logger.Info("Using PostgreSQL document store")
		app.docs, err = postgres.NewStore(app.ctx, app.cfg.DatabaseURL, app.logger)
		if err != nil {
			return fmt.Errorf("failed to initialize postgres store: %w", err)
		}
	} else {
		app.logger.Info("Using file document store", zap.String("data_dir", app.cfg.DataDir))
		app.docs, err = store.NewFileStore(app.cfg.DataDir, app.logger)
		if err != nil {
			return fmt.Errorf("failed to initialize file store: %w", err)
		}
	}

	app.repo = repo.New(app.docs, app.logger)
	app.auth = auth.New(app.repo, app.logger)
	app.logger.Info("Repository initialized successfully")

	return nil
}

// targetDate resolves the --date flag, defaulting to today.
func targetDate() (string, error) {
	if date == "" {
		return repo.Today(), nil
	}
	if !repo.ValidDate(date) {
		return "", fmt.Errorf("invalid --date %q, want YYYY-MM-DD", date)
	}
	return date, nil
}

// resolveReservation maps a display code (R-0214-001) or raw record id
// to the record id staff commands operate on.
func resolveReservation(day, ref string) (string, error) {
	doc, err := app.repo.QueueFor(day)
	if err != nil {
		return "", err
	}
	if r := queue.FindByDisplayCode(doc.Reservations, ref); r != nil {
		return r.ID, nil
	}
	if r := doc.Find(ref); r != nil {
		return r.ID, nil
	}
	return "", fmt.Errorf("no reservation %q on %s", ref, day)
}

func printReservation(r *queue.Reservation) {
	fmt.Printf("\n%s  %s, %s %s\n", r.ResNum, r.LastName, r.FirstName, r.MI)
	fmt.Printf("  Category: %s - %s\n", r.Category, r.Service)
	fmt.Printf("  Lane:     %s   Source: %s\n", r.Priority, r.Source)
	fmt.Printf("  Status:   %s\n", r.Status)
	if r.HasNumber() {
		fmt.Printf("  BQMS #:   %s\n", r.BQMSNumber)
	}
	fmt.Println()
}

// printServiceError renders validation failures as the member would see
// them; other errors pass through to cobra.
func printServiceError(err error) error {
	if ve, ok := services.AsValidation(err); ok {
		fmt.Println("\nRequest not accepted:")
		for _, reason := range ve.Reasons {
			fmt.Printf("  ✗ %s\n", reason)
		}
		fmt.Println()
		return nil
	}
	if errors.Is(err, services.ErrNotFound) {
		fmt.Println("\nNot found. Check your input and try again.")
		return nil
	}
	return err
}

// Command definitions

func reserveCmd() *cobra.Command {
	var mi, mobile, priority string
	var consent bool
	cmd := &cobra.Command{
		Use:   "reserve <last_name> <first_name> <category_id> <service_id>",
		Short: "Create an online reservation for a member",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := targetDate()
			if err != nil {
				return err
			}

			created, err := services.CreateReservation(app.ctx, app.repo, app.logger, app.calendar,
				services.CreateReservationInput{
					Date:       day,
					LastName:   args[0],
					FirstName:  args[1],
					MI:         mi,
					Mobile:     mobile,
					CategoryID: args[2],
					ServiceID:  args[3],
					Priority:   priority,
					Consent:    consent,
				})
			if err != nil {
				return printServiceError(err)
			}

			fmt.Printf("\n✓ Slot reserved!\n")
			printReservation(created)
			fmt.Printf("Present %s at the branch to get your BQMS number.\n\n", created.ResNum)
			return nil
		},
	}

	cmd.Flags().StringVar(&mi, "mi", "", "Middle initial")
	cmd.Flags().StringVar(&mobile, "mobile", "", "Mobile number (required)")
	cmd.Flags().StringVar(&priority, "lane", queue.LaneRegular, "Queue lane: regular or priority")
	cmd.Flags().BoolVar(&consent, "consent", false, "Data privacy consent (required)")
	cmd.MarkFlagRequired("mobile")

	return cmd
}

func walkinCmd() *cobra.Command {
	var mi, mobile, priority, bqms string
	cmd := &cobra.Command{
		Use:   "walkin <last_name> <first_name> <category_id> <service_id>",
		Short: "Register a walk-in at the kiosk, optionally with a BQMS number",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := targetDate()
			if err != nil {
				return err
			}

			created, err := services.RegisterWalkIn(app.ctx, app.repo, app.logger,
				services.RegisterWalkInInput{
					Date:       day,
					LastName:   args[0],
					FirstName:  args[1],
					MI:         mi,
					Mobile:     mobile,
					CategoryID: args[2],
					ServiceID:  args[3],
					Priority:   priority,
					BQMSNumber: bqms,
				})
			if err != nil {
				return printServiceError(err)
			}

			fmt.Printf("\n✓ Walk-in registered!\n")
			printReservation(created)
			return nil
		},
	}

	cmd.Flags().StringVar(&mi, "mi", "", "Middle initial")
	cmd.Flags().StringVar(&mobile, "mobile", "", "Mobile number (required)")
	cmd.Flags().StringVar(&priority, "lane", queue.LaneRegular, "Queue lane: regular or priority")
	cmd.Flags().StringVar(&bqms, "bqms", "", "BQMS number if already issued by the guard")
	cmd.MarkFlagRequired("mobile")

	return cmd
}

func assignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign <reservation> <bqms_number>",
		Short: "Assign the physical BQMS number to an arriving member",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := targetDate()
			if err != nil {
				return err
			}
			id, err := resolveReservation(day, args[0])
			if err != nil {
				return err
			}

			updated, err := services.AssignNumber(app.ctx, app.repo, app.logger, day, id, args[1])
			if err != nil {
				if errors.Is(err, queue.ErrIllegalTransition) {
					fmt.Println("\nThis reservation already has a number or is closed.")
					return nil
				}
				return printServiceError(err)
			}

			fmt.Printf("\n✓ BQMS number assigned.\n")
			printReservation(updated)
			return nil
		},
	}
}

func transitionCommand(use, short, action string, run func(day, id string) (*queue.Reservation, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <reservation>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := targetDate()
			if err != nil {
				return err
			}
			id, err := resolveReservation(day, args[0])
			if err != nil {
				return err
			}

			updated, err := run(day, id)
			if err != nil {
				if errors.Is(err, queue.ErrIllegalTransition) {
					fmt.Printf("\nCannot %s this reservation in its current state.\n\n", action)
					return nil
				}
				return printServiceError(err)
			}

			printReservation(updated)
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	return transitionCommand("serve", "Call an arrived member to the counter", "serve",
		func(day, id string) (*queue.Reservation, error) {
			return services.StartServing(app.ctx, app.repo, app.logger, day, id)
		})
}

func completeCmd() *cobra.Command {
	return transitionCommand("complete", "Finish the member's transaction", "complete",
		func(day, id string) (*queue.Reservation, error) {
			return services.Complete(app.ctx, app.repo, app.logger, day, id)
		})
}

func noshowCmd() *cobra.Command {
	return transitionCommand("noshow", "Mark a member who failed to appear", "no-show",
		func(day, id string) (*queue.Reservation, error) {
			return services.MarkNoShow(app.ctx, app.repo, app.logger, day, id)
		})
}

func trackCmd() *cobra.Command {
	var mobile, code string
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Track a reservation by mobile number or reservation number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := targetDate()
			if err != nil {
				return err
			}

			result, err := services.Track(app.ctx, app.repo, app.logger, services.TrackInput{
				Date:   day,
				Mobile: mobile,
				Code:   code,
			})
			if err != nil {
				return printServiceError(err)
			}

			printReservation(result.Reservation)
			if result.NowServing != "" {
				fmt.Printf("  Now serving: %s\n", result.NowServing)
			}
			if result.EstimateOK {
				if result.Ahead == 0 {
					fmt.Println("  You're next!")
				} else {
					fmt.Printf("  %d ahead of you, about %d minute(s).\n", result.Ahead, result.WaitMinutes)
				}
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&mobile, "mobile", "", "Mobile number to search")
	cmd.Flags().StringVar(&code, "code", "", "Reservation number to search (e.g., R-0214-005)")

	return cmd
}

func listCmd() *cobra.Command {
	var status, search string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the day's queue (staff view, needs-BQMS first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := targetDate()
			if err != nil {
				return err
			}

			reservations, err := services.ListQueue(app.ctx, app.repo, app.logger, services.ListQueueInput{
				Date:   day,
				Status: status,
				Search: search,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\nQueue for %s: %d record(s)\n\n", day, len(reservations))
			for i := range reservations {
				r := &reservations[i]
				bqms := r.BQMSNumber
				if bqms == "" {
					bqms = "-"
				}
				fmt.Printf("  %-12s %-9s %-10s %s, %s (%s)\n",
					r.ResNum, r.Status, bqms, r.LastName, r.FirstName, r.Category)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (RESERVED, ARRIVED, SERVING, COMPLETED, NO_SHOW)")
	cmd.Flags().StringVar(&search, "search", "", "Search name, BQMS number, or reservation number")

	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the day's queue statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := targetDate()
			if err != nil {
				return err
			}

			result, err := services.DailyStats(app.ctx, app.repo, app.logger, day)
			if err != nil {
				return err
			}

			fmt.Printf("\n%s (reservation window: %s)\n\n", result.Date, result.Status)
			fmt.Printf("  Total:     %d\n", result.Total)
			fmt.Printf("  Active:    %d\n", result.Active)
			fmt.Printf("  Completed: %d\n", result.Completed)
			fmt.Printf("  No-shows:  %d\n", result.NoShows)
			fmt.Printf("  With BQMS: %d\n\n", result.Assigned)

			cats, err := app.repo.Categories()
			if err != nil {
				return err
			}
			for _, c := range cats {
				sc := result.Categories[c.ID]
				fmt.Printf("  %-12s %3d/%3d used, %3d remaining\n", c.Short, sc.Used, sc.Cap, sc.Remaining)
			}
			fmt.Println()
			return nil
		},
	}
}

func boardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board [category_id] [number]",
		Short: "Show the now-serving board, or set a category's number",
		Args:  cobra.RangeArgs(0, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := targetDate()
			if err != nil {
				return err
			}

			if len(args) == 2 {
				if err := services.SetNowServing(app.ctx, app.repo, app.logger, day, args[0], args[1]); err != nil {
					return printServiceError(err)
				}
				fmt.Printf("\n✓ Now serving %s for %s.\n\n", strings.ToUpper(args[1]), args[0])
				return nil
			}
			if len(args) == 1 {
				return fmt.Errorf("board takes no arguments or a category id and a number")
			}

			doc, err := app.repo.QueueFor(day)
			if err != nil {
				return err
			}
			cats, err := app.repo.Categories()
			if err != nil {
				return err
			}

			fmt.Printf("\nNow-serving board for %s:\n\n", day)
			for _, c := range cats {
				serving := "-"
				if entry, ok := doc.Board[c.ID]; ok && entry.NowServing != "" {
					serving = entry.NowServing
				}
				fmt.Printf("  %-12s %s\n", c.Short, serving)
			}
			fmt.Println()
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [online|intermittent|offline]",
		Short: "Show or set the reservation window status",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := targetDate()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				if err := services.SetQueueStatus(app.ctx, app.repo, app.logger, day, args[0]); err != nil {
					return printServiceError(err)
				}
				fmt.Printf("\n✓ Reservation window is now %s.\n\n", args[0])
				return nil
			}

			doc, err := app.repo.QueueFor(day)
			if err != nil {
				return err
			}
			fmt.Printf("\nReservation window for %s: %s\n\n", day, doc.Status)
			return nil
		},
	}
}

func daysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "days",
		Short: "List days with stored queue documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := app.repo.ListQueueDays()
			if err != nil {
				return err
			}

			fmt.Printf("\n%d day(s) on record:\n\n", len(days))
			for _, d := range days {
				fmt.Printf("  %s\n", d)
			}
			fmt.Println()
			return nil
		},
	}
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the service catalog with remaining capacity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := targetDate()
			if err != nil {
				return err
			}

			cats, err := app.repo.Categories()
			if err != nil {
				return err
			}
			doc, err := app.repo.QueueFor(day)
			if err != nil {
				return err
			}
			counts := queue.SlotCounts(cats, doc.Reservations)

			fmt.Printf("\nService catalog (%s):\n\n", day)
			for _, c := range cats {
				sc := counts[c.ID]
				fmt.Printf("  %-12s %-36s %3d remaining, ~%d min\n", c.ID, c.Label, sc.Remaining, c.AvgTime)
				for _, s := range c.Services {
					fmt.Printf("    %-18s %s\n", s.ID, s.Label)
				}
			}
			fmt.Println()
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the day's queue as the daily report CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := targetDate()
			if err != nil {
				return err
			}

			report, err := services.ExportCSV(app.ctx, app.repo, app.logger, day)
			if err != nil {
				return err
			}

			if outFile == "" {
				fmt.Print(report)
				return nil
			}
			if err := os.WriteFile(outFile, []byte(report), 0o644); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			fmt.Printf("\n✓ Report written to %s\n\n", outFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Write the report to a file instead of stdout")

	return cmd
}

func emailReportCmd() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "email-report",
		Short: "Email the day's CSV report to the branch head",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := targetDate()
			if err != nil {
				return err
			}

			recipient := to
			if recipient == "" {
				recipient = app.cfg.ReportRecipient
			}

			oauthCfg, err := config.LoadOAuthClient()
			if err != nil {
				return fmt.Errorf("failed to load OAuth client config: %w", err)
			}
			mailer, err := gmailclient.NewClient(app.ctx, oauthCfg)
			if err != nil {
				return fmt.Errorf("failed to create gmail client: %w", err)
			}

			if err := services.EmailDailyReport(app.ctx, app.repo, mailer, app.logger, day, recipient); err != nil {
				return printServiceError(err)
			}

			fmt.Printf("\n✓ Daily report for %s sent to %s.\n\n", day, recipient)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "Recipient (defaults to reportRecipient from config)")

	return cmd
}

func interactiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Start a staff console session (log in once, run multiple commands)",
		Long: `Start an interactive staff session. You log in against the roster once;
the session expires after 30 minutes of inactivity.

Type 'help' to see available commands, 'exit' or 'quit' to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scanner := bufio.NewScanner(os.Stdin)

			session, err := login(scanner)
			if err != nil {
				return err
			}
			fmt.Printf("\nWelcome, %s (%s). Type 'help' for commands.\n", session.User.DisplayName, session.User.Role)

			rootCmd := cmd.Parent()
			commands := make(map[string]*cobra.Command)
			for _, subCmd := range rootCmd.Commands() {
				if subCmd.Name() != "interactive" && subCmd.Name() != "completion" && subCmd.Name() != "help" {
					commands[subCmd.Name()] = subCmd
				}
			}

			for {
				fmt.Print("> ")

				if !scanner.Scan() {
					break
				}

				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}

				if session.Expired() {
					fmt.Println("Session expired. Please log in again.")
					session, err = login(scanner)
					if err != nil {
						return err
					}
				}
				session.Touch()

				parts := strings.Fields(line)
				cmdName := parts[0]
				cmdArgs := parts[1:]

				if cmdName == "exit" || cmdName == "quit" {
					fmt.Println("Goodbye!")
					return nil
				}

				if cmdName == "help" {
					printInteractiveHelp(commands)
					continue
				}

				targetCmd, exists := commands[cmdName]
				if !exists {
					fmt.Printf("Unknown command: %s (type 'help' for available commands)\n\n", cmdName)
					continue
				}

				// Reset command flags and args
				targetCmd.Flags().VisitAll(func(flag *pflag.Flag) {
					flag.Changed = false
					flag.Value.Set(flag.DefValue)
				})

				// Execute the command's RunE directly, bypassing the full
				// Execute() flow so PersistentPreRunE does not re-run initApp
				if err := targetCmd.ParseFlags(cmdArgs); err != nil {
					fmt.Printf("Error parsing flags: %v\n\n", err)
					continue
				}

				cmdArgs = targetCmd.Flags().Args()

				if err := targetCmd.Args(targetCmd, cmdArgs); err != nil {
					fmt.Printf("Error: %v\n\n", err)
					continue
				}

				if targetCmd.RunE != nil {
					if err := targetCmd.RunE(targetCmd, cmdArgs); err != nil {
						fmt.Printf("Error: %v\n\n", err)
					}
				} else if targetCmd.Run != nil {
					targetCmd.Run(targetCmd, cmdArgs)
				}
			}

			if err := scanner.Err(); err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}

			return nil
		},
	}
}

// login prompts for credentials until the roster accepts them or the
// username is locked out.
func login(scanner *bufio.Scanner) (*auth.Session, error) {
	for {
		fmt.Print("Username: ")
		if !scanner.Scan() {
			return nil, fmt.Errorf("login aborted")
		}
		username := strings.TrimSpace(scanner.Text())

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println()
		if err != nil {
			return nil, fmt.Errorf("failed to read password: %w", err)
		}

		user, err := app.auth.Authenticate(username, string(password))
		if err != nil {
			if errors.Is(err, auth.ErrLockedOut) {
				return nil, err
			}
			fmt.Println("Invalid username or password.")
			continue
		}
		return auth.NewSession(user), nil
	}
}

func printInteractiveHelp(commands map[string]*cobra.Command) {
	fmt.Println("\nAvailable commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd := commands[name]
		fmt.Printf("  %-46s %s\n", cmd.Use, cmd.Short)
	}

	fmt.Println("\n  help                                           Show this help message")
	fmt.Println("  exit, quit                                     Exit the staff session")
}
