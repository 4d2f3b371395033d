// Command console is the terminal front end of the sales admin console.
// It drives the same session, guard and view core a graphical front end
// would: login, role-gated entity lists, CSV export, and the dashboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/apexsales/admin-console/internal/client"
	"github.com/apexsales/admin-console/internal/core/domain"
	"github.com/apexsales/admin-console/internal/core/guard"
	"github.com/apexsales/admin-console/internal/core/session"
	"github.com/apexsales/admin-console/internal/export"
	"github.com/apexsales/admin-console/internal/infrastructure/storage"
	"github.com/apexsales/admin-console/internal/notify"
	"github.com/apexsales/admin-console/internal/pkg/config"
	"github.com/apexsales/admin-console/internal/view"
	"github.com/apexsales/admin-console/internal/view/cache"
	"github.com/apexsales/admin-console/internal/views"
	"github.com/apexsales/admin-console/pkg/logger"
)

const usage = `usage: console <command> [flags]

commands:
  login      -email -password   authenticate and persist the session
  logout                        clear the persisted session
  list       <view>             print a view (applications|commissions|sales-agents|sales-coaches)
  export     <view>             write a view's CSV export to disk
  dashboard                     print the role dashboard
  profile                       print your own profile and bank details
`

type app struct {
	store *session.Store
	deps  views.Deps
}

// entryNavigator is the CLI's "redirect to login": there is no page to
// swap, so arriving at the entry point just tells the user what to do.
type entryNavigator struct{}

func (entryNavigator) ToEntry() {
	fmt.Fprintln(os.Stderr, "session ended: run `console login` to sign in")
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	core := client.New(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second, log)
	tokens := storage.NewFileTokenStore(cfg.Token.Path, log)
	caches := cache.New()
	auth := client.NewAuth(core)
	users := client.NewUsers(core)

	store := session.NewStore(tokens, auth, users, caches, entryNavigator{}, log)

	a := &app{
		store: store,
		deps: views.Deps{
			Session:      store,
			Cache:        caches,
			Auth:         auth,
			Users:        users,
			Applications: client.NewApplications(core),
			Commissions:  client.NewCommissions(core),
			Notify:       notify.NewLog(log),
			Log:          log,
		},
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	var err error
	switch os.Args[1] {
	case "login":
		err = a.login(ctx, os.Args[2:])
	case "logout":
		a.store.Logout()
	case "list":
		err = a.list(ctx, os.Args[2:])
	case "export":
		err = a.export(ctx, os.Args[2:])
	case "dashboard":
		err = a.dashboard(ctx)
	case "profile":
		err = a.profile(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	_ = fs.Parse(args)

	if *email == "" || *password == "" {
		return fmt.Errorf("email and password are required")
	}

	result, err := a.deps.Auth.Login(ctx, *email, *password)
	if err != nil {
		return fmt.Errorf("could not reach the server, try again later")
	}
	if result.Token == "" {
		return fmt.Errorf("%s: %s", result.Message.Title, result.Message.Description)
	}

	a.store.SetToken(result.Token)
	if !a.store.LoadProfile(ctx) {
		return fmt.Errorf("signed in but could not load your profile")
	}
	fmt.Printf("%s: %s\n", result.Message.Title, result.Message.Description)
	return nil
}

// requireSession resolves the persisted token through the auth guard.
func (a *app) requireSession(ctx context.Context) error {
	switch guard.NewAuth(a.store).Require(ctx) {
	case guard.Render:
		return nil
	case guard.Loading:
		// Require resolves synchronously; Loading here means a logic bug.
		return fmt.Errorf("session verification did not settle")
	default:
		return fmt.Errorf("not signed in")
	}
}

func (a *app) requireRole(roles ...domain.Role) error {
	if guard.NewRole(a.store, roles...).Evaluate() != guard.Render {
		return fmt.Errorf("this view is not available for your role")
	}
	return nil
}

func (a *app) list(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("list: view name required")
	}
	if err := a.requireSession(ctx); err != nil {
		return err
	}
	role := a.store.Role()

	switch normalize(args[0]) {
	case "applications":
		return renderList(ctx, views.Applications(role, a.deps))
	case "commissions":
		return renderList(ctx, views.Commissions(role, a.deps))
	case "sales-agents":
		return renderList(ctx, views.SalesAgents(ctx, role, a.deps))
	case "sales-coaches":
		if err := a.requireRole(domain.RoleAdmin); err != nil {
			return err
		}
		return renderList(ctx, views.SalesCoaches(a.deps))
	default:
		return fmt.Errorf("unknown view %q", args[0])
	}
}

func (a *app) export(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("export: view name required")
	}
	if err := a.requireSession(ctx); err != nil {
		return err
	}
	role := a.store.Role()

	var file *export.File
	var err error
	switch normalize(args[0]) {
	case "applications":
		file, err = views.Applications(role, a.deps).Export(ctx)
	case "commissions":
		file, err = views.Commissions(role, a.deps).Export(ctx)
	case "sales-agents":
		file, err = views.SalesAgents(ctx, role, a.deps).Export(ctx)
	case "sales-coaches":
		if err := a.requireRole(domain.RoleAdmin); err != nil {
			return err
		}
		file, err = views.SalesCoaches(a.deps).Export(ctx)
	default:
		return fmt.Errorf("unknown view %q", args[0])
	}
	if err != nil {
		return fmt.Errorf("export failed, try again later")
	}

	if err := os.WriteFile(file.Name, file.Data, 0o644); err != nil {
		return fmt.Errorf("could not write %s: %w", file.Name, err)
	}
	fmt.Println("wrote", file.Name)
	return nil
}

func (a *app) dashboard(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}

	data := views.LoadDashboard(ctx, a.deps)
	if data.User != nil {
		fmt.Printf("Signed in as %s (%s)\n", data.User.FullName(), data.Role)
	}
	for _, link := range views.NavLinks(data.Role) {
		fmt.Printf("  %-16s %s\n", link.Label, link.Route)
	}
	if data.Summary != nil {
		fmt.Printf("\nSales Coaches: %d\nSales Agents: %d\nApplications: %d\n",
			data.Summary.TotalSalesCoaches, data.Summary.TotalSalesAgents, data.Summary.TotalApplications)
		if n := len(data.Summary.IncompleteApplicationsThisWeek); n > 0 {
			fmt.Printf("Incomplete this week: %d\n", n)
		}
	}
	return nil
}

func (a *app) profile(ctx context.Context) error {
	if err := a.requireSession(ctx); err != nil {
		return err
	}
	if err := a.requireRole(domain.RoleSalesAgent); err != nil {
		return err
	}

	p := views.NewProfileView(a.deps)
	p.Load(ctx)
	form, loaded := p.Form()
	if !loaded {
		return fmt.Errorf("could not load your profile, try again later")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Name\t%s %s\n", form.FirstName, form.LastName)
	fmt.Fprintf(w, "Email\t%s\n", form.Email)
	fmt.Fprintf(w, "Mobile\t%s\n", form.Mobile)
	fmt.Fprintf(w, "Bank\t%s\n", form.BankDetails.BankName)
	fmt.Fprintf(w, "Account\t%s\n", form.BankDetails.AccountNumber)
	fmt.Fprintf(w, "IBAN\t%s\n", form.BankDetails.IBAN)
	return w.Flush()
}

func renderList[T any](ctx context.Context, v *view.View[T]) error {
	v.Mount(ctx)
	snap := v.Snapshot()
	if snap.Loading {
		return fmt.Errorf("still loading")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	headers := make([]string, len(snap.Columns))
	for i, col := range snap.Columns {
		headers[i] = col.Header
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range snap.Rows {
		cells := make([]string, len(snap.Columns))
		for i, col := range snap.Columns {
			cells[i] = export.FormatValue(col.Value(row), col.Type)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return w.Flush()
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
