package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/config"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/repository/memory"
	attendanceService "github.com/cmlabs-hris/hris-dashboard-go/internal/service/attendance"
	authService "github.com/cmlabs-hris/hris-dashboard-go/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/hris-dashboard-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hris-dashboard-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hris-dashboard-go/internal/service/leave"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	logger := appHTTP.NewLogger(os.Stdout, cfg.App)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	clk := clock.New()
	store := memory.NewStore(clk)
	if err := seed(store, cfg.Seed, clk.Now()); err != nil {
		return err
	}

	employeeRepo := memory.NewEmployeeRepository(store)
	attendanceRepo := memory.NewAttendanceRepository(store)
	leaveRequestRepo := memory.NewLeaveRequestRepository(store)
	userRepo := memory.NewUserRepository(store)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, clk)

	handlers := appHTTP.Handlers{
		Auth:     appHTTP.NewAuthHandler(authService.NewAuthService(userRepo, JWTService)),
		Employee: appHTTP.NewEmployeeHandler(employeeService.NewEmployeeService(employeeRepo)),
		Attendance: appHTTP.NewAttendanceHandler(
			attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, clk, cfg.Attendance.Policy()),
		),
		Leave: appHTTP.NewLeaveHandler(leaveService.NewLeaveService(leaveRequestRepo, employeeRepo, clk)),
		Dashboard: appHTTP.NewDashboardHandler(
			dashboardService.NewDashboardService(memory.NewDashboardRepository(store), clk),
		),
	}

	router := appHTTP.NewRouter(cfg, logger, JWTService, handlers)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server running", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// seed fills the store from SEED_FILE, or from the built-in demo data when unset.
func seed(store *memory.Store, cfg config.SeedConfig, today time.Time) error {
	var (
		ds  fixtures.Dataset
		err error
	)
	if cfg.File != "" {
		ds, err = fixtures.LoadFile(cfg.File, today, bcrypt.DefaultCost)
	} else {
		ds, err = fixtures.Sample(today, bcrypt.DefaultCost)
	}
	if err != nil {
		return err
	}

	if err := store.Seed(ds.Employees, ds.Attendance, ds.LeaveRequests, ds.Users); err != nil {
		return fmt.Errorf("seed store: %w", err)
	}
	slog.Info("store seeded",
		slog.Int("employees", len(ds.Employees)),
		slog.Int("attendance", len(ds.Attendance)),
		slog.Int("leave_requests", len(ds.LeaveRequests)),
		slog.Int("users", len(ds.Users)),
	)
	return nil
}
