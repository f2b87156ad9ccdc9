package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stafftrack/hr-core-go/internal/config"
	"github.com/stafftrack/hr-core-go/internal/domain/claim"
	"github.com/stafftrack/hr-core-go/internal/domain/leave"
	"github.com/stafftrack/hr-core-go/internal/domain/notification"
	"github.com/stafftrack/hr-core-go/internal/domain/user"
	"github.com/stafftrack/hr-core-go/internal/fixtures"
	"github.com/stafftrack/hr-core-go/internal/pkg/kv"
	"github.com/stafftrack/hr-core-go/internal/pkg/reminder"
	"github.com/stafftrack/hr-core-go/internal/repository/kvstore"
	absenceService "github.com/stafftrack/hr-core-go/internal/service/absence"
	groupingService "github.com/stafftrack/hr-core-go/internal/service/grouping"
	notificationService "github.com/stafftrack/hr-core-go/internal/service/notification"
)

func main() {
	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("failed to load config")
	}
	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	var store kv.Store
	if cfg.Storage.Path == "" {
		store = kv.NewMemoryStore()
	} else {
		sqliteStore, err := kv.NewSQLiteStore(cfg.Storage.Path)
		if err != nil {
			logger.WithError(err).Fatal("failed to open storage")
		}
		store = sqliteStore
	}

	employeeRepo := kvstore.NewEmployeeRepository(store)
	companyRepo := kvstore.NewCompanyRepository(store)
	teamRepo := kvstore.NewTeamRepository(store)
	leaveRepo := kvstore.NewLeaveRepository(store)
	illnessRepo := kvstore.NewIllnessRepository(store)
	claimRepo := kvstore.NewClaimRepository(store)
	invoiceRepo := kvstore.NewInvoiceRepository(store)
	medicationRepo := kvstore.NewMedicationRepository(store)

	broadcaster := &notificationService.LogBroadcaster{Logger: logger}
	scheduler := reminder.NewScheduler(func(id, title string) {
		if err := broadcaster.Broadcast(notification.Broadcast{
			Title:      title,
			Body:       "Reminder " + id,
			TargetType: notification.TargetAll,
		}); err != nil {
			logger.WithError(err).Warn("reminder broadcast failed")
		}
	}, logger)
	scheduler.Start()
	defer scheduler.Stop()

	now := time.Now()

	seeded, _ := store.GetBoolean("demo_seeded")
	if cfg.App.SeedDemo && !seeded {
		if _, err := fixtures.Seed(fixtures.Repos{
			Employees:   employeeRepo,
			Companies:   companyRepo,
			Teams:       teamRepo,
			Leaves:      leaveRepo,
			Illnesses:   illnessRepo,
			Claims:      claimRepo,
			Invoices:    invoiceRepo,
			Medications: medicationRepo,
		}, now); err != nil {
			logger.WithError(err).Fatal("failed to seed demo data")
		}
		if err := store.SetBoolean("demo_seeded", true); err != nil {
			logger.WithError(err).Warn("failed to record seed marker")
		}
		logger.Info("seeded demo data")
	}

	reminders := notificationService.NewService(leaveRepo, medicationRepo, scheduler, logger)
	if err := reminders.SyncLeaveReminders(now); err != nil {
		logger.WithError(err).Warn("failed to sync leave reminders")
	}
	if err := reminders.SyncRefillReminders(now); err != nil {
		logger.WithError(err).Warn("failed to sync refill reminders")
	}

	absence := absenceService.NewService(illnessRepo, leaveRepo)

	employees, err := employeeRepo.GetAll()
	if err != nil {
		logger.WithError(err).Fatal("failed to list employees")
	}
	for _, e := range employees {
		status, err := absence.GetUserAbsenceStatus(e.ID)
		if err != nil {
			logger.WithError(err).WithField("employee", e.Name).Warn("failed to resolve absence")
			continue
		}
		if !status.IsAbsent {
			fmt.Printf("%-14s present\n", e.Name)
			continue
		}
		period := absenceService.FormatAbsencePeriod(status.StartDate, status.EndDate, now)
		fmt.Printf("%-14s absent (%s) %s\n", e.Name, status.Type, period)
	}

	// Admin view of pending leave requests, nested by company and team.
	adminSession := user.Session{Role: user.RoleAdmin}
	pending, err := leaveRepo.GetPending()
	if err != nil {
		logger.WithError(err).Fatal("failed to list pending leaves")
	}
	companies, _ := companyRepo.GetAll()
	teams, _ := teamRepo.GetAll()
	groups := groupingService.ByOrganization(adminSession, pending,
		func(l leave.Leave) string { return l.EmployeeID },
		employees, companies, teams)
	for _, cg := range groups {
		fmt.Println(cg.Name)
		for _, tg := range cg.Teams {
			fmt.Printf("  %s: %d pending request(s)\n", tg.Name, len(tg.Records))
		}
	}

	pendingClaims, err := claimRepo.GetPending()
	if err != nil {
		logger.WithError(err).Fatal("failed to list pending claims")
	}
	claim.SortClaimsForReview(pendingClaims)
	for _, c := range pendingClaims {
		marker := " "
		if c.IsUrgent {
			marker = "!"
		}
		fmt.Printf("%s claim %-12s %s\n", marker, c.Title, c.Amount.StringFixed(2))
	}
}

