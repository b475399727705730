package jobs

import (
	"context"
	"time"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/logger"
)

// SendOverdueReport emails admins a list of approved bookings whose return
// date has passed. It is a report only; booking status is left untouched so
// admins decide how to handle each case.
func (jr *JobRunner) SendOverdueReport() {
	jr.runWithRecovery("SendOverdueReport", func() {
		ctx := context.Background()

		overdue, err := jr.bookingRepo.ListApprovedDueBefore(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to list overdue bookings", "error", err)
			return
		}
		if len(overdue) == 0 {
			logger.Debug("No overdue bookings found")
			return
		}

		bookingIDs := make([]string, 0, len(overdue))
		for _, booking := range overdue {
			bookingIDs = append(bookingIDs, booking.ID)
			logger.Debug("Booking past return date",
				"booking_id", booking.ID,
				"customer", booking.Customer.Email,
				"vehicle_id", booking.Vehicle.ID,
				"return_date", booking.ReturnDate.Format("2006-01-02"))
		}

		users, err := jr.userRepo.List(ctx)
		if err != nil {
			logger.Error("Failed to list users for overdue report", "error", err)
			return
		}

		sent := 0
		for i := range users {
			if !users[i].HasRole(domain.RoleAdmin) {
				continue
			}
			if err := jr.emailSvc.SendOverdueReport(ctx, users[i].Email, bookingIDs); err != nil {
				logger.Error("Failed to send overdue report", "admin", users[i].Email, "error", err)
				continue
			}
			sent++
		}

		logger.Info("Overdue report sent", "overdue_count", len(overdue), "admins_notified", sent)
	})
}
