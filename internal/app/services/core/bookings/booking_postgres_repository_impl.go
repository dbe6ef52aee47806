package bookings

import (
	"calmora-service/internal/app/contracts"
	"calmora-service/internal/app/models"
	"calmora-service/internal/pkg/exceptions"
	"calmora-service/internal/pkg/queries"
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type bookingPostgresRepository struct {
	Pool *pgxpool.Pool
	Log  *zap.Logger
}

var (
	bookingPostgresRepositoryInstance contracts.BookingRepository
	onceBookingPostgresRepository     sync.Once
)

func NewBookingPostgresRepository(pool *pgxpool.Pool, logger *zap.Logger) contracts.BookingRepository {
	onceBookingPostgresRepository.Do(func() {
		instance := &bookingPostgresRepository{
			Pool: pool,
			Log:  logger,
		}
		bookingPostgresRepositoryInstance = instance
	})
	return bookingPostgresRepositoryInstance
}

func (r *bookingPostgresRepository) Insert(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	err := r.Pool.QueryRow(
		ctx, queries.InsertBooking,
		booking.TherapistID,
		booking.ClientName,
		booking.ClientEmail,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)

	if err != nil {
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	return booking, nil
}

func (r *bookingPostgresRepository) FindByID(ctx context.Context, bookingID int64) (*models.Booking, error) {
	var booking models.Booking
	err := r.Pool.QueryRow(ctx, queries.GetBookingByID, bookingID).Scan(
		&booking.ID,
		&booking.TherapistID,
		&booking.ClientName,
		&booking.ClientEmail,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return &booking, nil
}

func (r *bookingPostgresRepository) FindByTherapistID(ctx context.Context, therapistID int64) ([]models.Booking, error) {
	rows, err := r.Pool.Query(ctx, queries.GetBookingsByTherapistID, therapistID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.TherapistID,
			&booking.ClientName,
			&booking.ClientEmail,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return bookings, nil
}
